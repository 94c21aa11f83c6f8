package game

// Board is the environment-owned position: cell contents plus the side to
// move. The searcher treats it as opaque and only hands it back through
// Environment.Load.
type Board struct {
	Size  int
	Cells []int8
	Mover int8
}

// Copy returns an independent copy of the board.
func (b Board) Copy() Board {
	cells := make([]int8, len(b.Cells))
	copy(cells, b.Cells)
	return Board{Size: b.Size, Cells: cells, Mover: b.Mover}
}

// State is the value exchanged between an environment and its players:
// a board snapshot, the ordered legal actions, whether the game is over,
// the signed reward, and the last move played (-1 before the first move).
//
// Reward is from the perspective of the player to move in this state:
// -1 when the previous move ended the game with a win (that player has
// lost), 0 for a tie or an ongoing game.
type State struct {
	Board    Board
	Actions  []int
	Terminal bool
	Reward   float64
	LastMove int
}

// Environment owns the game rules: legality, win/tie detection, scoring.
//
// Step applies an action for the current mover and returns the resulting
// state. Load restores the environment to a previously returned snapshot,
// and Clone produces a fully independent deep copy so agents can simulate
// without mutating the authoritative instance.
type Environment interface {
	Reset() State
	Step(action int) State
	Load(state State)
	Clone() Environment
}
