package game

import (
	"fmt"
	"strings"
	"time"

	"gomoku/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// IllegalActionPolicy controls how the environment reacts when Step receives
// an action that is not currently legal.
type IllegalActionPolicy int

const (
	// SubstituteRandom silently plays a uniformly random legal action instead.
	SubstituteRandom IllegalActionPolicy = iota
	// Reject treats an illegal action as programmer error and panics.
	Reject
)

// Player ids.
const (
	PlayerA int8 = -1
	PlayerB int8 = 1
)

// LossReward is the terminal reward when the previous move completed a
// winning line: the player now to move has lost.
const LossReward = -1.0

// Gomoku is an n-by-n board where the first player to line up winLength
// stones in any direction wins. With size 3 and winLength 3 it is
// tic-tac-toe.
type Gomoku struct {
	size      int
	winLength int

	cells     []int8
	mover     int8
	available []int // ascending order
	lastMove  int

	onIllegal IllegalActionPolicy
	rng       *rand.Rand
}

type GomokuOption func(g *Gomoku)

// WithIllegalActions overrides the default SubstituteRandom policy.
func WithIllegalActions(policy IllegalActionPolicy) GomokuOption {
	return func(g *Gomoku) {
		g.onIllegal = policy
	}
}

// WithSeed makes illegal-action substitution reproducible.
func WithSeed(seed uint64) GomokuOption {
	return func(g *Gomoku) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

func NewGomoku(size, winLength int, options ...GomokuOption) (*Gomoku, error) {
	if winLength < 2 {
		return nil, fmt.Errorf("win length %d is too short", winLength)
	}
	if size < winLength {
		return nil, fmt.Errorf("board size %d cannot be less than win length %d", size, winLength)
	}

	g := &Gomoku{
		size:      size,
		winLength: winLength,
		rng:       rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(g)
	}

	g.Reset()
	return g, nil
}

// Reset reinitializes to an empty board with PlayerA to move.
func (g *Gomoku) Reset() State {
	g.cells = make([]int8, g.size*g.size)
	g.mover = PlayerA
	g.available = make([]int, len(g.cells))
	for i := range g.available {
		g.available[i] = i
	}
	g.lastMove = -1

	return g.snapshot(false, 0)
}

// Step applies an action for the current mover and returns the resulting
// state. Calling Step on a full board returns a terminal tie state.
func (g *Gomoku) Step(action int) State {
	if len(g.available) == 0 {
		return g.snapshot(true, 0)
	}

	if !g.isLegal(action) {
		if g.onIllegal == Reject {
			panic(fmt.Sprintf("illegal action %d", action))
		}
		substitute := g.available[g.rng.Intn(len(g.available))]
		log.Warn().Int("action", action).Int("substitute", substitute).
			Msg("illegal action replaced by a random legal action")
		action = substitute
	}

	g.cells[action] = g.mover
	g.lastMove = action
	g.removeAction(action)

	terminal := false
	reward := 0.0
	if g.wins(action) {
		// The player to move in the returned state has just lost
		terminal = true
		reward = LossReward
	} else if len(g.available) == 0 { // Board full, nobody wins
		terminal = true
	}

	g.mover = -g.mover
	return g.snapshot(terminal, reward)
}

// Load restores the environment to a previously returned snapshot. The
// legal action set is rebuilt from the board so it stays in ascending order.
func (g *Gomoku) Load(state State) {
	copy(g.cells, state.Board.Cells)
	g.mover = state.Board.Mover
	g.lastMove = state.LastMove
	g.available = g.available[:0]
	for i, cell := range g.cells {
		if cell == 0 {
			g.available = append(g.available, i)
		}
	}
}

// Clone returns an independent deep copy. The copy gets its own random
// source derived from the parent's so simulated play stays reproducible.
func (g *Gomoku) Clone() Environment {
	clone := &Gomoku{
		size:      g.size,
		winLength: g.winLength,
		cells:     make([]int8, len(g.cells)),
		mover:     g.mover,
		available: make([]int, len(g.available)),
		lastMove:  g.lastMove,
		onIllegal: g.onIllegal,
		rng:       rand.New(rand.NewSource(g.rng.Uint64())),
	}
	copy(clone.cells, g.cells)
	copy(clone.available, g.available)
	return clone
}

func (g *Gomoku) snapshot(terminal bool, reward float64) State {
	cells := make([]int8, len(g.cells))
	copy(cells, g.cells)
	actions := make([]int, len(g.available))
	copy(actions, g.available)

	return State{
		Board:    Board{Size: g.size, Cells: cells, Mover: g.mover},
		Actions:  actions,
		Terminal: terminal,
		Reward:   reward,
		LastMove: g.lastMove,
	}
}

func (g *Gomoku) isLegal(action int) bool {
	return action >= 0 && action < len(g.cells) && g.cells[action] == 0
}

func (g *Gomoku) removeAction(action int) {
	g.available = utils.Remove(g.available, action)
}

// Line directions: horizontal, vertical and the two diagonals. Each is
// scanned in both senses from the placed stone.
var lines = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

func (g *Gomoku) wins(action int) bool {
	piece := g.cells[action]
	x, y := action%g.size, action/g.size
	for _, d := range lines {
		count := 1 + g.count(x, y, d[0], d[1], piece) + g.count(x, y, -d[0], -d[1], piece)
		if count >= g.winLength {
			return true
		}
	}
	return false
}

func (g *Gomoku) count(x, y, dx, dy int, piece int8) int {
	n := 0
	for {
		x += dx
		y += dy
		if x < 0 || x >= g.size || y < 0 || y >= g.size {
			break
		}
		if g.cells[y*g.size+x] != piece {
			break
		}
		n++
	}
	return n
}

// String renders the board with X for PlayerB and O for PlayerA.
func (g *Gomoku) String() string {
	var b strings.Builder
	b.WriteString(strings.Repeat("-", 2*g.size+3) + "\n")
	for y := g.size - 1; y >= 0; y-- {
		b.WriteString("|")
		for x := 0; x < g.size; x++ {
			switch g.cells[y*g.size+x] {
			case PlayerB:
				b.WriteString(" X")
			case PlayerA:
				b.WriteString(" O")
			default:
				b.WriteString("  ")
			}
		}
		b.WriteString(" |\n")
	}
	b.WriteString(strings.Repeat("-", 2*g.size+3))
	return b.String()
}
