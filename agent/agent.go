package agent

import (
	"errors"

	"gomoku/game"
)

// NoAction is the recoverable sentinel returned alongside ErrNoLegalMoves
// and ErrAlreadyTerminal.
const NoAction = -1

var (
	ErrNoLegalMoves    = errors.New("no legal moves available")
	ErrAlreadyTerminal = errors.New("state is already terminal")
)

// Agent selects actions for one side of a game.
type Agent interface {
	SelectAction(state game.State) (int, error)
	SetPlayerIndex(player int8)
	ResetPlayer()
}
