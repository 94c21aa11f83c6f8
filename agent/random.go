package agent

import (
	"gomoku/game"

	"golang.org/x/exp/rand"
)

// RandomAgent picks a uniformly random legal action. Baseline opponent.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) SelectAction(state game.State) (int, error) {
	if len(state.Actions) == 0 {
		return NoAction, ErrNoLegalMoves
	}
	if state.Terminal {
		return NoAction, ErrAlreadyTerminal
	}
	return state.Actions[a.rng.Intn(len(state.Actions))], nil
}

func (a *RandomAgent) SetPlayerIndex(player int8) {}

func (a *RandomAgent) ResetPlayer() {}
