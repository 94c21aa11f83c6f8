package agent

import (
	"fmt"

	"gomoku/game"
	"gomoku/searcher"

	"github.com/rs/zerolog/log"
)

// MCTSAgent plays with Monte Carlo tree search against a private copy of
// the environment, reusing the search tree across real moves.
type MCTSAgent struct {
	player int8
	env    game.Environment
	search *searcher.MCTS
}

func NewMCTSAgent(env game.Environment, search *searcher.MCTS) *MCTSAgent {
	return &MCTSAgent{
		env:    env.Clone(),
		search: search,
	}
}

// SelectAction re-roots the tree on the opponent's last move, runs the
// episode budget from state, then re-roots again on the chosen action so
// its subtree survives into the next turn.
func (a *MCTSAgent) SelectAction(state game.State) (int, error) {
	if len(state.Actions) == 0 {
		log.Warn().Msg("the board is full")
		return NoAction, ErrNoLegalMoves
	}
	if state.Terminal {
		log.Warn().Msg("reached terminal state")
		return NoAction, ErrAlreadyTerminal
	}

	a.env.Load(state)
	a.search.Advance(state.LastMove)

	action, err := a.search.FindAction(a.env, state)
	if err != nil {
		return NoAction, fmt.Errorf("finding action: %w", err)
	}

	a.search.Advance(action)
	return action, nil
}

func (a *MCTSAgent) SetPlayerIndex(player int8) {
	a.player = player
}

// ResetPlayer discards the search tree and all its statistics.
func (a *MCTSAgent) ResetPlayer() {
	a.search.Reset()
}

// Metrics reports search statistics for the latest move.
func (a *MCTSAgent) Metrics() searcher.MoveMetrics {
	return a.search.Metrics()
}
