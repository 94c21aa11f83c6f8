package engine

import (
	"fmt"

	"gomoku/agent"
	"gomoku/experiments"
	"gomoku/game"
	"gomoku/searcher"

	"github.com/rs/zerolog/log"
)

// Engine drives a full game between two agents against one authoritative
// environment. Agents only ever see state snapshots; simulated play happens
// on their own clones.
type Engine struct {
	env    game.Environment
	agents map[int8]agent.Agent
}

// metricsReporter is implemented by agents that track per-move search
// statistics.
type metricsReporter interface {
	Metrics() searcher.MoveMetrics
}

func LocalEngine(env game.Environment, playerA, playerB agent.Agent) *Engine {
	playerA.SetPlayerIndex(game.PlayerA)
	playerB.SetPlayerIndex(game.PlayerB)

	return &Engine{
		env: env,
		agents: map[int8]agent.Agent{
			game.PlayerA: playerA,
			game.PlayerB: playerB,
		},
	}
}

// Run plays one game from the starting position until terminal and returns
// the winner's player id (0 for a tie), the number of moves played, and the
// per-move search records.
func (e *Engine) Run(startingPlayer int8) (float64, int, []experiments.MoveRecord, error) {
	state := e.env.Reset()
	if startingPlayer != 0 && startingPlayer != state.Board.Mover {
		state.Board.Mover = startingPlayer
		e.env.Load(state)
	}

	for _, a := range e.agents {
		a.ResetPlayer()
	}

	log.Info().Int8("player", state.Board.Mover).Msg("game started")

	var records []experiments.MoveRecord
	moves := 0
	for !state.Terminal && len(state.Actions) > 0 {
		mover := state.Board.Mover
		current := e.agents[mover]

		action, err := current.SelectAction(state)
		if err != nil {
			return 0, moves, records, fmt.Errorf("player %d move %d: %w", mover, moves+1, err)
		}

		state = e.env.Step(action)
		moves++

		record := experiments.MoveRecord{Step: moves, Player: int(mover), Action: action}
		if reporter, ok := current.(metricsReporter); ok {
			record.MoveMetrics = reporter.Metrics()
		}
		records = append(records, record)

		log.Debug().Int8("player", mover).Int("action", action).Int("move", moves).Msg("move played")
	}

	// The reward is from the loser's perspective: the player left to move
	// after a winning line was completed. Recover the winner's id from it.
	winner := 0.0
	if state.Reward < 0 {
		winner = float64(-state.Board.Mover)
	}

	log.Info().Float64("winner", winner).Int("moves", moves).Msg("game over")
	return winner, moves, records, nil
}
