package agent

import (
	"testing"

	"gomoku/game"
	"gomoku/searcher"

	"github.com/stretchr/testify/require"
)

func newTestEnv(t *testing.T) *game.Gomoku {
	t.Helper()
	env, err := game.NewGomoku(3, 3, game.WithSeed(1))
	require.NoError(t, err)
	env.Reset()
	return env
}

func newTestAgent(t *testing.T, episodes int) *MCTSAgent {
	t.Helper()
	search, err := searcher.NewMCTS(searcher.WithEpisodes(episodes),
		searcher.WithSeed(1), searcher.WithMetrics())
	require.NoError(t, err)
	return NewMCTSAgent(newTestEnv(t), search)
}

func TestMCTSAgentSelectAction(t *testing.T) {
	t.Run("selecting with no legal moves", func(t *testing.T) {
		agent := newTestAgent(t, 100)

		action, err := agent.SelectAction(game.State{})

		require.ErrorIs(t, err, ErrNoLegalMoves)
		require.Equal(t, NoAction, action)
	})

	t.Run("selecting on a finished game", func(t *testing.T) {
		agent := newTestAgent(t, 100)
		state := game.State{Actions: []int{4}, Terminal: true}

		action, err := agent.SelectAction(state)

		require.ErrorIs(t, err, ErrAlreadyTerminal)
		require.Equal(t, NoAction, action)
	})

	t.Run("selecting a legal action", func(t *testing.T) {
		env := newTestEnv(t)
		agent := newTestAgent(t, 200)
		state := env.Reset()

		action, err := agent.SelectAction(state)

		require.NoError(t, err)
		require.Contains(t, state.Actions, action)
	})

	t.Run("reusing the tree across turns", func(t *testing.T) {
		env := newTestEnv(t)
		agent := newTestAgent(t, 1000)
		state := env.Reset()

		action, err := agent.SelectAction(state)
		require.NoError(t, err)
		require.False(t, agent.Metrics().TreeReused,
			"The first move starts from an empty tree")
		state = env.Step(action)

		opponent := NewRandomAgent(2)
		reply, err := opponent.SelectAction(state)
		require.NoError(t, err)
		state = env.Step(reply)

		_, err = agent.SelectAction(state)
		require.NoError(t, err)
		require.True(t, agent.Metrics().TreeReused,
			"An explored opponent reply should carry the subtree over")
	})
}

func TestMCTSAgentResetPlayer(t *testing.T) {
	t.Run("discarding the tree between games", func(t *testing.T) {
		env := newTestEnv(t)
		search, err := searcher.NewMCTS(searcher.WithEpisodes(100),
			searcher.WithSeed(1))
		require.NoError(t, err)
		agent := NewMCTSAgent(env, search)
		_, err = agent.SelectAction(env.Reset())
		require.NoError(t, err)

		agent.ResetPlayer()

		require.True(t, search.Tree().Root().IsLeaf(),
			"A new game should start from an empty tree")
	})
}

func TestRandomAgentSelectAction(t *testing.T) {
	t.Run("selecting a legal action", func(t *testing.T) {
		agent := NewRandomAgent(1)
		state := game.State{Actions: []int{2, 5, 7}}

		action, err := agent.SelectAction(state)

		require.NoError(t, err)
		require.Contains(t, state.Actions, action)
	})

	t.Run("selecting with no legal moves", func(t *testing.T) {
		agent := NewRandomAgent(1)

		action, err := agent.SelectAction(game.State{})

		require.ErrorIs(t, err, ErrNoLegalMoves)
		require.Equal(t, NoAction, action)
	})

	t.Run("selecting on a finished game", func(t *testing.T) {
		agent := NewRandomAgent(1)
		state := game.State{Actions: []int{4}, Terminal: true}

		action, err := agent.SelectAction(state)

		require.ErrorIs(t, err, ErrAlreadyTerminal)
		require.Equal(t, NoAction, action)
	})
}
