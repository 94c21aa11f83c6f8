package searcher

import (
	"fmt"
	"time"

	"gomoku/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// ExpansionPolicy picks how many children one episode adds to the tree.
type ExpansionPolicy int

const (
	// ExpandSingle adds one child for a uniformly random unexplored action.
	ExpandSingle ExpansionPolicy = iota
	// ExpandAll adds children for every unexplored action, then plays out
	// from a uniformly random new one.
	ExpandAll
)

// Default hyperparameters.
const (
	DefaultExploration = 5.0
	DefaultEpisodes    = 1500
	DefaultMoveLimit   = 1000
)

type Option func(m *MCTS)

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		m.exploration = c
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		m.episodes = episodes
	}
}

// WithMoveLimit bounds the number of rollout moves per episode. The limit
// guards against a misbehaving environment that never reaches terminal.
func WithMoveLimit(limit int) Option {
	return func(m *MCTS) {
		m.moveLimit = limit
	}
}

func WithExpansionPolicy(policy ExpansionPolicy) Option {
	return func(m *MCTS) {
		m.expansion = policy
	}
}

// WithSeed fixes the random source for expansion and rollout choices so
// searches are reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

// MCTS runs sequential Monte Carlo tree search episodes against a private
// clone of the environment and derives the action to play from root-level
// statistics. One instance exclusively owns one tree.
type MCTS struct {
	exploration float64
	episodes    int
	moveLimit   int
	expansion   ExpansionPolicy
	rng         *rand.Rand
	tree        *Tree
	treeReused  bool
	metrics     MetricsCollector
}

func NewMCTS(options ...Option) (*MCTS, error) {
	m := &MCTS{ // Default values
		exploration: DefaultExploration,
		episodes:    DefaultEpisodes,
		moveLimit:   DefaultMoveLimit,
		expansion:   ExpandSingle,
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		tree:        NewTree(),
		metrics:     NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}

	if m.exploration <= 0 {
		return nil, fmt.Errorf("exploration constant must be positive, got %v", m.exploration)
	}
	if m.episodes <= 0 {
		return nil, fmt.Errorf("episode budget must be positive, got %d", m.episodes)
	}
	if m.moveLimit <= 0 {
		return nil, fmt.Errorf("rollout move limit must be positive, got %d", m.moveLimit)
	}
	return m, nil
}

func (m *MCTS) Tree() *Tree {
	return m.tree
}

// Advance re-roots the tree after a real move, by this player or the
// opponent, keeping the statistics below the played action.
func (m *MCTS) Advance(action int) {
	m.treeReused = m.tree.Advance(action)
}

// Reset discards the tree and all statistics.
func (m *MCTS) Reset() {
	m.tree.Reset()
}

// Metrics reports statistics for the latest FindAction call.
func (m *MCTS) Metrics() MoveMetrics {
	return m.metrics.Complete()
}

// FindAction runs the episode budget from state and returns the root action
// with the highest visit count, breaking ties by higher mean value and then
// by lower action index. The environment is cloned once; each episode
// rewinds the clone to state, so the authoritative env is never mutated.
func (m *MCTS) FindAction(env game.Environment, state game.State) (int, error) {
	m.metrics.Start()
	m.metrics.SetTreeReused(m.treeReused)

	sim := env.Clone()
	for i := 0; i < m.episodes; i++ {
		sim.Load(state)
		m.simulate(sim, state)
		m.metrics.AddEpisode()
	}

	return m.bestAction()
}

// simulate runs one episode: select, expand, play out, backpropagate.
func (m *MCTS) simulate(env game.Environment, state game.State) {
	node := m.tree.root
	for !node.IsLeaf() && node.IsFullyExpanded(len(state.Actions)) {
		action, child, err := node.Select(m.exploration)
		if err != nil {
			panic("non-leaf node failed selection: " + err.Error())
		}
		node = child
		state = env.Step(action)
	}

	if len(state.Actions) == 0 { // Nothing to expand; no-op episode
		return
	}

	child, action := m.expand(node, state.Actions)
	state = env.Step(action)

	reward := m.rollout(env, state)
	child.Backpropagate(reward)
}

func (m *MCTS) expand(node *Node, actions []int) (*Node, int) {
	unexplored := node.unexplored(actions)
	if len(unexplored) == 0 {
		panic("expansion reached with no unexplored actions")
	}

	if m.expansion == ExpandAll {
		for _, action := range unexplored {
			if _, err := node.Expand(action); err != nil {
				panic(err)
			}
		}
		action := unexplored[m.rng.Intn(len(unexplored))]
		return node.children[action], action
	}

	action := unexplored[m.rng.Intn(len(unexplored))]
	child, err := node.Expand(action)
	if err != nil {
		panic(err)
	}
	return child, action
}

// rollout plays uniformly random actions until the game ends or the move
// limit is hit, then re-orients the environment's absolute reward into the
// perspective of the player about to move at the expanded node.
func (m *MCTS) rollout(env game.Environment, state game.State) float64 {
	moves := 0
	for !state.Terminal && len(state.Actions) > 0 {
		if moves >= m.moveLimit {
			log.Warn().Int("limit", m.moveLimit).Msg("rollout reached move limit")
			break
		}
		action := state.Actions[m.rng.Intn(len(state.Actions))]
		state = env.Step(action)
		moves++
	}
	if state.Terminal || len(state.Actions) == 0 {
		m.metrics.AddFullPlayout()
	}

	// (-1)^(moves+1) * reward
	sign := -1.0
	if moves%2 == 1 {
		sign = 1.0
	}
	return sign * state.Reward
}

func (m *MCTS) bestAction() (int, error) {
	root := m.tree.root
	if len(root.children) == 0 {
		return -1, ErrEmptyTree
	}

	bestAction := -1
	var best *Node
	for action, child := range root.children {
		if best == nil || betterAction(child, action, best, bestAction) {
			best = child
			bestAction = action
		}
	}
	return bestAction, nil
}

// betterAction orders root children by (visits, value), ties toward the
// lower action index.
func betterAction(a *Node, actionA int, b *Node, actionB int) bool {
	if a.visits != b.visits {
		return a.visits > b.visits
	}
	if a.value != b.value {
		return a.value > b.value
	}
	return actionA < actionB
}
