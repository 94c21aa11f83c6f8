package searcher

import (
	"fmt"
	"math"
)

// Node is a node in the search tree. The parent link is only used for
// backup traversal and UCB normalization; children are keyed by action and
// an absent key means the action is unexplored from this node.
type Node struct {
	parent   *Node
	children map[int]*Node
	visits   int
	rewards  float64
	value    float64 // rewards / visits, cached; 0 while unvisited
	prior    float64 // reserved for guided expansion policies
}

func newNode(parent *Node) *Node {
	return &Node{
		parent:   parent,
		children: make(map[int]*Node),
		prior:    1,
	}
}

// Select returns the action and child maximizing the UCB score. Ties break
// toward the lowest action index so selection is deterministic.
func (n *Node) Select(exploration float64) (int, *Node, error) {
	if len(n.children) == 0 {
		return -1, nil, ErrEmptyChildSet
	}

	scorer := newUCB(exploration, n.visits)
	bestAction := -1
	bestScore := math.Inf(-1)
	var bestChild *Node
	for action, child := range n.children {
		score := scorer.evaluate(child.value, child.visits)
		if score > bestScore || (score == bestScore && (bestChild == nil || action < bestAction)) {
			bestScore = score
			bestAction = action
			bestChild = child
		}
	}
	return bestAction, bestChild, nil
}

// Expand creates the child for an unexplored action.
func (n *Node) Expand(action int) (*Node, error) {
	if _, ok := n.children[action]; ok {
		return nil, fmt.Errorf("%w: action %d", ErrDuplicateExpansion, action)
	}
	child := newNode(n)
	n.children[action] = child
	return child, nil
}

// Backpropagate records a visit and the reward on this node, then recurses
// to the parent with the sign flipped: a win for the player acting here is
// a loss for the player who moved into this node.
func (n *Node) Backpropagate(reward float64) {
	n.visits++
	n.rewards += reward
	n.value = n.rewards / float64(n.visits)

	if n.parent != nil {
		n.parent.Backpropagate(-reward)
	}
}

func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

func (n *Node) IsFullyExpanded(legalActions int) bool {
	return len(n.children) >= legalActions
}

// Visits reports how many backups touched this node.
func (n *Node) Visits() int {
	return n.visits
}

// Value reports the mean backed-up reward.
func (n *Node) Value() float64 {
	return n.value
}

// unexplored filters the legal actions down to those without a child yet,
// preserving order.
func (n *Node) unexplored(actions []int) []int {
	out := make([]int, 0, len(actions))
	for _, action := range actions {
		if _, ok := n.children[action]; !ok {
			out = append(out, action)
		}
	}
	return out
}
