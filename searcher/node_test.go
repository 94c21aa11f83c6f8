package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeSelect(t *testing.T) {
	t.Run("selecting from a node with no children", func(t *testing.T) {
		node := newNode(nil)

		_, _, err := node.Select(2.0)

		require.ErrorIs(t, err, ErrEmptyChildSet,
			"Select requires a non-empty child set")
	})

	t.Run("selecting the max UCB child", func(t *testing.T) {
		node := newNode(nil)
		node.visits = 8
		weak, err := node.Expand(0)
		require.NoError(t, err)
		weak.visits = 3
		weak.value = 0.2
		strong, err := node.Expand(1)
		require.NoError(t, err)
		strong.visits = 1
		strong.value = 0.9

		action, child, err := node.Select(2.0)

		require.NoError(t, err)
		require.Equal(t, 1, action, "Should select the max UCB action")
		require.Equal(t, strong, child, "Should select the max UCB child")
	})

	t.Run("preferring an unvisited child", func(t *testing.T) {
		node := newNode(nil)
		node.visits = 8
		visited, err := node.Expand(0)
		require.NoError(t, err)
		visited.visits = 5
		visited.value = 1.0
		_, err = node.Expand(1)
		require.NoError(t, err)

		action, _, err := node.Select(2.0)

		require.NoError(t, err)
		require.Equal(t, 1, action,
			"The exploration term should dominate for an unvisited child")
	})

	t.Run("breaking score ties toward the lowest action", func(t *testing.T) {
		node := newNode(nil)
		node.visits = 4
		for _, action := range []int{7, 2, 5} {
			child, err := node.Expand(action)
			require.NoError(t, err)
			child.visits = 1
			child.value = 0.5
		}

		action, _, err := node.Select(2.0)

		require.NoError(t, err)
		require.Equal(t, 2, action,
			"Equal scores should resolve to the lowest action index")
	})
}

func TestNodeExpand(t *testing.T) {
	t.Run("expanding an unexplored action", func(t *testing.T) {
		node := newNode(nil)

		child, err := node.Expand(3)

		require.NoError(t, err)
		require.Equal(t, node, child.parent, "Child should link back to its parent")
		require.Equal(t, child, node.children[3], "Child should be keyed by its action")
		require.True(t, child.IsLeaf(), "New child should be a leaf")
		require.Equal(t, 0, child.Visits(), "New child should be unvisited")
		require.Equal(t, 1.0, child.prior, "New child should carry the default prior")
	})

	t.Run("expanding an already-expanded action", func(t *testing.T) {
		node := newNode(nil)
		_, err := node.Expand(3)
		require.NoError(t, err)

		_, err = node.Expand(3)

		require.ErrorIs(t, err, ErrDuplicateExpansion,
			"Expanding the same action twice is a logic error")
	})
}

func TestNodeBackpropagate(t *testing.T) {
	t.Run("alternating signs up the ancestor chain", func(t *testing.T) {
		root := newNode(nil)
		middle, err := root.Expand(0)
		require.NoError(t, err)
		leaf, err := middle.Expand(1)
		require.NoError(t, err)

		leaf.Backpropagate(1.0)

		require.Equal(t, 1.0, leaf.rewards, "Leaf should record the reward as is")
		require.Equal(t, -1.0, middle.rewards, "Parent should record the negated reward")
		require.Equal(t, 1.0, root.rewards, "Grandparent should record the reward again")
		for _, node := range []*Node{leaf, middle, root} {
			require.Equal(t, 1, node.visits, "Every ancestor should record one visit")
		}
	})

	t.Run("keeping the mean equal to total over visits", func(t *testing.T) {
		node := newNode(nil)

		node.Backpropagate(1.0)
		node.Backpropagate(0.5)

		require.Equal(t, 2, node.visits)
		require.Equal(t, 1.5, node.rewards)
		require.InDelta(t, 0.75, node.value, 1e-12,
			"Mean value must equal total rewards over visits")
	})
}

func TestNodeIsFullyExpanded(t *testing.T) {
	t.Run("boundary at the legal action count", func(t *testing.T) {
		node := newNode(nil)
		_, err := node.Expand(0)
		require.NoError(t, err)
		_, err = node.Expand(1)
		require.NoError(t, err)

		require.True(t, node.IsFullyExpanded(2),
			"A node with k children is fully expanded for k actions")
		require.False(t, node.IsFullyExpanded(3),
			"A node with k children is not fully expanded for k+1 actions")
	})
}

func TestNodeIsLeaf(t *testing.T) {
	node := newNode(nil)
	require.True(t, node.IsLeaf(), "A fresh node should be a leaf")

	_, err := node.Expand(0)
	require.NoError(t, err)
	require.False(t, node.IsLeaf(), "An expanded node should not be a leaf")
}
