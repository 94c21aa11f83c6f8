package searcher

// Tree is the rooted search structure. Across real moves the root is
// replaced by the subtree under the action actually played, keeping its
// statistics; every sibling subtree becomes unreachable.
type Tree struct {
	root *Node
}

func NewTree() *Tree {
	return &Tree{root: newNode(nil)}
}

func (t *Tree) Root() *Node {
	return t.root
}

// Advance re-roots the tree to the child for action, severing its parent
// link. A negative action or an unexplored one discards the whole tree.
// Reports whether the existing subtree was reused.
func (t *Tree) Advance(action int) bool {
	if action < 0 {
		t.Reset()
		return false
	}
	child, ok := t.root.children[action]
	if !ok {
		t.Reset()
		return false
	}
	child.parent = nil
	t.root = child
	return true
}

func (t *Tree) Reset() {
	t.root = newNode(nil)
}
