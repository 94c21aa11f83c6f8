package searcher

import "errors"

var (
	// ErrEmptyChildSet reports Select on a node without children.
	ErrEmptyChildSet = errors.New("select on a node with no children")
	// ErrDuplicateExpansion reports Expand on an already-expanded action.
	ErrDuplicateExpansion = errors.New("action is already expanded")
	// ErrEmptyTree reports action selection on a tree whose root has no
	// children, e.g. when every episode terminated before expansion.
	// Recoverable: raise the episode budget or treat as "no move".
	ErrEmptyTree = errors.New("search produced no root children")
)
