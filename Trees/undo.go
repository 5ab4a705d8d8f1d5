package Trees

// snapshot of the tree before its last mutation.
// The nodes reachable from root are never modified while held is true, because
// every walk copies the nodes it visits first; see SplayTree.walk.
type snapshot[T any] struct {
	root *node[T]
	size uint
	held bool //distinguishes a snapshot of the empty tree from no snapshot.
}

func (u *SplayTree[T]) save() {
	u.prev = snapshot[T]{u.root, u.size, true}
}

// Undo [Tree.Undo].
// Restores the tree to what it was right before the last Insert or successful Remove,
// discarding everything done since, including the restructuring done by Contains. Only
// one level is kept, so a second Undo returns false.
// Time: O(1)
func (u *SplayTree[T]) Undo() bool {
	if !u.prev.held {
		return false
	}
	u.root, u.size = u.prev.root, u.prev.size
	u.prev = snapshot[T]{}
	return true
}

// CanUndo returns true if there's a mutation to undo.
func (u *SplayTree[T]) CanUndo() bool {
	return u.prev.held
}

// Commit drops the undo snapshot. Accesses stop copying the nodes they visit until the
// next mutation.
func (u *SplayTree[T]) Commit() {
	u.prev = snapshot[T]{}
}
