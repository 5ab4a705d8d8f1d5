package Trees

import "iter"

// Tree represents A self adjusting tree like structure implemented using nodes.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value of T and should not be used.
// Unlike a balanced tree, the lookups of a Tree are allowed to restructure
// it, so none of the receivers are safe for concurrent use, including Contains.
// Every method is implemented iteratively; none of them recurse on the depth
// of the tree.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if a new node was created, false
	//if v was already present.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if v was present and removed.
	Remove(v T) bool
	//Contains reports whether v is in the Tree.
	Contains(v T) bool
	//Undo the last mutation. Returning false if there's nothing to undo.
	Undo() bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Size of the tree.
	Size() uint
	//InOrder returns a sequence of the values in ascending order. The
	//sequence can be ranged over more than once, each time restarting
	//from the smallest value. The tree must not be modified while ranging.
	InOrder() iter.Seq[T]
	//PreOrder is like InOrder but yields a node before its subtrees.
	PreOrder() iter.Seq[T]
	//PostOrder is like InOrder but yields a node after its subtrees.
	PostOrder() iter.Seq[T]
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering or a node is reachable twice.
	Corrupt() bool
}

var _ Tree[int] = (*SplayTree[int])(nil)
