package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// SplayTree is a binary search tree with no repeated values. It doesn't keep any
// balance information, instead every access moves the accessed node to the root
// through rotations, which gives amortized O(log n) operations and makes recently
// used values cheap to reach again.
// Searching records the visited nodes in an explicit stack, and splaying consumes
// that stack from the top, so the depth of the tree, which can be O(n) before the
// amortization kicks in, never turns into recursion depth.
// The tree also remembers the root before its last mutation so that the mutation
// can be undone once, see Undo.
// A SplayTree isn't safe for concurrent use; even Contains modifies it.
type SplayTree[T any] struct {
	root *node[T]
	cmp  func(T, T) int
	size uint
	path []*node[T] //buffer reused by every access.
	prev snapshot[T]
}

// New returns an empty SplayTree ordered by cmp.Compare.
func New[T constraints.Ordered]() *SplayTree[T] {
	return &SplayTree[T]{cmp: cmp.Compare[T]}
}

// NewFunc returns an empty SplayTree ordered by c. c(a, b) must be negative when
// a<b, positive when a>b, and 0 when a and b are the same value.
func NewFunc[T any](c func(a, b T) int) *SplayTree[T] {
	return &SplayTree[T]{cmp: c}
}

// From builds a SplayTree of minimal height using the given slice iteratively. This is
// faster than repeatedly calling Insert.
// The given slice must be sorted in ascending order and mustn't contain duplicate elements,
// otherwise From panics with InvalidSliceError.
// Time: O(n).
func From[T constraints.Ordered](sli []T) *SplayTree[T] {
	for i := 1; i < len(sli); i++ {
		if !(sli[i-1] < sli[i]) {
			panic(InvalidSliceError[T]{i - 1, sli[i-1], sli[i]})
		}
	}
	u := New[T]()
	type span struct {
		lo, hi int
		at     **node[T]
	}
	st := make([]span, 1, 64)
	st[0] = span{0, len(sli), &u.root}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top.lo < top.hi {
			mid := int(uint(top.lo+top.hi) >> 1)
			n := &node[T]{v: sli[mid]}
			*top.at = n
			st = append(st, span{top.lo, mid, &n.l}, span{mid + 1, top.hi, &n.r})
		}
	}
	u.size = uint(len(sli))
	return u
}

// walk descends from the subtree held by at toward v and returns the visited nodes, the
// top of the subtree first. The last node is either the one holding v or the last node
// before the walk fell off the tree. If rightmost is true, v is ignored and the walk goes
// to the maximum of the subtree instead.
// While an undo snapshot is held, every visited node is replaced by a copy before it's
// recorded, so that the rotations that follow never touch a node the snapshot can reach.
// Time: O(D)
func (u *SplayTree[T]) walk(at **node[T], v T, rightmost bool) []*node[T] {
	st := u.path[:0]
	for *at != nil {
		cur := *at
		if u.prev.held {
			cp := *cur
			cur = &cp
			*at = cur
		}
		st = append(st, cur)
		if rightmost {
			at = &cur.r
		} else if c := u.cmp(v, cur.v); c < 0 {
			at = &cur.l
		} else if c > 0 {
			at = &cur.r
		} else {
			break
		}
	}
	u.path = st
	return st
}

// access is walk from the root.
func (u *SplayTree[T]) access(v T) []*node[T] {
	return u.walk(&u.root, v, false)
}

// splay moves the last node of st to the subtree held by at, using the rest of st as its
// ancestors. st[0] must be *at and every st[i+1] must be a child of st[i].
// Each step consumes the parent and the grandparent from the stack and lifts the node two
// levels; a lone parent left at the bottom of the stack is the final zig.
// Time: O(len(st))
func splay[T any](at **node[T], st []*node[T]) {
	x := st[len(st)-1]
	for st = st[:len(st)-1]; len(st) > 0; {
		p := st[len(st)-1]
		if len(st) == 1 { //zig, p is *at.
			if p.l == x {
				rotateRight(at)
			} else {
				rotateLeft(at)
			}
			return
		}
		g := st[len(st)-2]
		st = st[:len(st)-2]
		gp := link(at, st, g)
		if g.l == p {
			if p.l == x { //zig-zig
				rotateRight(gp)
				rotateRight(gp)
			} else { //zig-zag
				rotateLeft(&g.l)
				rotateRight(gp)
			}
		} else {
			if p.r == x {
				rotateLeft(gp)
				rotateLeft(gp)
			} else {
				rotateRight(&g.r)
				rotateLeft(gp)
			}
		}
	}
}

// link returns the pointer holding n: at if st is empty, otherwise the child field of the
// last node of st, which is n's parent.
func link[T any](at **node[T], st []*node[T], n *node[T]) **node[T] {
	if len(st) == 0 {
		return at
	}
	if a := st[len(st)-1]; a.l == n {
		return &a.l
	} else {
		return &a.r
	}
}

// Insert [Tree.Insert].
// v ends up at the root whether or not it was already present. The tree before the call
// becomes the undo snapshot.
// Time: amortized O(log n)
func (u *SplayTree[T]) Insert(v T) bool {
	u.save()
	if u.root == nil {
		u.root = &node[T]{v: v}
		u.size = 1
		return true
	}
	st := u.access(v)
	top := st[len(st)-1]
	c := u.cmp(v, top.v)
	if c != 0 {
		n := &node[T]{v: v}
		if c < 0 {
			top.l = n
		} else {
			top.r = n
		}
		st = append(st, n)
		u.path = st
		u.size++
	}
	splay(&u.root, st)
	return c != 0
}

// Remove [Tree.Remove].
// When v is absent, the last node reached by the search is splayed to the root and the undo
// snapshot is left as it was. Otherwise v is splayed to the root, the maximum of its left
// subtree is splayed to the top of that subtree and takes over v's right subtree.
// Time: amortized O(log n)
func (u *SplayTree[T]) Remove(v T) bool {
	if u.root == nil {
		return false
	}
	old := u.prev
	u.save()
	st := u.access(v)
	splay(&u.root, st)
	if u.cmp(v, u.root.v) != 0 {
		u.prev = old
		return false
	}
	l, r := u.root.l, u.root.r
	if l != nil {
		splay(&l, u.walk(&l, v, true))
		l.r = r
		u.root = l
	} else {
		u.root = r
	}
	u.size--
	return true
}

// Contains [Tree.Contains].
// The found node, or the last node reached when v is absent, is splayed to the root.
// Time: amortized O(log n)
func (u *SplayTree[T]) Contains(v T) bool {
	if u.root == nil {
		return false
	}
	splay(&u.root, u.access(v))
	return u.cmp(v, u.root.v) == 0
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *SplayTree[T]) Size() uint {
	return u.size
}

// IsEmpty is true if the tree holds no value.
func (u *SplayTree[T]) IsEmpty() bool {
	return u.root == nil
}

// Root returns the value at the root, which is the value accessed last.
func (u *SplayTree[T]) Root() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return u.root.v, true
}

// Minimum [Tree.Minimum]. Doesn't splay.
// Time: O(D); Space: O(1)
func (u *SplayTree[T]) Minimum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum [Tree.Maximum]. Doesn't splay.
// Time: O(D); Space: O(1)
func (u *SplayTree[T]) Maximum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
}

// Height is the number of nodes on the longest path from the root, 0 for an empty tree.
// Time: O(n); Space: O(D)
func (u *SplayTree[T]) Height() uint {
	type item struct {
		n *node[T]
		d uint
	}
	var h uint
	st := make([]item, 0, 32)
	if u.root != nil {
		st = append(st, item{u.root, 1})
	}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		h = max(h, top.d)
		if top.n.l != nil {
			st = append(st, item{top.n.l, top.d + 1})
		}
		if top.n.r != nil {
			st = append(st, item{top.n.r, top.d + 1})
		}
	}
	return h
}

// Clear the tree and the undo snapshot. O(1).
func (u *SplayTree[T]) Clear() {
	u.root, u.size, u.path = nil, 0, u.path[:0]
	u.prev = snapshot[T]{}
}
