package Trees

// Clone returns a deep copy of the tree. The copy shares no node with u and has
// no undo snapshot.
// Time: O(n); Space: O(D) besides the copy.
func (u *SplayTree[T]) Clone() *SplayTree[T] {
	c := &SplayTree[T]{cmp: u.cmp, size: u.size}
	type pair struct {
		src *node[T]
		dst **node[T]
	}
	st := make([]pair, 0, 32)
	if u.root != nil {
		st = append(st, pair{u.root, &c.root})
	}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		n := &node[T]{v: top.src.v}
		*top.dst = n
		if top.src.l != nil {
			st = append(st, pair{top.src.l, &n.l})
		}
		if top.src.r != nil {
			st = append(st, pair{top.src.r, &n.r})
		}
	}
	return c
}

// Equals reports whether o has the same shape as u with equal values at the corresponding
// positions. Node identity doesn't matter, so a tree equals its Clone. Neither tree is
// modified.
// Time: O(n); Space: O(D)
func (u *SplayTree[T]) Equals(o *SplayTree[T]) bool {
	if o == nil {
		return false
	}
	if u.size != o.size {
		return false
	}
	st := make([][2]*node[T], 0, 32)
	st = append(st, [2]*node[T]{u.root, o.root})
	for len(st) > 0 {
		a, b := st[len(st)-1][0], st[len(st)-1][1]
		st = st[:len(st)-1]
		if a == nil || b == nil {
			if a != b {
				return false
			}
			continue
		}
		if u.cmp(a.v, b.v) != 0 {
			return false
		}
		st = append(st, [2]*node[T]{a.l, b.l}, [2]*node[T]{a.r, b.r})
	}
	return true
}
