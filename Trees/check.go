package Trees

import "errors"

// Corrupt [Tree.Corrupt]
func (u *SplayTree[T]) Corrupt() bool {
	return u.Check() != nil
}

// Check walks the whole tree and returns a *CorruptError describing the first broken
// invariant: a value out of order with one of its ancestors, a node reachable twice, or
// a node count different from Size. Returns nil for a sound tree.
// Time: O(n); Space: O(n)
func (u *SplayTree[T]) Check() error {
	type bound struct {
		n      *node[T]
		lo, hi *node[T] //nearest ancestors the value must be greater, less than.
	}
	seen := make(map[*node[T]]struct{}, u.size)
	st := make([]bound, 0, 32)
	if u.root != nil {
		st = append(st, bound{u.root, nil, nil})
	}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if _, in := seen[top.n]; in {
			return &CorruptError[T]{"node reachable twice", top.n.v}
		}
		seen[top.n] = struct{}{}
		if top.lo != nil && u.cmp(top.n.v, top.lo.v) <= 0 {
			return &CorruptError[T]{"not greater than an ancestor it's right of", top.n.v}
		}
		if top.hi != nil && u.cmp(top.n.v, top.hi.v) >= 0 {
			return &CorruptError[T]{"not less than an ancestor it's left of", top.n.v}
		}
		if top.n.l != nil {
			st = append(st, bound{top.n.l, top.lo, top.n})
		}
		if top.n.r != nil {
			st = append(st, bound{top.n.r, top.n, top.hi})
		}
	}
	if uint(len(seen)) != u.size {
		v, _ := u.Root()
		return &CorruptError[T]{"node count differs from size", v}
	}
	return nil
}

// IsCorrupt reports whether err came from Check.
func IsCorrupt[T any](err error) bool {
	var e *CorruptError[T]
	return errors.As(err, &e)
}
