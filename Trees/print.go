package Trees

import (
	"github.com/xlab/treeprint"
)

// which side of its parent a printed node is on.
type branch string

const (
	left  branch = "L"
	right branch = "R"
)

// String renders the shape of the tree, one node per line with the root on top. A child is
// prefixed by L or R according to which side of its parent it's on.
// Time: O(n)
func (u *SplayTree[T]) String() string {
	if u.root == nil {
		return treeprint.New().String()
	}
	type item struct {
		n   *node[T]
		out treeprint.Tree
	}
	t := treeprint.NewWithRoot(u.root.v)
	st := append(make([]item, 0, 32), item{u.root, t})
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top.n.l != nil {
			st = append(st, item{top.n.l, top.out.AddMetaBranch(string(left), top.n.l.v)})
		}
		if top.n.r != nil {
			st = append(st, item{top.n.r, top.out.AddMetaBranch(string(right), top.n.r.v)})
		}
	}
	return t.String()
}
