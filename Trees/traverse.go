package Trees

import (
	"iter"

	"github.com/g-m-twostay/go-splay/Queues"
)

// InOrder [Tree.InOrder]
// Uses a stack of at most D nodes, allocated each time the sequence is ranged over.
// Time: amortized O(1) per value.
func (u *SplayTree[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		st := make([]*node[T], 0, 32)
		for cur := u.root; cur != nil || len(st) > 0; cur = cur.r {
			for ; cur != nil; cur = cur.l {
				st = append(st, cur)
			}
			cur, st = st[len(st)-1], st[:len(st)-1]
			if !yield(cur.v) {
				return
			}
		}
	}
}

// PreOrder [Tree.PreOrder]
func (u *SplayTree[T]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == nil {
			return
		}
		st := append(make([]*node[T], 0, 32), u.root)
		for len(st) > 0 {
			cur := st[len(st)-1]
			st = st[:len(st)-1]
			if !yield(cur.v) {
				return
			}
			if cur.r != nil {
				st = append(st, cur.r)
			}
			if cur.l != nil {
				st = append(st, cur.l)
			}
		}
	}
}

// PostOrder [Tree.PostOrder]
// A node is yielded once the walk comes back to it from its right subtree, tracked by
// remembering the last yielded node.
func (u *SplayTree[T]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		st := make([]*node[T], 0, 32)
		var last *node[T]
		for cur := u.root; cur != nil || len(st) > 0; {
			if cur != nil {
				st = append(st, cur)
				cur = cur.l
				continue
			}
			top := st[len(st)-1]
			if top.r != nil && top.r != last {
				cur = top.r
				continue
			}
			st = st[:len(st)-1]
			if !yield(top.v) {
				return
			}
			last = top
		}
	}
}

// LevelOrder yields the values breadth first, from the root down and left to right within
// a level.
func (u *SplayTree[T]) LevelOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == nil {
			return
		}
		q := Queues.MakeArrayQueue[*node[T]](16)
		q.Push(u.root)
		for !q.Empty() {
			cur, _ := q.Pop()
			if !yield(cur.v) {
				return
			}
			if cur.l != nil {
				q.Push(cur.l)
			}
			if cur.r != nil {
				q.Push(cur.r)
			}
		}
	}
}
