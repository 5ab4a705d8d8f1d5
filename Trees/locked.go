package Trees

import (
	"iter"
	"slices"
	"sync"
)

// Locked guards a SplayTree with a mutex so it can be shared between goroutines. Every
// method, Contains included, takes the lock exclusively since all of them may restructure
// the tree.
type Locked[T any] struct {
	mu sync.Mutex
	t  *SplayTree[T]
}

// Lock wraps t. t mustn't be used directly afterward.
func Lock[T any](t *SplayTree[T]) *Locked[T] {
	return &Locked[T]{t: t}
}

func (u *Locked[T]) Insert(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Insert(v)
}

func (u *Locked[T]) Remove(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Remove(v)
}

func (u *Locked[T]) Contains(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Contains(v)
}

func (u *Locked[T]) Undo() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Undo()
}

func (u *Locked[T]) Size() uint {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Size()
}

// Clone returns an unguarded deep copy.
func (u *Locked[T]) Clone() *SplayTree[T] {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Clone()
}

// InOrder collects the values under the lock, the returned sequence ranges over that copy.
func (u *Locked[T]) InOrder() iter.Seq[T] {
	u.mu.Lock()
	vs := slices.Collect(u.t.InOrder())
	u.mu.Unlock()
	return slices.Values(vs)
}
