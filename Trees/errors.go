package Trees

import "fmt"

// InvalidSliceError is raised by From when the given slice isn't strictly ascending.
// Prev at Index and Next at Index+1 are the first pair out of order.
type InvalidSliceError[T any] struct {
	Index      int
	Prev, Next T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending at %d: %v, %v", e.Index, e.Prev, e.Next)
}

// CorruptError describes the first broken invariant found by Check. It is a programming
// error; no sequence of calls on the exported methods should produce it.
type CorruptError[T any] struct {
	Reason string
	At     T
}

func (e *CorruptError[T]) Error() string {
	return fmt.Sprintf("corrupt tree at %v: %s", e.At, e.Reason)
}
