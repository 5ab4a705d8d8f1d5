package Trees

// A node in the SplayTree.
// The zero value is a leaf holding the zero value of T.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// rotateLeft performs a left rotation on the subtree held by n. n is passed by reference in order
// to modify its content, afterward it holds the former right child. (*n).r mustn't be nil.
// Time: O(1); Space: O(1)
func rotateLeft[T any](n **node[T]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	*n = rc
}

// rotateRight performs a right rotation on the subtree held by n. n is passed by reference in order
// to modify its content, afterward it holds the former left child. (*n).l mustn't be nil.
// Time: O(1); Space: O(1)
func rotateRight[T any](n **node[T]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	*n = lc
}
