package bimap

import "iter"

// All returns an iterator over all pairs in Left order.
//
// The pair currently handed to the loop body may be erased from within the
// loop; other mutations during iteration leave the sequence undefined.
func (m *Bimap[L, R]) All() iter.Seq2[L, R] {
	return func(yield func(L, R) bool) {
		m.f.left.Walk(func(n *node[L, R]) bool {
			return yield(n.left, n.right)
		})
	}
}

// AllByRight returns an iterator over all pairs in Right order, Right value
// first.
func (m *Bimap[L, R]) AllByRight() iter.Seq2[R, L] {
	return func(yield func(R, L) bool) {
		m.f.right.Walk(func(n *node[L, R]) bool {
			return yield(n.right, n.left)
		})
	}
}

// Backward returns an iterator over all pairs in descending Left order.
func (m *Bimap[L, R]) Backward() iter.Seq2[L, R] {
	return func(yield func(L, R) bool) {
		m.f.left.WalkBackward(func(n *node[L, R]) bool {
			return yield(n.left, n.right)
		})
	}
}

// Lefts returns an iterator over all Left values in ascending order.
func (m *Bimap[L, R]) Lefts() iter.Seq[L] {
	return func(yield func(L) bool) {
		m.f.left.Walk(func(n *node[L, R]) bool {
			return yield(n.left)
		})
	}
}

// Rights returns an iterator over all Right values in ascending order.
func (m *Bimap[L, R]) Rights() iter.Seq[R] {
	return func(yield func(R) bool) {
		m.f.right.Walk(func(n *node[L, R]) bool {
			return yield(n.right)
		})
	}
}
