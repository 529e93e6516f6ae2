package bimap

// LeftIterator is a bidirectional cursor over the pairs of a bimap in Left
// order. The zero value and the iterator past the last pair are end
// iterators.
//
// Iterators are invalidated exactly when the pair they point to is erased.
// Lookups restructure the trees but never invalidate iterators.
type LeftIterator[L, R any] struct {
	f *forest[L, R]
	n *node[L, R]
}

// RightIterator is a bidirectional cursor over the pairs of a bimap in Right
// order. See LeftIterator.
type RightIterator[L, R any] struct {
	f *forest[L, R]
	n *node[L, R]
}

// BeginLeft returns an iterator to the pair with the smallest Left value.
func (m *Bimap[L, R]) BeginLeft() LeftIterator[L, R] {
	return LeftIterator[L, R]{f: m.f, n: m.f.left.Min()}
}

// EndLeft returns the end iterator in Left order.
func (m *Bimap[L, R]) EndLeft() LeftIterator[L, R] {
	return LeftIterator[L, R]{f: m.f}
}

// BeginRight returns an iterator to the pair with the smallest Right value.
func (m *Bimap[L, R]) BeginRight() RightIterator[L, R] {
	return RightIterator[L, R]{f: m.f, n: m.f.right.Min()}
}

// EndRight returns the end iterator in Right order.
func (m *Bimap[L, R]) EndRight() RightIterator[L, R] {
	return RightIterator[L, R]{f: m.f}
}

// --- LeftIterator ----------------------------------------------------------

// IsEnd reports whether it is an end iterator.
func (it LeftIterator[L, R]) IsEnd() bool {
	return it.n == nil
}

// Get returns the Left value of the pair. Get panics for end iterators.
func (it LeftIterator[L, R]) Get() L {
	assert(it.n != nil, "bimap: dereferencing end iterator")
	return it.n.left
}

// Other returns the Right value of the pair. Other panics for end iterators.
func (it LeftIterator[L, R]) Other() R {
	assert(it.n != nil, "bimap: dereferencing end iterator")
	return it.n.right
}

// Pair returns both values of the pair.
func (it LeftIterator[L, R]) Pair() (L, R) {
	assert(it.n != nil, "bimap: dereferencing end iterator")
	return it.n.left, it.n.right
}

// Next returns an iterator to the following pair in Left order. Next of an
// end iterator is the end iterator.
func (it LeftIterator[L, R]) Next() LeftIterator[L, R] {
	if it.n == nil {
		return it
	}
	return LeftIterator[L, R]{f: it.f, n: it.f.left.Next(it.n)}
}

// Prev returns an iterator to the preceding pair in Left order. Prev of the
// end iterator is the last pair; Prev of the first pair is the end iterator.
func (it LeftIterator[L, R]) Prev() LeftIterator[L, R] {
	if it.f == nil {
		return it
	}
	if it.n == nil {
		return LeftIterator[L, R]{f: it.f, n: it.f.left.Max()}
	}
	return LeftIterator[L, R]{f: it.f, n: it.f.left.Prev(it.n)}
}

// Flip returns an iterator in Right order pointing to the same pair. Flipping
// an end iterator yields the end iterator of the other side.
func (it LeftIterator[L, R]) Flip() RightIterator[L, R] {
	return RightIterator[L, R](it)
}

// Equal reports whether it and other point to the same position.
func (it LeftIterator[L, R]) Equal(other LeftIterator[L, R]) bool {
	return it == other
}

// --- RightIterator ---------------------------------------------------------

// IsEnd reports whether it is an end iterator.
func (it RightIterator[L, R]) IsEnd() bool {
	return it.n == nil
}

// Get returns the Right value of the pair. Get panics for end iterators.
func (it RightIterator[L, R]) Get() R {
	assert(it.n != nil, "bimap: dereferencing end iterator")
	return it.n.right
}

// Other returns the Left value of the pair. Other panics for end iterators.
func (it RightIterator[L, R]) Other() L {
	assert(it.n != nil, "bimap: dereferencing end iterator")
	return it.n.left
}

// Pair returns both values of the pair, Right value first.
func (it RightIterator[L, R]) Pair() (R, L) {
	assert(it.n != nil, "bimap: dereferencing end iterator")
	return it.n.right, it.n.left
}

// Next returns an iterator to the following pair in Right order.
func (it RightIterator[L, R]) Next() RightIterator[L, R] {
	if it.n == nil {
		return it
	}
	return RightIterator[L, R]{f: it.f, n: it.f.right.Next(it.n)}
}

// Prev returns an iterator to the preceding pair in Right order.
func (it RightIterator[L, R]) Prev() RightIterator[L, R] {
	if it.f == nil {
		return it
	}
	if it.n == nil {
		return RightIterator[L, R]{f: it.f, n: it.f.right.Max()}
	}
	return RightIterator[L, R]{f: it.f, n: it.f.right.Prev(it.n)}
}

// Flip returns an iterator in Left order pointing to the same pair.
func (it RightIterator[L, R]) Flip() LeftIterator[L, R] {
	return LeftIterator[L, R](it)
}

// Equal reports whether it and other point to the same position.
func (it RightIterator[L, R]) Equal(other RightIterator[L, R]) bool {
	return it == other
}
