package bimap

import (
	"cmp"
)

// Bimap is an ordered bidirectional map of unique (Left, Right) pairs.
//
// Bimaps have to be created with New or NewOrdered; the zero value is not
// ready to use. Pairs are immutable, only membership changes. Bimaps are not
// safe for concurrent use, not even for concurrent lookups.
type Bimap[L, R any] struct {
	f *forest[L, R]
}

// New creates an empty bimap with the orderings of cfg.
func New[L, R any](cfg Config[L, R]) (*Bimap[L, R], error) {
	f, err := newForest(cfg)
	if err != nil {
		return nil, err
	}
	return &Bimap[L, R]{f: f}, nil
}

// NewOrdered creates an empty bimap ordered by the natural ordering of L and R.
func NewOrdered[L, R cmp.Ordered]() *Bimap[L, R] {
	m, err := New(OrderedConfig[L, R]())
	assert(err == nil, "bimap: ordered configuration rejected")
	return m
}

// Len returns the number of pairs.
func (m *Bimap[L, R]) Len() int {
	return m.f.size
}

// IsEmpty reports whether the bimap holds no pairs.
func (m *Bimap[L, R]) IsEmpty() bool {
	return m.f.size == 0
}

// Config returns the orderings of the bimap.
func (m *Bimap[L, R]) Config() Config[L, R] {
	return m.f.cfg
}

// --- Insertion and removal -------------------------------------------------

// Insert adds the pair (l, r), provided neither l nor r is present yet.
//
// It returns an iterator to the new pair and true, or the end iterator and
// false if either key already exists. In the latter case the bimap is left
// unchanged.
func (m *Bimap[L, R]) Insert(l L, r R) (LeftIterator[L, R], bool) {
	n := m.f.insert(l, r)
	if n == nil {
		return m.EndLeft(), false
	}
	return LeftIterator[L, R]{f: m.f, n: n}, true
}

// EraseLeft removes the pair with Left value l. It reports whether a pair
// has been removed.
func (m *Bimap[L, R]) EraseLeft(l L) bool {
	n, found := m.f.left.Lookup(l)
	if !found {
		return false
	}
	m.f.unlink(n)
	return true
}

// EraseRight removes the pair with Right value r. It reports whether a pair
// has been removed.
func (m *Bimap[L, R]) EraseRight(r R) bool {
	n, found := m.f.right.Lookup(r)
	if !found {
		return false
	}
	m.f.unlink(n)
	return true
}

// EraseLeftAt removes the pair it points to and returns an iterator to the
// following pair in Left order. Erasing at the end iterator is a no-op.
//
// it is invalid afterwards. Other iterators stay valid.
func (m *Bimap[L, R]) EraseLeftAt(it LeftIterator[L, R]) LeftIterator[L, R] {
	if it.n == nil {
		return m.EndLeft()
	}
	m.checkIterator(it.f, it.n)
	next := m.f.left.Next(it.n)
	m.f.unlink(it.n)
	return LeftIterator[L, R]{f: m.f, n: next}
}

// EraseRightAt removes the pair it points to and returns an iterator to the
// following pair in Right order. Erasing at the end iterator is a no-op.
func (m *Bimap[L, R]) EraseRightAt(it RightIterator[L, R]) RightIterator[L, R] {
	if it.n == nil {
		return m.EndRight()
	}
	m.checkIterator(it.f, it.n)
	next := m.f.right.Next(it.n)
	m.f.unlink(it.n)
	return RightIterator[L, R]{f: m.f, n: next}
}

// EraseLeftRange removes the pairs in [first, last) in Left order and returns
// last.
func (m *Bimap[L, R]) EraseLeftRange(first, last LeftIterator[L, R]) LeftIterator[L, R] {
	for first != last && first.n != nil {
		first = m.EraseLeftAt(first)
	}
	return last
}

// EraseRightRange removes the pairs in [first, last) in Right order and
// returns last.
func (m *Bimap[L, R]) EraseRightRange(first, last RightIterator[L, R]) RightIterator[L, R] {
	for first != last && first.n != nil {
		first = m.EraseRightAt(first)
	}
	return last
}

// Clear removes all pairs. All iterators into m are invalid afterwards.
func (m *Bimap[L, R]) Clear() {
	m.f.clear()
}

func (m *Bimap[L, R]) checkIterator(f *forest[L, R], n *node[L, R]) {
	assert(f == m.f, "bimap: iterator belongs to a different bimap")
	assert(m.f.contains(n), "bimap: iterator has been invalidated")
}

// --- Lookup ----------------------------------------------------------------

// FindLeft returns an iterator to the pair with Left value l, or the end
// iterator.
func (m *Bimap[L, R]) FindLeft(l L) LeftIterator[L, R] {
	n, _ := m.f.left.Lookup(l)
	return LeftIterator[L, R]{f: m.f, n: n}
}

// FindRight returns an iterator to the pair with Right value r, or the end
// iterator.
func (m *Bimap[L, R]) FindRight(r R) RightIterator[L, R] {
	n, _ := m.f.right.Lookup(r)
	return RightIterator[L, R]{f: m.f, n: n}
}

// ContainsLeft reports whether a pair with Left value l exists.
func (m *Bimap[L, R]) ContainsLeft(l L) bool {
	_, found := m.f.left.Lookup(l)
	return found
}

// ContainsRight reports whether a pair with Right value r exists.
func (m *Bimap[L, R]) ContainsRight(r R) bool {
	_, found := m.f.right.Lookup(r)
	return found
}

// LowerBoundLeft returns an iterator to the first pair whose Left value is
// not less than l, or the end iterator.
func (m *Bimap[L, R]) LowerBoundLeft(l L) LeftIterator[L, R] {
	return LeftIterator[L, R]{f: m.f, n: m.f.left.LowerBound(l)}
}

// UpperBoundLeft returns an iterator to the first pair whose Left value is
// greater than l, or the end iterator.
func (m *Bimap[L, R]) UpperBoundLeft(l L) LeftIterator[L, R] {
	return LeftIterator[L, R]{f: m.f, n: m.f.left.UpperBound(l)}
}

// LowerBoundRight returns an iterator to the first pair whose Right value is
// not less than r, or the end iterator.
func (m *Bimap[L, R]) LowerBoundRight(r R) RightIterator[L, R] {
	return RightIterator[L, R]{f: m.f, n: m.f.right.LowerBound(r)}
}

// UpperBoundRight returns an iterator to the first pair whose Right value is
// greater than r, or the end iterator.
func (m *Bimap[L, R]) UpperBoundRight(r R) RightIterator[L, R] {
	return RightIterator[L, R]{f: m.f, n: m.f.right.UpperBound(r)}
}

// --- Copy, move, swap, equality --------------------------------------------

// Clone returns an independent deep copy of m.
func (m *Bimap[L, R]) Clone() *Bimap[L, R] {
	return &Bimap[L, R]{f: m.f.clone()}
}

// Assign replaces the content and orderings of m with a deep copy of other.
// Iterators into m's former content are invalid afterwards.
func (m *Bimap[L, R]) Assign(other *Bimap[L, R]) {
	if m == other {
		return
	}
	m.f = other.f.clone()
}

// Move transfers the content of m into a new bimap and leaves m empty, with
// unchanged orderings. Iterators into m follow their pairs into the new bimap.
func (m *Bimap[L, R]) Move() *Bimap[L, R] {
	moved := &Bimap[L, R]{f: m.f}
	m.f = m.f.emptyLike()
	return moved
}

// Swap exchanges content and orderings of m and other. Iterators follow their
// pairs.
func (m *Bimap[L, R]) Swap(other *Bimap[L, R]) {
	m.f, other.f = other.f, m.f
}

// Equal reports whether m and other hold the same pairs. Values are compared
// with m's comparators.
func (m *Bimap[L, R]) Equal(other *Bimap[L, R]) bool {
	if m == other {
		return true
	}
	if m.Len() != other.Len() {
		return false
	}
	a, b := m.f.left.Min(), other.f.left.Min()
	for a != nil && b != nil {
		if m.f.cfg.LeftCompare(a.left, b.left) != 0 ||
			m.f.cfg.RightCompare(a.right, b.right) != 0 {
			return false
		}
		a, b = m.f.left.Next(a), other.f.left.Next(b)
	}
	return a == nil && b == nil
}
