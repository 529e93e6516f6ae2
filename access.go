package bimap

import "fmt"

// AtLeft returns the Right value paired with l. If l is not present, it
// returns an error wrapping ErrNotFound.
func (m *Bimap[L, R]) AtLeft(l L) (R, error) {
	n, found := m.f.left.Lookup(l)
	if !found {
		var zero R
		return zero, fmt.Errorf("%w: left key %v", ErrNotFound, l)
	}
	return n.right, nil
}

// AtRight returns the Left value paired with r. If r is not present, it
// returns an error wrapping ErrNotFound.
func (m *Bimap[L, R]) AtRight(r R) (L, error) {
	n, found := m.f.right.Lookup(r)
	if !found {
		var zero L
		return zero, fmt.Errorf("%w: right key %v", ErrNotFound, r)
	}
	return n.left, nil
}

// AtLeftOrDefault returns the Right value paired with l. If l is not present,
// it inserts the pair (l, zero value of R) and returns the zero value.
//
// Note that inserting the default pair evicts a pair whose Right value already
// is the zero value of R, as Right values have to stay unique. Clients which
// use the zero value as a regular Right value should prefer AtLeft and Insert.
func (m *Bimap[L, R]) AtLeftOrDefault(l L) R {
	if n, found := m.f.left.Lookup(l); found {
		return n.right
	}
	var dflt R
	if m.EraseRight(dflt) {
		tracer().Debugf("bimap: evicted pair with default right value in favour of left key %v", l)
	}
	n := m.f.insert(l, dflt)
	assert(n != nil, "bimap: default insert declined after eviction")
	return n.right
}

// AtRightOrDefault returns the Left value paired with r. If r is not present,
// it inserts the pair (zero value of L, r) and returns the zero value.
//
// Inserting the default pair evicts a pair whose Left value already is the
// zero value of L.
func (m *Bimap[L, R]) AtRightOrDefault(r R) L {
	if n, found := m.f.right.Lookup(r); found {
		return n.left
	}
	var dflt L
	if m.EraseLeft(dflt) {
		tracer().Debugf("bimap: evicted pair with default left value in favour of right key %v", r)
	}
	n := m.f.insert(dflt, r)
	assert(n != nil, "bimap: default insert declined after eviction")
	return n.left
}
