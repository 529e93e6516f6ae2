package bimap

// Pair is a (Left, Right) tuple, used for bulk construction.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// FromPairs creates a bimap from a list of pairs. Pairs clashing with an
// earlier pair on either side are skipped; the number of skipped pairs is
// returned together with the bimap.
func FromPairs[L, R any](cfg Config[L, R], pairs ...Pair[L, R]) (*Bimap[L, R], int, error) {
	m, err := New(cfg)
	if err != nil {
		return nil, 0, err
	}
	skipped := 0
	for _, p := range pairs {
		if _, ok := m.Insert(p.Left, p.Right); !ok {
			skipped++
		}
	}
	if skipped > 0 {
		tracer().Debugf("bimap builder: skipped %d of %d pairs", skipped, len(pairs))
	}
	return m, skipped, nil
}

// Pairs returns all pairs in Left order.
func (m *Bimap[L, R]) Pairs() []Pair[L, R] {
	pairs := make([]Pair[L, R], 0, m.Len())
	for l, r := range m.All() {
		pairs = append(pairs, Pair[L, R]{Left: l, Right: r})
	}
	return pairs
}
