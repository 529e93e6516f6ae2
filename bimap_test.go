package bimap

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func abc(t *testing.T) *Bimap[int, string] {
	t.Helper()
	m := NewOrdered[int, string]()
	for _, p := range []Pair[int, string]{{1, "a"}, {2, "b"}, {3, "c"}} {
		_, ok := m.Insert(p.Left, p.Right)
		require.True(t, ok, "insert of %v declined", p)
	}
	require.NoError(t, m.Check())
	return m
}

func TestNewRejectsMissingComparator(t *testing.T) {
	_, err := New(Config[int, string]{LeftCompare: func(a, b int) int { return a - b }})
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = New(Config[int, string]{})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestEmptyBimap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bimap")
	defer teardown()

	m := NewOrdered[string, int]()
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.Len())
	require.True(t, m.FindLeft("x").IsEnd())
	require.True(t, m.FindRight(1).IsEnd())
	require.True(t, m.BeginLeft() == m.EndLeft())
	require.True(t, m.BeginRight() == m.EndRight())
	require.True(t, m.EndLeft().Prev().IsEnd())
	require.False(t, m.EraseLeft("x"))
	require.False(t, m.EraseRight(1))
	require.NoError(t, m.Check())
}

func TestScenarioInsertAtErase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bimap")
	defer teardown()

	m := abc(t)
	r, err := m.AtLeft(2)
	require.NoError(t, err)
	require.Equal(t, "b", r)
	require.True(t, m.EraseLeft(2))
	require.Equal(t, 2, m.Len())
	require.True(t, m.FindRight("b").IsEnd())
	require.True(t, m.FindLeft(2).IsEnd())
	require.NoError(t, m.Check())
}

func TestInsertDuplicatesDeclined(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bimap")
	defer teardown()

	m := abc(t)
	it, ok := m.Insert(1, "z")
	require.False(t, ok)
	require.True(t, it.IsEnd())
	_, ok = m.Insert(9, "a")
	require.False(t, ok)
	_, ok = m.Insert(2, "b")
	require.False(t, ok)
	require.Equal(t, 3, m.Len())
	r, err := m.AtLeft(1)
	require.NoError(t, err)
	require.Equal(t, "a", r)
	l, err := m.AtRight("a")
	require.NoError(t, err)
	require.Equal(t, 1, l)
	require.True(t, m.FindLeft(9).IsEnd())
	require.True(t, m.FindRight("z").IsEnd())
	require.NoError(t, m.Check())
}

func TestInsertReturnsIteratorToPair(t *testing.T) {
	m := abc(t)
	it, ok := m.Insert(0, "d")
	require.True(t, ok)
	l, r := it.Pair()
	require.Equal(t, 0, l)
	require.Equal(t, "d", r)
	require.True(t, it == m.BeginLeft())
	require.True(t, it.Flip() == m.FindRight("d"))
}

func TestFindResolvesBothSides(t *testing.T) {
	m := abc(t)
	for _, p := range m.Pairs() {
		lit := m.FindLeft(p.Left)
		require.False(t, lit.IsEnd())
		require.Equal(t, p.Right, lit.Other())
		rit := m.FindRight(p.Right)
		require.False(t, rit.IsEnd())
		require.Equal(t, p.Left, rit.Other())
		require.True(t, lit.Flip() == rit)
		require.True(t, rit.Flip() == lit)
		require.True(t, m.ContainsLeft(p.Left))
		require.True(t, m.ContainsRight(p.Right))
	}
	require.False(t, m.ContainsLeft(7))
	require.False(t, m.ContainsRight("q"))
	require.NoError(t, m.Check())
}

func TestFlipIsInvolution(t *testing.T) {
	m := NewOrdered[int, int]()
	for i := 0; i < 20; i++ {
		m.Insert(i, 100-i*3)
	}
	for it := m.BeginLeft(); !it.IsEnd(); it = it.Next() {
		f := it.Flip()
		require.Equal(t, it.Get(), f.Other())
		require.Equal(t, it.Other(), f.Get())
		require.True(t, f.Flip().Equal(it))
	}
	require.True(t, m.EndLeft().Flip() == m.EndRight())
}

func TestTraversalOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bimap")
	defer teardown()

	m := NewOrdered[int, string]()
	pairs := []Pair[int, string]{{5, "e"}, {3, "x"}, {9, "a"}, {1, "m"}, {7, "c"}}
	for _, p := range pairs {
		m.Insert(p.Left, p.Right)
	}
	var lefts []int
	for it := m.BeginLeft(); it != m.EndLeft(); it = it.Next() {
		lefts = append(lefts, it.Get())
	}
	require.Equal(t, []int{1, 3, 5, 7, 9}, lefts)
	var rights []string
	for it := m.BeginRight(); it != m.EndRight(); it = it.Next() {
		rights = append(rights, it.Get())
	}
	require.Equal(t, []string{"a", "c", "e", "m", "x"}, rights)

	var back []int
	for it := m.EndLeft().Prev(); !it.IsEnd(); it = it.Prev() {
		back = append(back, it.Get())
	}
	require.Equal(t, []int{9, 7, 5, 3, 1}, back)
	var rback []string
	for it := m.EndRight().Prev(); !it.IsEnd(); it = it.Prev() {
		rback = append(rback, it.Get())
	}
	require.Equal(t, []string{"x", "m", "e", "c", "a"}, rback)

	lefts = lefts[:0]
	for l := range m.Lefts() {
		lefts = append(lefts, l)
	}
	require.Equal(t, []int{1, 3, 5, 7, 9}, lefts)
	rights = rights[:0]
	for r := range m.Rights() {
		rights = append(rights, r)
	}
	require.Equal(t, []string{"a", "c", "e", "m", "x"}, rights)
	back = back[:0]
	for l := range m.Backward() {
		back = append(back, l)
	}
	require.Equal(t, []int{9, 7, 5, 3, 1}, back)
	var byRight []int
	for _, l := range m.AllByRight() {
		byRight = append(byRight, l)
	}
	require.Equal(t, []int{9, 7, 5, 1, 3}, byRight)
}

func TestIteratorsSurviveLookups(t *testing.T) {
	m := NewOrdered[int, int]()
	for i := 0; i < 50; i++ {
		m.Insert(i, -i)
	}
	it := m.FindLeft(25)
	for i := 0; i < 50; i += 7 {
		m.FindLeft(i)
		m.FindRight(-i)
		m.LowerBoundLeft(i)
	}
	require.Equal(t, 25, it.Get())
	require.Equal(t, 26, it.Next().Get())
	require.Equal(t, 24, it.Prev().Get())
	require.Equal(t, -26, it.Flip().Prev().Get())
	require.NoError(t, m.Check())
}

func TestBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bimap")
	defer teardown()

	m := NewOrdered[int, string]()
	for _, p := range []Pair[int, string]{{10, "j"}, {20, "t"}, {30, "d"}} {
		m.Insert(p.Left, p.Right)
	}
	require.Equal(t, 10, m.LowerBoundLeft(5).Get())
	require.Equal(t, 20, m.LowerBoundLeft(20).Get())
	require.Equal(t, 30, m.UpperBoundLeft(20).Get())
	require.Equal(t, 20, m.UpperBoundLeft(15).Get())
	require.True(t, m.LowerBoundLeft(31).IsEnd())
	require.True(t, m.UpperBoundLeft(30).IsEnd())

	require.Equal(t, "d", m.LowerBoundRight("a").Get())
	require.Equal(t, "j", m.LowerBoundRight("j").Get())
	require.Equal(t, "t", m.UpperBoundRight("j").Get())
	require.True(t, m.UpperBoundRight("t").IsEnd())
	require.Equal(t, 10, m.LowerBoundRight("e").Other())
	require.NoError(t, m.Check())
}

func TestAtMissingKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bimap")
	defer teardown()

	m := abc(t)
	_, err := m.AtLeft(4)
	require.ErrorIs(t, err, ErrNotFound)
	require.True(t, strings.Contains(err.Error(), "4"))
	_, err = m.AtRight("q")
	require.True(t, errors.Is(err, ErrNotFound))
	require.Equal(t, 3, m.Len())
}

func TestAtOrDefaultEviction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bimap")
	defer teardown()

	m := NewOrdered[int, string]()
	require.Equal(t, "", m.AtLeftOrDefault(5))
	require.Equal(t, 1, m.Len())
	r, err := m.AtLeft(5)
	require.NoError(t, err)
	require.Equal(t, "", r)

	// present keys are returned without mutation
	m.Insert(1, "one")
	require.Equal(t, "one", m.AtLeftOrDefault(1))
	require.Equal(t, 2, m.Len())

	// (5, "") owns the default right value and is evicted by (6, "")
	require.Equal(t, "", m.AtLeftOrDefault(6))
	require.Equal(t, 2, m.Len())
	require.False(t, m.ContainsLeft(5))
	l, err := m.AtRight("")
	require.NoError(t, err)
	require.Equal(t, 6, l)
	require.NoError(t, m.Check())

	// and symmetrically for the right side
	require.Equal(t, 0, m.AtRightOrDefault("zero"))
	require.Equal(t, 0, m.AtRightOrDefault("nought"))
	require.False(t, m.ContainsRight("zero"))
	l, err = m.AtRight("nought")
	require.NoError(t, err)
	require.Equal(t, 0, l)
	require.Equal(t, 3, m.Len())
	require.NoError(t, m.Check())
}

func TestEraseByIterator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bimap")
	defer teardown()

	m := abc(t)
	next := m.EraseLeftAt(m.FindLeft(2))
	require.Equal(t, 3, next.Get())
	require.Equal(t, 2, m.Len())
	require.True(t, m.FindRight("b").IsEnd())
	require.NoError(t, m.Check())

	rnext := m.EraseRightAt(m.FindRight("c"))
	require.True(t, rnext.IsEnd())
	require.Equal(t, 1, m.Len())
	require.NoError(t, m.Check())

	require.True(t, m.EraseLeftAt(m.EndLeft()).IsEnd())
	require.True(t, m.EraseRightAt(m.EndRight()).IsEnd())
	require.Equal(t, 1, m.Len())

	m.EraseLeftAt(m.BeginLeft())
	require.True(t, m.IsEmpty())
	require.NoError(t, m.Check())
}

func TestEraseRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bimap")
	defer teardown()

	m := NewOrdered[int, int]()
	for i := 0; i < 10; i++ {
		m.Insert(i, 100-i)
	}
	last := m.FindLeft(7)
	got := m.EraseLeftRange(m.FindLeft(3), last)
	require.True(t, got == last)
	require.Equal(t, 6, m.Len())
	require.Equal(t, []int{0, 1, 2, 7, 8, 9}, collectLefts(m))
	require.NoError(t, m.Check())

	// right order is 91, 92, 93, 98, 99, 100
	m.EraseRightRange(m.FindRight(92), m.EndRight())
	require.Equal(t, []int{9}, collectLefts(m))
	require.NoError(t, m.Check())

	m.EraseLeftRange(m.BeginLeft(), m.BeginLeft())
	require.Equal(t, 1, m.Len())
}

func TestEraseAtInvalidIteratorPanics(t *testing.T) {
	m := abc(t)
	it := m.FindLeft(2)
	m.EraseLeft(2)
	require.Panics(t, func() { m.EraseLeftAt(it) })
	require.NoError(t, m.Check())

	other := abc(t)
	require.Panics(t, func() { m.EraseLeftAt(other.FindLeft(1)) })
	require.Equal(t, 3, other.Len())
	require.Panics(t, func() { m.EndLeft().Get() })
}

func TestCloneIsEqualAndIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bimap")
	defer teardown()

	m := abc(t)
	c := m.Clone()
	require.True(t, m.Equal(c))
	require.True(t, c.Equal(m))
	require.NoError(t, c.Check())

	c.EraseLeft(1)
	c.Insert(4, "d")
	require.False(t, m.Equal(c))
	require.Equal(t, 3, m.Len())
	require.True(t, m.ContainsLeft(1))
	require.False(t, m.ContainsLeft(4))
	require.NoError(t, m.Check())
	require.NoError(t, c.Check())
}

func TestEqual(t *testing.T) {
	a, b := abc(t), NewOrdered[int, string]()
	require.False(t, a.Equal(b))
	b.Insert(3, "c")
	b.Insert(1, "a")
	b.Insert(2, "b")
	require.True(t, a.Equal(b))
	require.True(t, a.Equal(a))
	b.EraseLeft(2)
	b.Insert(2, "x")
	require.False(t, a.Equal(b))
}

func TestAssignMoveSwap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bimap")
	defer teardown()

	a := abc(t)
	b := NewOrdered[int, string]()
	b.Insert(7, "g")

	b.Assign(a)
	require.True(t, a.Equal(b))
	b.EraseLeft(3)
	require.Equal(t, 3, a.Len())

	it := a.FindLeft(2)
	moved := a.Move()
	require.True(t, a.IsEmpty())
	require.Equal(t, 3, moved.Len())
	require.NoError(t, a.Check())
	require.NoError(t, moved.Check())
	// iterators follow their pairs
	require.Equal(t, 3, moved.EraseLeftAt(it).Get())
	a.Insert(1, "a")
	require.Equal(t, 1, a.Len())

	x, y := abc(t), NewOrdered[int, string]()
	y.Insert(8, "h")
	xit := x.FindLeft(1)
	x.Swap(y)
	require.Equal(t, 1, x.Len())
	require.Equal(t, 3, y.Len())
	require.True(t, x.ContainsLeft(8))
	require.True(t, y.ContainsLeft(1))
	require.True(t, xit == y.BeginLeft())
	require.NoError(t, x.Check())
	require.NoError(t, y.Check())
}

func TestClear(t *testing.T) {
	m := abc(t)
	it := m.FindLeft(1)
	m.Clear()
	require.True(t, m.IsEmpty())
	require.NoError(t, m.Check())
	require.Panics(t, func() { m.EraseLeftAt(it) })
	_, ok := m.Insert(1, "a")
	require.True(t, ok)
	require.NoError(t, m.Check())
}

func TestCustomComparators(t *testing.T) {
	cfg := Config[string, int]{
		LeftCompare: func(a, b string) int {
			return strings.Compare(strings.ToLower(a), strings.ToLower(b))
		},
		RightCompare: func(a, b int) int { return b - a }, // descending
	}
	m, err := New(cfg)
	require.NoError(t, err)
	m.Insert("Apple", 1)
	m.Insert("banana", 2)
	_, ok := m.Insert("APPLE", 3)
	require.False(t, ok, "case-insensitive duplicate should be declined")
	require.True(t, m.ContainsLeft("aPpLe"))
	require.Equal(t, 2, m.BeginRight().Get())
	require.NoError(t, m.Check())
}

func TestFromPairs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bimap")
	defer teardown()

	m, skipped, err := FromPairs(OrderedConfig[int, string](),
		Pair[int, string]{1, "a"}, Pair[int, string]{2, "b"},
		Pair[int, string]{1, "c"}, Pair[int, string]{3, "b"},
		Pair[int, string]{3, "c"})
	require.NoError(t, err)
	require.Equal(t, 2, skipped)
	require.Equal(t, []Pair[int, string]{{1, "a"}, {2, "b"}, {3, "c"}}, m.Pairs())

	_, _, err = FromPairs(Config[int, string]{})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestEraseWhileRanging(t *testing.T) {
	m := NewOrdered[int, int]()
	for i := 0; i < 20; i++ {
		m.Insert(i, i*i)
	}
	for l := range m.All() {
		if l%2 == 1 {
			require.True(t, m.EraseLeft(l))
		}
	}
	require.Equal(t, []int{0, 2, 4, 6, 8, 10, 12, 14, 16, 18}, collectLefts(m))
	require.NoError(t, m.Check())
}

func collectLefts[R any](m *Bimap[int, R]) []int {
	var out []int
	for l := range m.Lefts() {
		out = append(out, l)
	}
	return out
}
