package bimap

import "github.com/npillmayer/bimap/splay"

// forest holds the two trees over a shared node set, together with the number
// of pairs. Both trees always contain exactly the same nodes.
//
// Bimaps reference their forest indirectly, so that Swap and Move carry
// iterators along with the nodes they point to.
type forest[L, R any] struct {
	cfg   Config[L, R]
	left  *leftTree[L, R]
	right *rightTree[L, R]
	size  int
}

func newForest[L, R any](cfg Config[L, R]) (*forest[L, R], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	lt, err := splay.New[*node[L, R], L](leftSide[L, R]{}, cfg.LeftCompare)
	if err != nil {
		return nil, err
	}
	rt, err := splay.New[*node[L, R], R](rightSide[L, R]{}, cfg.RightCompare)
	if err != nil {
		return nil, err
	}
	return &forest[L, R]{
		cfg:   cfg,
		left:  lt,
		right: rt,
	}, nil
}

// emptyLike creates an empty forest with the same orderings as f.
func (f *forest[L, R]) emptyLike() *forest[L, R] {
	e, err := newForest(f.cfg)
	assert(err == nil, "bimap: cannot re-create forest from validated config")
	return e
}

// insert probes both trees and links a new node into both of them, if
// neither l nor r is present yet. It returns nil if the pair was declined.
func (f *forest[L, R]) insert(l L, r R) *node[L, R] {
	_, hasLeft := f.left.Lookup(l)
	_, hasRight := f.right.Lookup(r)
	if hasLeft || hasRight {
		tracer().Debugf("bimap: insert declined, key present (left=%v, right=%v)", hasLeft, hasRight)
		return nil
	}
	n := &node[L, R]{left: l, right: r}
	f.left.Insert(n)
	f.right.Insert(n)
	f.size++
	return n
}

// unlink removes n from both trees. n has to be a member.
func (f *forest[L, R]) unlink(n *node[L, R]) {
	f.left.Remove(n)
	f.right.Remove(n)
	f.size--
}

// contains reports whether n is currently linked into f. Nodes lose their
// links when they are erased, so only the root may have no parent.
func (f *forest[L, R]) contains(n *node[L, R]) bool {
	if n == nil {
		return false
	}
	return n.lt.Parent != nil || f.left.Root() == n
}

// clear unlinks every node and leaves f empty.
func (f *forest[L, R]) clear() {
	nodes := make([]*node[L, R], 0, f.size)
	f.left.Walk(func(n *node[L, R]) bool {
		nodes = append(nodes, n)
		return true
	})
	for _, n := range nodes {
		n.lt = splay.Links[*node[L, R]]{}
		n.rt = splay.Links[*node[L, R]]{}
	}
	f.left.Reset()
	f.right.Reset()
	f.size = 0
}

// clone re-inserts every pair of f, in Left order, into a fresh forest.
func (f *forest[L, R]) clone() *forest[L, R] {
	c := f.emptyLike()
	f.left.Walk(func(n *node[L, R]) bool {
		inserted := c.insert(n.left, n.right)
		assert(inserted != nil, "bimap: clone found duplicate key in source")
		return true
	})
	return c
}
