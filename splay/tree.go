package splay

import (
	"fmt"
)

// Tree is a self-adjusting binary search tree over client-owned nodes.
//
// N is the node handle type (usually a pointer), V is the ordering value and D
// the descriptor selecting N's linkage record and value for this tree. The zero
// value of N marks an absent node.
//
// Every lookup moves the located node to the root, so trees restructure even
// on read access.
type Tree[N comparable, V any, D Descriptor[N, V]] struct {
	desc    D
	compare Compare[V]
	root    N
}

// New creates an empty tree ordered by compare.
func New[N comparable, V any, D Descriptor[N, V]](desc D, compare Compare[V]) (*Tree[N, V, D], error) {
	if compare == nil {
		return nil, fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return &Tree[N, V, D]{
		desc:    desc,
		compare: compare,
	}, nil
}

func isNil[N comparable](n N) bool {
	var zero N
	return n == zero
}

// Root returns the current root node, or the zero node for an empty tree.
func (t *Tree[N, V, D]) Root() N {
	return t.root
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[N, V, D]) IsEmpty() bool {
	return t == nil || isNil(t.root)
}

// Reset forgets all nodes. Links of former members are left untouched.
func (t *Tree[N, V, D]) Reset() {
	var zero N
	t.root = zero
}

// Compare orders two values with the tree's comparator.
func (t *Tree[N, V, D]) Compare(a, b V) int {
	return t.compare(a, b)
}

func (t *Tree[N, V, D]) links(n N) *Links[N] {
	return t.desc.Links(n)
}

func (t *Tree[N, V, D]) setParent(child, parent N) {
	if !isNil(child) {
		t.links(child).Parent = parent
	}
}

// --- Rotations and splaying ------------------------------------------------

// rotateLeft lifts x, the right child of p, into p's position.
func (t *Tree[N, V, D]) rotateLeft(x, p N) {
	lx, lp := t.links(x), t.links(p)
	q := lp.Parent
	if !isNil(q) {
		if lq := t.links(q); lq.Left == p {
			lq.Left = x
		} else {
			lq.Right = x
		}
	}
	lx.Parent = q
	lp.Parent = x
	lp.Right = lx.Left
	t.setParent(lx.Left, p)
	lx.Left = p
}

// rotateRight lifts x, the left child of p, into p's position.
func (t *Tree[N, V, D]) rotateRight(x, p N) {
	lx, lp := t.links(x), t.links(p)
	q := lp.Parent
	if !isNil(q) {
		if lq := t.links(q); lq.Left == p {
			lq.Left = x
		} else {
			lq.Right = x
		}
	}
	lx.Parent = q
	lp.Parent = x
	lp.Left = lx.Right
	t.setParent(lx.Right, p)
	lx.Right = p
}

// splay rotates n up until it has no parent. It works on detached subtrees as
// well and does not touch t.root.
func (t *Tree[N, V, D]) splay(n N) N {
	if isNil(n) {
		return n
	}
	for {
		p := t.links(n).Parent
		if isNil(p) {
			return n
		}
		lp := t.links(p)
		g := lp.Parent
		if isNil(g) { // zig
			if lp.Right == n {
				t.rotateLeft(n, p)
			} else {
				t.rotateRight(n, p)
			}
			continue
		}
		lg := t.links(g)
		switch {
		case lg.Left == p && lp.Left == n: // zig-zig
			t.rotateRight(p, g)
			t.rotateRight(n, p)
		case lg.Right == p && lp.Right == n: // zig-zig
			t.rotateLeft(p, g)
			t.rotateLeft(n, p)
		case lg.Left == p && lp.Right == n: // zig-zag
			t.rotateLeft(n, p)
			t.rotateRight(n, g)
		default: // zig-zag
			t.rotateRight(n, p)
			t.rotateLeft(n, g)
		}
	}
}

// Splay moves n, which must be a member of t, to the root of t.
func (t *Tree[N, V, D]) Splay(n N) N {
	if isNil(n) {
		return n
	}
	t.root = t.splay(n)
	return t.root
}

// --- Search ----------------------------------------------------------------

// find descends from sub towards key and splays the node it stops at: the
// exact match, or the last node visited before falling off the tree.
func (t *Tree[N, V, D]) find(sub N, key V) N {
	if isNil(sub) {
		return sub
	}
	n := sub
	for {
		l := t.links(n)
		c := t.compare(key, t.desc.Value(n))
		if c < 0 && !isNil(l.Left) {
			n = l.Left
		} else if c > 0 && !isNil(l.Right) {
			n = l.Right
		} else {
			break
		}
	}
	return t.splay(n)
}

// Find splays the node closest to key to the root and returns it.
//
// The result is either an exact match or an in-order neighbour of key's
// position; callers have to re-check equality. Find returns the zero node only
// for an empty tree.
func (t *Tree[N, V, D]) Find(key V) N {
	t.root = t.find(t.root, key)
	return t.root
}

// Lookup finds the node whose value equals key. The node is splayed to the
// root in any case.
func (t *Tree[N, V, D]) Lookup(key V) (N, bool) {
	n := t.Find(key)
	if isNil(n) || t.compare(key, t.desc.Value(n)) != 0 {
		var zero N
		return zero, false
	}
	return n, true
}

// LowerBound returns the first node with a value not less than key, or the
// zero node if there is none.
func (t *Tree[N, V, D]) LowerBound(key V) N {
	n := t.Find(key)
	if isNil(n) || t.compare(t.desc.Value(n), key) >= 0 {
		return n
	}
	return t.successorOfRoot()
}

// UpperBound returns the first node with a value greater than key, or the
// zero node if there is none.
func (t *Tree[N, V, D]) UpperBound(key V) N {
	n := t.Find(key)
	if isNil(n) || t.compare(key, t.desc.Value(n)) < 0 {
		return n
	}
	return t.successorOfRoot()
}

// successorOfRoot splays the minimum of the root's right subtree.
func (t *Tree[N, V, D]) successorOfRoot() N {
	r := t.links(t.root).Right
	if isNil(r) {
		var zero N
		return zero
	}
	return t.Splay(t.min(r))
}

// --- Split and merge -------------------------------------------------------

func (t *Tree[N, V, D]) split(sub N, key V) (N, N) {
	var zero N
	if isNil(sub) {
		return zero, zero
	}
	n := t.find(sub, key)
	l := t.links(n)
	if t.compare(key, t.desc.Value(n)) >= 0 {
		q := l.Right
		t.setParent(q, zero)
		l.Right = zero
		return n, q
	}
	q := l.Left
	t.setParent(q, zero)
	l.Left = zero
	return q, n
}

// merge joins two detached trees. Every value in a has to order before every
// value in b.
func (t *Tree[N, V, D]) merge(a, b N) N {
	if isNil(a) {
		return b
	}
	if isNil(b) {
		return a
	}
	m := t.splay(t.min(b))
	t.links(m).Left = a
	t.setParent(a, m)
	return m
}

// Split divides the tree into a tree with all values less than or equal to
// key and a tree with all greater values, returning their roots. t is empty
// afterwards; the halves are handed back with Join.
func (t *Tree[N, V, D]) Split(key V) (N, N) {
	a, b := t.split(t.root, key)
	t.Reset()
	return a, b
}

// Join makes the merge of two detached trees the content of t, replacing
// whatever t held before. Every value in a has to order before every value
// in b.
func (t *Tree[N, V, D]) Join(a, b N) N {
	t.root = t.merge(a, b)
	return t.root
}

// --- Mutation --------------------------------------------------------------

// Insert links an unlinked node into the tree and makes it the root.
//
// Insert does not check for duplicates. Clients enforce uniqueness by probing
// with Lookup first.
func (t *Tree[N, V, D]) Insert(n N) {
	assert(!isNil(n), "splay insert of nil node")
	l := t.links(n)
	assert(isNil(l.Left) && isNil(l.Right) && isNil(l.Parent), "splay insert of linked node")
	a, b := t.split(t.root, t.desc.Value(n))
	l.Left, l.Right = a, b
	t.setParent(a, n)
	t.setParent(b, n)
	t.root = n
}

// EraseRoot unlinks the root, merges its subtrees and returns the removed
// node with cleared links.
func (t *Tree[N, V, D]) EraseRoot() N {
	r := t.root
	if isNil(r) {
		return r
	}
	var zero N
	l := t.links(r)
	t.setParent(l.Left, zero)
	t.setParent(l.Right, zero)
	t.root = t.merge(l.Left, l.Right)
	*l = Links[N]{}
	return r
}

// Remove unlinks node n, which must be a member of t.
func (t *Tree[N, V, D]) Remove(n N) N {
	t.Splay(n)
	return t.EraseRoot()
}

// --- Traversal -------------------------------------------------------------

func (t *Tree[N, V, D]) min(n N) N {
	for l := t.links(n); !isNil(l.Left); l = t.links(n) {
		n = l.Left
	}
	return n
}

func (t *Tree[N, V, D]) max(n N) N {
	for l := t.links(n); !isNil(l.Right); l = t.links(n) {
		n = l.Right
	}
	return n
}

// Min returns the node with the smallest value without splaying.
func (t *Tree[N, V, D]) Min() N {
	if isNil(t.root) {
		return t.root
	}
	return t.min(t.root)
}

// Max returns the node with the greatest value without splaying.
func (t *Tree[N, V, D]) Max() N {
	if isNil(t.root) {
		return t.root
	}
	return t.max(t.root)
}

// Next returns the in-order successor of n, or the zero node.
func (t *Tree[N, V, D]) Next(n N) N {
	var zero N
	if isNil(n) {
		return zero
	}
	if r := t.links(n).Right; !isNil(r) {
		return t.min(r)
	}
	for p := t.links(n).Parent; !isNil(p); p = t.links(p).Parent {
		if t.links(p).Left == n {
			return p
		}
		n = p
	}
	return zero
}

// Prev returns the in-order predecessor of n, or the zero node.
func (t *Tree[N, V, D]) Prev(n N) N {
	var zero N
	if isNil(n) {
		return zero
	}
	if l := t.links(n).Left; !isNil(l) {
		return t.max(l)
	}
	for p := t.links(n).Parent; !isNil(p); p = t.links(p).Parent {
		if t.links(p).Right == n {
			return p
		}
		n = p
	}
	return zero
}

// Walk calls f for every node in order, until f returns false.
//
// The successor is determined before f is called, so f may remove the node it
// has been handed. Lookups from within f are allowed as well.
func (t *Tree[N, V, D]) Walk(f func(N) bool) {
	for n := t.Min(); !isNil(n); {
		next := t.Next(n)
		if !f(n) {
			return
		}
		n = next
	}
}

// WalkBackward calls f for every node in reverse order, until f returns false.
func (t *Tree[N, V, D]) WalkBackward(f func(N) bool) {
	for n := t.Max(); !isNil(n); {
		prev := t.Prev(n)
		if !f(n) {
			return
		}
		n = prev
	}
}

// Value returns the ordering value of n.
func (t *Tree[N, V, D]) Value(n N) V {
	return t.desc.Value(n)
}
