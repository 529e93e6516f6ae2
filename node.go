package bimap

import "github.com/npillmayer/bimap/splay"

// node stores one pair. It is a member of the Left tree and of the Right tree
// at the same time, with one linkage record for each.
type node[L, R any] struct {
	left  L
	right R
	lt    splay.Links[*node[L, R]]
	rt    splay.Links[*node[L, R]]
}

// leftSide addresses a node's Left linkage and value.
type leftSide[L, R any] struct{}

func (leftSide[L, R]) Links(n *node[L, R]) *splay.Links[*node[L, R]] { return &n.lt }
func (leftSide[L, R]) Value(n *node[L, R]) L                         { return n.left }

// rightSide addresses a node's Right linkage and value.
type rightSide[L, R any] struct{}

func (rightSide[L, R]) Links(n *node[L, R]) *splay.Links[*node[L, R]] { return &n.rt }
func (rightSide[L, R]) Value(n *node[L, R]) R                         { return n.right }

type leftTree[L, R any] = splay.Tree[*node[L, R], L, leftSide[L, R]]
type rightTree[L, R any] = splay.Tree[*node[L, R], R, rightSide[L, R]]
