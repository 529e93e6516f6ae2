package bimap

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Side selects one of the two orderings of a bimap.
type Side int

// The two sides of a bimap.
const (
	LeftSide Side = iota
	RightSide
)

func (s Side) String() string {
	switch s {
	case LeftSide:
		return "left"
	case RightSide:
		return "right"
	}
	return "side(" + strconv.Itoa(int(s)) + ")"
}

type nodeids[L, R any] struct {
	idTable map[*node[L, R]]int
	max     int
}

func newtable[L, R any]() nodeids[L, R] {
	return nodeids[L, R]{
		idTable: make(map[*node[L, R]]int),
		max:     1,
	}
}

func (ids *nodeids[L, R]) alloc(n *node[L, R]) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Bimap2Dot outputs the tree of one side of a bimap in Graphviz DOT format
// (for debugging purposes). Nodes are labelled with the ordering value on top
// and the paired value below; the root is highlighted.
//
// Bimap2Dot does not restructure the tree.
func Bimap2Dot[L, R any](m *Bimap[L, R], side Side, w io.Writer) error {
	var bf strings.Builder
	bf.WriteString("strict digraph {\n")
	bf.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[L, R]()
	nodelist, edgelist := "", ""
	nilcount := 0
	var root *node[L, R]
	links := func(n *node[L, R]) (*node[L, R], *node[L, R]) {
		return n.lt.Left, n.lt.Right
	}
	label := func(n *node[L, R]) string {
		return dotLabel(n.left, n.right)
	}
	switch side {
	case LeftSide:
		root = m.f.left.Root()
	case RightSide:
		root = m.f.right.Root()
		links = func(n *node[L, R]) (*node[L, R], *node[L, R]) {
			return n.rt.Left, n.rt.Right
		}
		label = func(n *node[L, R]) string {
			return dotLabel(n.right, n.left)
		}
	default:
		return fmt.Errorf("%w: unknown side %v", ErrInvalidConfig, side)
	}
	stack := []*node[L, R]{}
	if root != nil {
		stack = append(stack, root)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ID := ids.alloc(n)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label(n), nodeDotStyles(n == root))
		left, right := links(n)
		for _, child := range [...]*node[L, R]{left, right} {
			if child == nil {
				nilcount++
				nodelist += fmt.Sprintf("\"nil%d\" %s;\n", nilcount, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"nil%d\";\n", ID, nilcount)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			stack = append(stack, child)
		}
	}
	bf.WriteString(nodelist)
	bf.WriteString(edgelist)
	bf.WriteString("}\n")
	if _, err := io.WriteString(w, bf.String()); err != nil {
		tracer().Errorf("bimap DOT: %s", err.Error())
		return err
	}
	return nil
}

func dotLabel(main, paired any) string {
	s := fmt.Sprintf("%v\\n→ %v", main, paired)
	return strings.ReplaceAll(s, "\"", "\\\"")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

func nodeDotStyles(highlight bool) string {
	s := ",style=filled,shape=box"
	if highlight {
		s += ",fillcolor=\"#FFAA66\""
	} else {
		s += ",fillcolor=\"#CCDDFF\""
	}
	return s
}
