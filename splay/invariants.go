package splay

import "fmt"

// Check validates structural tree invariants and returns the number of nodes.
//
// It verifies that the root has no parent, that parent and child links agree,
// that no node is reachable twice and that the in-order sequence is strictly
// increasing. Check does not splay.
func (t *Tree[N, V, D]) Check() (int, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if isNil(t.root) {
		return 0, nil
	}
	if !isNil(t.links(t.root).Parent) {
		return 0, fmt.Errorf("%w: root has a parent", ErrCorrupted)
	}
	seen := make(map[N]struct{})
	stack := []N{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, dup := seen[n]; dup {
			return 0, fmt.Errorf("%w: node reachable twice", ErrCorrupted)
		}
		seen[n] = struct{}{}
		l := t.links(n)
		for _, child := range [...]N{l.Left, l.Right} {
			if isNil(child) {
				continue
			}
			if t.links(child).Parent != n {
				return 0, fmt.Errorf("%w: child does not point back to its parent", ErrCorrupted)
			}
			stack = append(stack, child)
		}
	}
	count := 0
	var prev N
	for n := t.Min(); !isNil(n); n = t.Next(n) {
		if count > 0 && t.compare(t.desc.Value(prev), t.desc.Value(n)) >= 0 {
			return 0, fmt.Errorf("%w: in-order sequence not increasing at position %d", ErrCorrupted, count)
		}
		prev = n
		count++
		if count > len(seen) {
			break
		}
	}
	if count != len(seen) {
		err := fmt.Errorf("%w: in-order walk visits %d of %d nodes", ErrCorrupted, count, len(seen))
		tracer().Errorf("splay check: %v", err)
		return 0, err
	}
	return count, nil
}
