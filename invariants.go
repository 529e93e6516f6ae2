package bimap

import "fmt"

// Check validates that both trees are well-formed search trees, that they
// contain exactly the same nodes and that their size matches Len.
//
// Check is meant for tests and debugging; it takes O(n) time and space.
func (m *Bimap[L, R]) Check() error {
	f := m.f
	nl, err := f.left.Check()
	if err != nil {
		return fmt.Errorf("left tree: %w", err)
	}
	nr, err := f.right.Check()
	if err != nil {
		return fmt.Errorf("right tree: %w", err)
	}
	if nl != f.size || nr != f.size {
		return fmt.Errorf("%w: tree sizes %d/%d, element count %d", ErrInconsistent, nl, nr, f.size)
	}
	members := make(map[*node[L, R]]struct{}, f.size)
	f.left.Walk(func(n *node[L, R]) bool {
		members[n] = struct{}{}
		return true
	})
	var stray int
	f.right.Walk(func(n *node[L, R]) bool {
		if _, ok := members[n]; !ok {
			stray++
		}
		return true
	})
	if stray > 0 {
		err = fmt.Errorf("%w: %d nodes only present in right tree", ErrInconsistent, stray)
		tracer().Errorf("bimap check: %v", err)
		return err
	}
	return nil
}
