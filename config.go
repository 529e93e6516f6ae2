package bimap

import (
	"cmp"
	"fmt"
)

// Config configures the orderings of a bimap.
//
// Comparators return a negative number if a < b, zero if a equals b and a
// positive number if a > b. Equality of keys is decided by the comparator as
// well, there is no separate equality function.
type Config[L, R any] struct {
	// LeftCompare orders Left values.
	LeftCompare func(a, b L) int
	// RightCompare orders Right values.
	RightCompare func(a, b R) int
}

// OrderedConfig returns a configuration using the natural ordering of both
// value types.
func OrderedConfig[L, R cmp.Ordered]() Config[L, R] {
	return Config[L, R]{
		LeftCompare:  cmp.Compare[L],
		RightCompare: cmp.Compare[R],
	}
}

func (cfg Config[L, R]) validate() error {
	if cfg.LeftCompare == nil {
		return fmt.Errorf("%w: left comparator is required", ErrInvalidConfig)
	}
	if cfg.RightCompare == nil {
		return fmt.Errorf("%w: right comparator is required", ErrInvalidConfig)
	}
	return nil
}
