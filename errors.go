package bimap

import "errors"

var (
	// ErrInvalidConfig signals an invalid bimap configuration.
	ErrInvalidConfig = errors.New("bimap: invalid configuration")
	// ErrNotFound is returned by indexed access for a key that is not present.
	ErrNotFound = errors.New("bimap: no matching element")
	// ErrInconsistent signals that the Left and Right trees disagree.
	ErrInconsistent = errors.New("bimap: trees inconsistent")
)
