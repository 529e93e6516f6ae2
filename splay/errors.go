package splay

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("splay: invalid configuration")
	// ErrCorrupted signals a violated structural tree invariant.
	ErrCorrupted = errors.New("splay: tree corrupted")
)
