package kdtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration or a violated
	// structural invariant.
	ErrInvalidConfig = errors.New("kdtree: invalid configuration")
	// ErrInvalidCursor signals dereferencing or erasing through an end
	// cursor, or through a cursor bound to a different tree.
	ErrInvalidCursor = errors.New("kdtree: invalid cursor")
)
