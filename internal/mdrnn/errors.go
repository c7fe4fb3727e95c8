package mdrnn

import "errors"

// Error categories for scan-time validation. All validation happens
// before any cell is computed; a failed scan never returns partial
// results.
var (
	// ErrConfiguration indicates a rank mismatch between the grid, the
	// direction, and the initial states, or a malformed direction or
	// initial-state shape.
	ErrConfiguration = errors.New("mdrnn: invalid configuration")

	// ErrShape indicates that the input's feature dimensionality does not
	// match the cell's expected input width.
	ErrShape = errors.New("mdrnn: shape mismatch")
)
