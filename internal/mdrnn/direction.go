// Package mdrnn implements a multi-dimensional recurrent neural network:
// a recurrent scan over an N-dimensional grid of feature vectors that
// generalizes the classic 1-D sequence RNN. At every grid cell the
// recurrent cell combines the cell's input vector with one predecessor
// hidden state per spatial axis, in an order determined by a per-axis
// scan direction.
package mdrnn

import "fmt"

// Direction describes the scan order of a grid traversal: one sign per
// spatial axis, +1 for ascending coordinate order and -1 for descending.
// A Direction is immutable after construction.
//
// Example:
//
//	dir, err := mdrnn.NewDirection(1, -1) // rows top-down, columns right-to-left
type Direction struct {
	signs []int
}

// NewDirection creates a Direction from one sign per spatial axis.
// Every sign must be exactly +1 or -1.
func NewDirection(signs ...int) (Direction, error) {
	if len(signs) == 0 {
		return Direction{}, fmt.Errorf("%w: direction needs at least one axis", ErrConfiguration)
	}
	for i, s := range signs {
		if s != 1 && s != -1 {
			return Direction{}, fmt.Errorf("%w: direction sign for axis %d must be +1 or -1, got %d", ErrConfiguration, i, s)
		}
	}
	return Direction{signs: append([]int(nil), signs...)}, nil
}

// Forward returns the all-ascending Direction of the given rank.
// This is the default scan order (top-left corner towards bottom-right).
func Forward(rank int) Direction {
	signs := make([]int, rank)
	for i := range signs {
		signs[i] = 1
	}
	return Direction{signs: signs}
}

// Rank returns the number of spatial axes.
func (d Direction) Rank() int {
	return len(d.signs)
}

// Sign returns the scan sign (+1 or -1) for the given axis.
func (d Direction) Sign(axis int) int {
	return d.signs[axis]
}

// Ascending reports whether the scan proceeds in ascending coordinate
// order along the given axis.
func (d Direction) Ascending(axis int) bool {
	return d.signs[axis] == 1
}

// String returns a human-readable representation, e.g. "Direction(+1, -1)".
func (d Direction) String() string {
	s := "Direction("
	for i, sign := range d.signs {
		if i > 0 {
			s += ", "
		}
		if sign > 0 {
			s += "+1"
		} else {
			s += "-1"
		}
	}
	return s + ")"
}
