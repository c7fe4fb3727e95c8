// Copyright 2026 GridRNN Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mdrnn

import (
	"github.com/grid-ml/gridrnn/internal/mdrnn"
	"github.com/grid-ml/gridrnn/internal/nn"
	"github.com/grid-ml/gridrnn/internal/tensor"
)

// Error categories for scan-time validation.
var (
	// ErrConfiguration indicates a rank mismatch between the grid, the
	// direction, and the initial states, or a malformed direction or
	// initial-state shape.
	ErrConfiguration = mdrnn.ErrConfiguration

	// ErrShape indicates that the input's feature dimensionality does not
	// match the cell's expected input width.
	ErrShape = mdrnn.ErrShape
)

// Direction describes the scan order of a grid traversal: one sign per
// spatial axis, +1 for ascending coordinate order and -1 for descending.
type Direction = mdrnn.Direction

// NewDirection creates a Direction from one sign per spatial axis.
// Every sign must be exactly +1 or -1.
//
// Example:
//
//	dir, err := mdrnn.NewDirection(1, -1) // rows top-down, columns right-to-left
func NewDirection(signs ...int) (Direction, error) {
	return mdrnn.NewDirection(signs...)
}

// Forward returns the all-ascending Direction of the given rank, the
// default scan order.
func Forward(rank int) Direction {
	return mdrnn.Forward(rank)
}

// Cell is the recurrent unit applied at every grid cell.
type Cell[B tensor.Backend] = mdrnn.Cell[B]

// NewCell creates a recurrent cell for grids of the given spatial rank.
// A nil activation leaves the pre-activation untouched (linear cell).
func NewCell[B tensor.Backend](inFeatures, units, rank int, activation nn.Module[B], backend B) (*Cell[B], error) {
	return mdrnn.NewCell(inFeatures, units, rank, activation, backend)
}

// MDRNN is a multi-dimensional recurrent layer: a shared Cell swept over
// an N-dimensional grid in a configurable Direction.
type MDRNN[B tensor.Backend] = mdrnn.MDRNN[B]

// NewMDRNN creates a multi-dimensional recurrent layer.
//
// rank is the number of spatial grid axes; dir must have the same rank.
// When returnSequences is false the layer's output is the terminal hidden
// state instead of the full state grid; returnState additionally exposes
// the terminal state as a second result of Call.
func NewMDRNN[B tensor.Backend](
	inFeatures, units, rank int,
	activation nn.Module[B],
	dir Direction,
	returnSequences, returnState bool,
	backend B,
) (*MDRNN[B], error) {
	return mdrnn.NewMDRNN(inFeatures, units, rank, activation, dir, returnSequences, returnState, backend)
}

// Scan runs a recurrent grid scan directly, without constructing a layer.
//
// grid has shape (batch, axis_1, ..., axis_n, in_features). initialStates
// optionally supplies one (batch, units) or (1, units) vector per spatial
// axis, injected as the virtual predecessors of the scan-origin cell; nil
// defaults every axis to zeros. The returned sequence has shape
// (batch, axis_1, ..., axis_n, units); the final state is the
// (batch, units) hidden vector of the terminal coordinate. Either result
// is nil when its flag is false.
func Scan[B tensor.Backend](
	grid *tensor.Tensor[float32, B],
	cell *Cell[B],
	dir Direction,
	initialStates []*tensor.Tensor[float32, B],
	returnSequences, returnState bool,
) (*tensor.Tensor[float32, B], *tensor.Tensor[float32, B], error) {
	return mdrnn.Scan(grid, cell, dir, initialStates, returnSequences, returnState)
}
