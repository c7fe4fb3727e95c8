package mdrnn

import (
	"fmt"

	"github.com/grid-ml/gridrnn/internal/parallel"
	"github.com/grid-ml/gridrnn/internal/tensor"
)

// Scan runs the recurrent grid scan.
//
// grid is the input tensor with shape (batch, axis_1, ..., axis_n,
// in_features); its spatial rank n is inferred from the shape and must
// match both dir and the cell. initialStates optionally supplies one
// (batch, units) vector per spatial axis, injected as the virtual
// predecessors of the scan-origin cell (the one cell with no in-bounds
// predecessor on any axis); every other boundary axis contributes a zero
// state. nil defaults every axis to zeros, and a (1, units) vector is
// broadcast over the batch.
//
// The returned sequence has shape (batch, axis_1, ..., axis_n, units) in
// grid coordinate order; the final state is the (batch, units) hidden
// vector of the terminal coordinate. Either result is nil when its flag
// is false.
//
// All validation happens up front: on error no cell is computed and both
// results are nil. The scan never mutates grid, the cell's parameters, or
// the initial states, so concurrent scans sharing a cell are safe.
func Scan[B tensor.Backend](
	grid *tensor.Tensor[float32, B],
	cell *Cell[B],
	dir Direction,
	initialStates []*tensor.Tensor[float32, B],
	returnSequences, returnState bool,
) (sequence, finalState *tensor.Tensor[float32, B], err error) {
	gridShape := grid.Shape()
	if len(gridShape) < 3 {
		return nil, nil, fmt.Errorf("%w: grid must have shape (batch, spatial..., features), got %v",
			ErrConfiguration, gridShape)
	}

	spatialRank := len(gridShape) - 2
	if dir.Rank() != spatialRank {
		return nil, nil, fmt.Errorf("%w: grid has %d spatial axes but direction has rank %d",
			ErrConfiguration, spatialRank, dir.Rank())
	}
	if cell.Rank() != spatialRank {
		return nil, nil, fmt.Errorf("%w: grid has %d spatial axes but cell was built for rank %d",
			ErrConfiguration, spatialRank, cell.Rank())
	}

	features := gridShape[len(gridShape)-1]
	if features != cell.InFeatures() {
		return nil, nil, fmt.Errorf("%w: grid has %d input features but cell expects %d",
			ErrShape, features, cell.InFeatures())
	}

	batch := gridShape[0]
	units := cell.Units()
	backend := grid.Backend()

	initial, err := resolveInitialStates(initialStates, spatialRank, batch, units, backend)
	if err != nil {
		return nil, nil, err
	}

	spatial := tensor.Shape(gridShape[1 : len(gridShape)-1])
	indexer := newGridIndexer(spatial, dir)

	stateShape := make(tensor.Shape, 0, len(gridShape))
	stateShape = append(stateShape, batch)
	stateShape = append(stateShape, spatial...)
	stateShape = append(stateShape, units)

	stateRaw, err := tensor.NewRaw(stateShape, tensor.Float32, backend.Device())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	gridData := grid.Raw().AsFloat32()
	gridStrides := grid.Raw().Strides()
	stateData := stateRaw.AsFloat32()
	stateStrides := stateRaw.Strides()

	zeroState := tensor.Zeros[float32](tensor.Shape{batch, units}, backend)

	// Cells within a wavefront share no predecessor relationship, so they
	// may be computed concurrently; each writes a disjoint slice of the
	// state grid. Wavefronts themselves run strictly in order. The first
	// wavefront holds exactly the scan-origin cell, the only cell that
	// sees the initial states.
	cfg := parallel.DefaultConfig()
	for level, front := range indexer.Wavefronts() {
		cells := front
		atOrigin := level == 0
		parallel.For(len(cells), func(i int) {
			coord := cells[i]

			x := gatherVectors(gridData, gridStrides, coord, batch, features, backend)

			states := make([]*tensor.Tensor[float32, B], spatialRank)
			for k := 0; k < spatialRank; k++ {
				switch pred, ok := indexer.Predecessor(coord, k); {
				case ok:
					states[k] = gatherVectors(stateData, stateStrides, pred, batch, units, backend)
				case atOrigin:
					states[k] = initial[k]
				default:
					states[k] = zeroState
				}
			}

			h := cell.Update(x, states)
			scatterVectors(stateData, stateStrides, coord, batch, units, h.Data())
		}, cfg)
	}

	sequence, finalState = assembleOutputs(stateRaw, indexer, batch, units,
		returnSequences, returnState, backend)
	return sequence, finalState, nil
}

// resolveInitialStates validates the caller-supplied initial states and
// fills in the zero-vector default, broadcasting (1, units) over the batch.
func resolveInitialStates[B tensor.Backend](
	initialStates []*tensor.Tensor[float32, B],
	rank, batch, units int,
	backend B,
) ([]*tensor.Tensor[float32, B], error) {
	initial := make([]*tensor.Tensor[float32, B], rank)

	if initialStates == nil {
		zero := tensor.Zeros[float32](tensor.Shape{batch, units}, backend)
		for k := range initial {
			initial[k] = zero
		}
		return initial, nil
	}

	if len(initialStates) != rank {
		return nil, fmt.Errorf("%w: expected %d initial states (one per spatial axis), got %d",
			ErrConfiguration, rank, len(initialStates))
	}

	for k, state := range initialStates {
		if state == nil {
			initial[k] = tensor.Zeros[float32](tensor.Shape{batch, units}, backend)
			continue
		}

		shape := state.Shape()
		if len(shape) != 2 || shape[1] != units {
			return nil, fmt.Errorf("%w: initial state for axis %d must have shape [batch, %d], got %v",
				ErrConfiguration, k, units, shape)
		}

		switch shape[0] {
		case batch:
			initial[k] = state
		case 1:
			// Broadcast the single row over the batch.
			expanded := tensor.Zeros[float32](tensor.Shape{batch, units}, backend)
			row := state.Data()
			data := expanded.Data()
			for b := 0; b < batch; b++ {
				copy(data[b*units:(b+1)*units], row)
			}
			initial[k] = expanded
		default:
			return nil, fmt.Errorf("%w: initial state for axis %d has batch size %d, want %d or 1",
				ErrConfiguration, k, shape[0], batch)
		}
	}

	return initial, nil
}
