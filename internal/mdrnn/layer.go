package mdrnn

import (
	"fmt"

	"github.com/grid-ml/gridrnn/internal/nn"
	"github.com/grid-ml/gridrnn/internal/tensor"
)

// MDRNN is a multi-dimensional recurrent layer. It sweeps a shared
// recurrent Cell over an n-dimensional grid of feature vectors, feeding
// each cell one predecessor hidden state per spatial axis, and returns
// either the full hidden-state grid, the terminal hidden state, or both.
type MDRNN[B tensor.Backend] struct {
	cell            *Cell[B]
	dir             Direction
	returnSequences bool
	returnState     bool
}

// NewMDRNN creates a multi-dimensional recurrent layer.
//
// rank is the number of spatial grid axes; dir must have the same rank.
// activation may be nil for a linear cell. When returnSequences is false
// the layer's output is the terminal hidden state instead of the full
// state grid; returnState additionally exposes the terminal state as a
// second result of Call regardless of the output mode.
func NewMDRNN[B tensor.Backend](
	inFeatures, units, rank int,
	activation nn.Module[B],
	dir Direction,
	returnSequences, returnState bool,
	backend B,
) (*MDRNN[B], error) {
	if dir.Rank() != rank {
		return nil, fmt.Errorf("%w: layer rank is %d but direction has rank %d",
			ErrConfiguration, rank, dir.Rank())
	}

	cell, err := NewCell(inFeatures, units, rank, activation, backend)
	if err != nil {
		return nil, err
	}

	return &MDRNN[B]{
		cell:            cell,
		dir:             dir,
		returnSequences: returnSequences,
		returnState:     returnState,
	}, nil
}

// Call scans the input grid and returns the layer's results.
//
// input has shape (batch, axis_1, ..., axis_n, in_features).
// initialStates may be nil (zero states) or hold one (batch, units) or
// (1, units) tensor per spatial axis.
//
// output is the full (batch, axis_1, ..., axis_n, units) sequence when
// the layer was built with returnSequences, and the (batch, units)
// terminal hidden state otherwise. state is the terminal hidden state
// when the layer was built with returnState, and nil otherwise.
func (m *MDRNN[B]) Call(
	input *tensor.Tensor[float32, B],
	initialStates []*tensor.Tensor[float32, B],
) (output, state *tensor.Tensor[float32, B], err error) {
	// The terminal state doubles as the output when sequences are off, so
	// the scan always produces it in that case.
	wantState := m.returnState || !m.returnSequences

	sequence, finalState, err := Scan(input, m.cell, m.dir, initialStates,
		m.returnSequences, wantState)
	if err != nil {
		return nil, nil, err
	}

	if m.returnSequences {
		output = sequence
	} else {
		output = finalState
	}
	if m.returnState {
		state = finalState
	}
	return output, state, nil
}

// Forward scans the input grid with zero initial states and returns the
// layer's primary output, satisfying nn.Module. It panics on validation
// errors; use Call for explicit error handling and initial states.
func (m *MDRNN[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	output, _, err := m.Call(input, nil)
	if err != nil {
		panic(fmt.Sprintf("MDRNN.Forward: %v", err))
	}
	return output
}

// Cell returns the shared recurrent cell.
func (m *MDRNN[B]) Cell() *Cell[B] {
	return m.cell
}

// Direction returns the layer's scan direction.
func (m *MDRNN[B]) Direction() Direction {
	return m.dir
}

// ReturnSequences reports whether Call's output is the full state grid.
func (m *MDRNN[B]) ReturnSequences() bool {
	return m.returnSequences
}

// ReturnState reports whether Call exposes the terminal hidden state.
func (m *MDRNN[B]) ReturnState() bool {
	return m.returnState
}

// Parameters returns the cell's trainable parameters.
func (m *MDRNN[B]) Parameters() []*nn.Parameter[B] {
	return m.cell.Parameters()
}
