package mdrnn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grid-ml/gridrnn/internal/backend/cpu"
	"github.com/grid-ml/gridrnn/internal/tensor"
)

// newUnitLayer builds an MDRNN layer around the scalar identity cell used
// by the scan tests.
func newUnitLayer(t *testing.T, returnSequences, returnState bool, backend *cpu.CPUBackend) *MDRNN[*cpu.CPUBackend] {
	t.Helper()
	layer, err := NewMDRNN(1, 1, 2, nil, Forward(2), returnSequences, returnState, backend)
	require.NoError(t, err)

	cell := layer.Cell()
	cell.Kernel().Tensor().Data()[0] = 1
	cell.Recurrent(0).Tensor().Data()[0] = 1
	cell.Recurrent(1).Tensor().Data()[0] = 1
	cell.Bias().Tensor().Data()[0] = -1
	return layer
}

func TestNewMDRNNRejectsRankMismatch(t *testing.T) {
	_, err := NewMDRNN(1, 1, 2, nil, Forward(3), true, false, cpu.New())
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestLayerCallReturnsSequenceAndState(t *testing.T) {
	backend := cpu.New()
	layer := newUnitLayer(t, true, true, backend)
	grid := arange6Grid(t, backend)

	output, state, err := layer.Call(grid, nil)
	require.NoError(t, err)

	require.Equal(t, tensor.Shape{1, 2, 3, 1}, output.Shape())
	assert.InDeltaSlice(t, []float32{-1, -1, 0, 1, 3, 7}, output.Data(), 1e-6)

	require.NotNil(t, state)
	assert.InDelta(t, 7, state.At(0, 0), 1e-6)
}

func TestLayerCallFinalStateOutput(t *testing.T) {
	backend := cpu.New()
	layer := newUnitLayer(t, false, false, backend)
	grid := arange6Grid(t, backend)

	output, state, err := layer.Call(grid, nil)
	require.NoError(t, err)

	require.Equal(t, tensor.Shape{1, 1}, output.Shape())
	assert.InDelta(t, 7, output.At(0, 0), 1e-6)
	assert.Nil(t, state)
}

func TestLayerCallStateMatchesOutputWithoutSequences(t *testing.T) {
	backend := cpu.New()
	layer := newUnitLayer(t, false, true, backend)
	grid := arange6Grid(t, backend)

	output, state, err := layer.Call(grid, nil)
	require.NoError(t, err)

	require.NotNil(t, state)
	assert.Equal(t, output.Data(), state.Data())
}

func TestLayerCallWithInitialStates(t *testing.T) {
	backend := cpu.New()
	layer := newUnitLayer(t, true, false, backend)
	grid := arange6Grid(t, backend)

	ones := tensor.Ones[float32](tensor.Shape{1, 1}, backend)
	initial := []*tensor.Tensor[float32, *cpu.CPUBackend]{ones, ones}

	output, _, err := layer.Call(grid, initial)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float32{1, 1, 2, 3, 7, 13}, output.Data(), 1e-6)
}

func TestLayerForwardMatchesCall(t *testing.T) {
	backend := cpu.New()
	layer := newUnitLayer(t, true, false, backend)
	grid := arange6Grid(t, backend)

	fromCall, _, err := layer.Call(grid, nil)
	require.NoError(t, err)

	fromForward := layer.Forward(grid)
	assert.Equal(t, fromCall.Data(), fromForward.Data())
}

func TestLayerForwardPanicsOnBadInput(t *testing.T) {
	backend := cpu.New()
	layer := newUnitLayer(t, true, false, backend)

	flat := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
	assert.Panics(t, func() { layer.Forward(flat) })
}

func TestLayerAccessors(t *testing.T) {
	backend := cpu.New()
	layer := newUnitLayer(t, true, true, backend)

	assert.True(t, layer.ReturnSequences())
	assert.True(t, layer.ReturnState())
	assert.Equal(t, 2, layer.Direction().Rank())
	assert.Len(t, layer.Parameters(), 4) // kernel + 2 recurrent + bias
}
