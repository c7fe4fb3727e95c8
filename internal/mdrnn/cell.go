package mdrnn

import (
	"fmt"

	"github.com/grid-ml/gridrnn/internal/nn"
	"github.com/grid-ml/gridrnn/internal/tensor"
)

// Cell is the recurrent unit applied at every grid cell. It combines a
// cell's input vector with one predecessor hidden state per spatial axis:
//
//	h = activation(x @ W_in + Σ_k s_k @ W_rec_k + b)
//
// where x is (batch, in_features), each s_k is (batch, units), W_in is
// (in_features, units), each W_rec_k is (units, units), and b is (units).
// The same parameter set is shared by every cell of the grid and every
// batch element; the cell holds no per-coordinate state.
type Cell[B tensor.Backend] struct {
	inFeatures int
	units      int
	rank       int
	kernel     *nn.Parameter[B]   // [in_features, units]
	recurrent  []*nn.Parameter[B] // one [units, units] matrix per spatial axis
	bias       *nn.Parameter[B]   // [units]
	activation nn.Module[B]       // nil applies no activation
	backend    B
}

// NewCell creates a recurrent cell for grids of the given spatial rank.
//
// The kernel and recurrent matrices are initialized with Xavier uniform
// values and the bias with zeros; callers that need specific weights
// write into the parameter tensors directly. A nil activation leaves the
// pre-activation untouched (linear cell).
func NewCell[B tensor.Backend](inFeatures, units, rank int, activation nn.Module[B], backend B) (*Cell[B], error) {
	if inFeatures <= 0 || units <= 0 {
		return nil, fmt.Errorf("%w: in_features and units must be positive, got %d and %d",
			ErrConfiguration, inFeatures, units)
	}
	if rank < 1 {
		return nil, fmt.Errorf("%w: spatial rank must be at least 1, got %d", ErrConfiguration, rank)
	}

	kernel := nn.NewParameter("kernel",
		nn.Xavier(inFeatures, units, tensor.Shape{inFeatures, units}, backend))

	recurrent := make([]*nn.Parameter[B], rank)
	for k := range recurrent {
		recurrent[k] = nn.NewParameter(fmt.Sprintf("recurrent_%d", k),
			nn.Xavier(units, units, tensor.Shape{units, units}, backend))
	}

	bias := nn.NewParameter("bias", nn.Zeros(tensor.Shape{units}, backend))

	return &Cell[B]{
		inFeatures: inFeatures,
		units:      units,
		rank:       rank,
		kernel:     kernel,
		recurrent:  recurrent,
		bias:       bias,
		activation: activation,
		backend:    backend,
	}, nil
}

// Update computes the hidden state for one grid cell.
//
// input is (batch, in_features); states holds one (batch, units)
// predecessor hidden state per spatial axis (boundary substitution is the
// caller's concern). The result is (batch, units).
//
// Update only reads the cell's parameters, so concurrent calls for
// independent cells are safe.
func (c *Cell[B]) Update(input *tensor.Tensor[float32, B], states []*tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	inputShape := input.Shape()
	if len(inputShape) != 2 || inputShape[1] != c.inFeatures {
		panic(fmt.Sprintf("Cell.Update: expected input shape [batch, %d], got %v", c.inFeatures, inputShape))
	}
	if len(states) != c.rank {
		panic(fmt.Sprintf("Cell.Update: expected %d predecessor states, got %d", c.rank, len(states)))
	}

	// x @ W_in: [batch, in_features] @ [in_features, units] = [batch, units]
	pre := input.MatMul(c.kernel.Tensor())

	for k, state := range states {
		pre = pre.Add(state.MatMul(c.recurrent[k].Tensor()))
	}

	// Bias broadcasts from [1, units] over the batch.
	pre = pre.Add(c.bias.Tensor().Reshape(1, c.units))

	if c.activation != nil {
		return c.activation.Forward(pre)
	}
	return pre
}

// InFeatures returns the expected input feature width.
func (c *Cell[B]) InFeatures() int {
	return c.inFeatures
}

// Units returns the hidden state width.
func (c *Cell[B]) Units() int {
	return c.units
}

// Rank returns the spatial rank the cell was built for (the number of
// recurrent matrices).
func (c *Cell[B]) Rank() int {
	return c.rank
}

// Kernel returns the input-weight parameter, shape [in_features, units].
func (c *Cell[B]) Kernel() *nn.Parameter[B] {
	return c.kernel
}

// Recurrent returns the recurrent-weight parameter for the given spatial
// axis, shape [units, units].
func (c *Cell[B]) Recurrent(axis int) *nn.Parameter[B] {
	return c.recurrent[axis]
}

// Bias returns the bias parameter, shape [units].
func (c *Cell[B]) Bias() *nn.Parameter[B] {
	return c.bias
}

// Activation returns the activation module, or nil for a linear cell.
func (c *Cell[B]) Activation() nn.Module[B] {
	return c.activation
}

// Parameters returns the kernel, the per-axis recurrent matrices, and the bias.
func (c *Cell[B]) Parameters() []*nn.Parameter[B] {
	params := make([]*nn.Parameter[B], 0, c.rank+2)
	params = append(params, c.kernel)
	params = append(params, c.recurrent...)
	params = append(params, c.bias)
	return params
}
