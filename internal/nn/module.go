// Package nn implements neural network building blocks for the GridRNN framework.
//
// This package provides:
//   - Module interface: base interface for all NN components
//   - Parameter: named parameter tensors
//   - Activations: ReLU, Sigmoid, Tanh
//   - Initializers: Xavier, Zeros, Ones, Identity
//
// Design inspired by PyTorch's nn.Module but adapted for Go generics.
package nn

import (
	"github.com/grid-ml/gridrnn/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute output from input
//   - Parameters: Return all parameters
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns all parameters of this module.
	// Returns an empty slice for modules without parameters
	// (e.g., activation functions).
	Parameters() []*Parameter[B]
}
