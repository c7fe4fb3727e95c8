// Copyright 2026 GridRNN Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// The backend implements the full tensor.Backend interface plus the
// activation capabilities (ReLU, Sigmoid, Tanh) consumed by the nn
// package, with float32 and float64 support and NumPy-compatible
// broadcasting.
//
// Example:
//
//	import (
//	    "github.com/grid-ml/gridrnn/backend/cpu"
//	    "github.com/grid-ml/gridrnn/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
package cpu

import (
	internalcpu "github.com/grid-ml/gridrnn/internal/backend/cpu"
	"github.com/grid-ml/gridrnn/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
func New() *Backend {
	return internalcpu.New()
}
