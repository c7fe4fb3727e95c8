// Copyright 2026 GridRNN Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor operations for the GridRNN framework.
//
// # Overview
//
// Tensors are the fundamental data structure in GridRNN. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting
//   - Zero-copy views where possible
//   - A Backend interface for pluggable compute implementations
//
// # Basic Usage
//
//	import (
//	    "github.com/grid-ml/gridrnn/tensor"
//	    "github.com/grid-ml/gridrnn/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Create tensors
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//
//	    // Tensor operations
//	    z := x.Add(y)
//	    result := x.MatMul(y.T())
//	}
//
// # Supported Data Types
//
// The DType constraint admits float32 and float64. The grid-scan layers
// operate on float32, the framework's working precision.
//
// # Broadcasting
//
// Element-wise binary operations follow NumPy broadcasting rules: shapes
// are compared right-to-left and dimensions of size 1 stretch to match.
package tensor
