// Copyright 2026 GridRNN Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/grid-ml/gridrnn/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: pure Go reference implementation
//
// Optional capabilities (activation functions and the like) are expressed
// as small single-method interfaces next to their consumers, so a backend
// only implements what it supports.
//
// Example:
//
//	import (
//	    "github.com/grid-ml/gridrnn/tensor"
//	    "github.com/grid-ml/gridrnn/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Uses backend.Add under the hood
type Backend = tensor.Backend
