// Copyright 2026 GridRNN Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks for the GridRNN framework.
//
// # Overview
//
// This package contains:
//   - Activations: ReLU, Sigmoid, Tanh
//   - Utilities: Module interface, Parameter
//   - Initialization: Xavier, Zeros, Ones, Identity
//
// The recurrent grid-scan layer itself lives in package mdrnn; this
// package supplies the pieces it is assembled from.
//
// # Basic Usage
//
//	import (
//	    "github.com/grid-ml/gridrnn/nn"
//	    "github.com/grid-ml/gridrnn/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    tanh := nn.NewTanh[*cpu.Backend]()
//	    w := nn.NewParameter("kernel", nn.Xavier(4, 8, tensor.Shape{4, 8}, backend))
//	    _ = tanh
//	    _ = w
//	}
package nn
