// Copyright 2026 GridRNN Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mdrnn implements multi-dimensional recurrent neural networks:
// recurrent scans over N-dimensional grids of feature vectors that
// generalize the classic 1-D sequence RNN.
//
// # Overview
//
// At every grid cell the recurrent cell combines the cell's input vector
// with one predecessor hidden state per spatial axis:
//
//	h = activation(x·W_in + Σ_k s_k·W_rec_k + b)
//
// The per-axis scan Direction decides which neighbor is the predecessor
// (ascending or descending coordinate order) and thereby which corner of
// the grid the scan starts and ends at. The same parameter set is shared
// by every cell and batch element.
//
// # Basic Usage
//
//	import (
//	    "github.com/grid-ml/gridrnn/mdrnn"
//	    "github.com/grid-ml/gridrnn/backend/cpu"
//	    "github.com/grid-ml/gridrnn/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // 2-D scan over a (batch=1, 2, 3, features=1) grid.
//	    layer, err := mdrnn.NewMDRNN(1, 8, 2, nil, mdrnn.Forward(2), true, true, backend)
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    grid := tensor.Randn[float32](tensor.Shape{1, 2, 3, 1}, backend)
//	    sequence, state, err := layer.Call(grid, nil)
//	    _ = sequence // (1, 2, 3, 8) hidden states in grid order
//	    _ = state    // (1, 8) hidden state of the terminal cell
//	    _ = err
//	}
//
// # Outputs
//
// A layer built with returnSequences yields the full hidden-state grid in
// grid coordinate order; otherwise its output is the terminal cell's
// state. returnState additionally exposes the terminal state as a second
// result. The terminal state always equals the sequence's value at the
// terminal coordinate.
package mdrnn
