// Copyright 2026 GridRNN Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/grid-ml/gridrnn/internal/backend/cpu"
	"github.com/grid-ml/gridrnn/tensor"
)

// TestBackendInterface verifies that cpu.CPUBackend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.CPUBackend)(nil)
}

// TestRawTensorAPI verifies the RawTensor type alias exposes the expected API.
func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", raw.Shape())
	}
	if raw.DType() != tensor.Float32 {
		t.Errorf("DType() = %v, want Float32", raw.DType())
	}
	if raw.Device() != tensor.CPU {
		t.Errorf("Device() = %v, want CPU", raw.Device())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", raw.NumElements())
	}
	if raw.ByteSize() != 24 {
		t.Errorf("ByteSize() = %d, want 24", raw.ByteSize())
	}
}

// TestPublicTensorOps exercises the facade end to end on the CPU backend.
func TestPublicTensorOps(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)

	sum := x.Add(y)
	if got := sum.At(1, 2); got != 7 {
		t.Errorf("Add At(1,2) = %v, want 7", got)
	}

	prod := x.MatMul(y.T())
	if !prod.Shape().Equal(tensor.Shape{2, 2}) {
		t.Errorf("MatMul shape = %v, want [2 2]", prod.Shape())
	}
	if got := prod.At(0, 0); got != 6 {
		t.Errorf("MatMul At(0,0) = %v, want 6", got)
	}

	r := tensor.Arange[float32](0, 6, backend).Reshape(2, 3)
	if !r.Shape().Equal(tensor.Shape{2, 3}) {
		t.Errorf("Reshape shape = %v, want [2 3]", r.Shape())
	}
}
