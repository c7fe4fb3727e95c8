package tensor

import (
	"testing"
)

func TestZerosAndOnes(t *testing.T) {
	backend := NewMockBackend()

	zeros := Zeros[float32](Shape{2, 3}, backend)
	assertEqualShape(t, Shape{2, 3}, zeros.Shape(), "Zeros shape")
	for i, v := range zeros.Data() {
		if v != 0 {
			t.Errorf("Zeros element %d = %v, want 0", i, v)
		}
	}

	ones := Ones[float64](Shape{4}, backend)
	for i, v := range ones.Data() {
		if v != 1 {
			t.Errorf("Ones element %d = %v, want 1", i, v)
		}
	}
}

func TestFull(t *testing.T) {
	backend := NewMockBackend()

	full := Full[float32](Shape{3}, 3.5, backend)
	for _, v := range full.Data() {
		assertEqualFloat32(t, 3.5, v, "Full element")
	}
}

func TestArange(t *testing.T) {
	backend := NewMockBackend()

	r := Arange[float32](0, 6, backend)
	assertEqualShape(t, Shape{6}, r.Shape(), "Arange shape")
	for i, v := range r.Data() {
		assertEqualFloat32(t, float32(i), v, "Arange element")
	}
}

func TestEye(t *testing.T) {
	backend := NewMockBackend()

	eye := Eye[float32](3, backend)
	assertEqualShape(t, Shape{3, 3}, eye.Shape(), "Eye shape")
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			assertEqualFloat32(t, want, eye.At(i, j), "Eye element")
		}
	}
}

func TestFromSlice(t *testing.T) {
	backend := NewMockBackend()

	tr, err := FromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	assertEqualFloat32(t, 6, tr.At(1, 2), "FromSlice element")

	if _, err := FromSlice([]float32{1, 2}, Shape{2, 3}, backend); err == nil {
		t.Error("FromSlice should fail for length mismatch")
	}
}

func TestAtSetAndClone(t *testing.T) {
	backend := NewMockBackend()

	tr := Zeros[float32](Shape{2, 2}, backend)
	tr.Set(7, 1, 0)
	assertEqualFloat32(t, 7, tr.At(1, 0), "Set/At")

	clone := tr.Clone()
	clone.Set(9, 1, 0)
	assertEqualFloat32(t, 7, tr.At(1, 0), "Clone must not alias original")
}

func TestMockBackendOps(t *testing.T) {
	backend := NewMockBackend()

	a, err := FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	b, err := FromSlice([]float32{10, 20}, Shape{1, 2}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	sum := a.Add(b) // broadcast over rows
	want := []float32{11, 22, 13, 24}
	for i, v := range sum.Data() {
		assertEqualFloat32(t, want[i], v, "broadcast add")
	}

	prod := a.MatMul(a.T())
	assertEqualShape(t, Shape{2, 2}, prod.Shape(), "matmul shape")
	assertEqualFloat32(t, 5, prod.At(0, 0), "matmul [0,0]")  // 1*1 + 2*2
	assertEqualFloat32(t, 11, prod.At(0, 1), "matmul [0,1]") // 1*3 + 2*4
	assertEqualFloat32(t, 25, prod.At(1, 1), "matmul [1,1]") // 3*3 + 4*4

	reshaped := a.Reshape(4)
	assertEqualShape(t, Shape{4}, reshaped.Shape(), "reshape shape")
}
