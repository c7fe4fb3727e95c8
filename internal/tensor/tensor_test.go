package tensor

import (
	"math"
	"testing"
)

// Test helpers

func assertEqualFloat32(t *testing.T, expected, actual float32, msg string) {
	t.Helper()
	if math.Abs(float64(expected-actual)) > 1e-6 {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

// DType Tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestInferDataType(t *testing.T) {
	if dt := inferDataType(float32(0)); dt != Float32 {
		t.Errorf("inferDataType(float32) = %v, want Float32", dt)
	}
	if dt := inferDataType(float64(0)); dt != Float64 {
		t.Errorf("inferDataType(float64) = %v, want Float64", dt)
	}
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1}, // Scalar
		{Shape{5}, 5},
		{Shape{3, 4}, 12},
		{Shape{2, 3, 4}, 24},
		{Shape{1, 1, 1}, 1},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeValidation(t *testing.T) {
	for _, s := range []Shape{{1}, {3, 4}, {2, 3, 4}} {
		if err := s.Validate(); err != nil {
			t.Errorf("Shape%v.Validate() failed: %v", s, err)
		}
	}

	for _, s := range []Shape{{0}, {3, 0}, {-1}, {3, -4}} {
		if err := s.Validate(); err == nil {
			t.Errorf("Shape%v.Validate() should have failed", s)
		}
	}
}

func TestComputeStrides(t *testing.T) {
	tests := []struct {
		shape   Shape
		strides []int
	}{
		{Shape{6}, []int{1}},
		{Shape{2, 3}, []int{3, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		for i := range tt.strides {
			if got[i] != tt.strides[i] {
				t.Errorf("Shape%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.strides)
				break
			}
		}
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b     Shape
		expected Shape
		needs    bool
	}{
		{Shape{2, 3}, Shape{2, 3}, Shape{2, 3}, false},
		{Shape{1, 3}, Shape{2, 3}, Shape{2, 3}, true},
		{Shape{3}, Shape{2, 3}, Shape{2, 3}, true},
		{Shape{2, 1}, Shape{1, 3}, Shape{2, 3}, true},
	}

	for _, tt := range tests {
		got, needs, err := BroadcastShapes(tt.a, tt.b)
		if err != nil {
			t.Errorf("BroadcastShapes(%v, %v) failed: %v", tt.a, tt.b, err)
			continue
		}
		assertEqualShape(t, tt.expected, got, "broadcast result")
		if needs != tt.needs {
			t.Errorf("BroadcastShapes(%v, %v) needsBroadcast = %v, want %v", tt.a, tt.b, needs, tt.needs)
		}
	}

	if _, _, err := BroadcastShapes(Shape{2, 3}, Shape{4, 3}); err == nil {
		t.Error("BroadcastShapes should fail for incompatible shapes")
	}
}

// RawTensor Tests

func TestNewRawZeroInitialized(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if raw.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", raw.NumElements())
	}
	if raw.ByteSize() != 24 {
		t.Errorf("ByteSize() = %d, want 24", raw.ByteSize())
	}
	for i, v := range raw.AsFloat32() {
		if v != 0 {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	}
}

func TestRawTensorWithShape(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	view, err := raw.WithShape(Shape{3, 2})
	if err != nil {
		t.Fatalf("WithShape failed: %v", err)
	}

	// Views share the underlying buffer.
	raw.AsFloat32()[0] = 42
	assertEqualFloat32(t, 42, view.AsFloat32()[0], "view should alias buffer")

	if _, err := raw.WithShape(Shape{7}); err == nil {
		t.Error("WithShape should fail for mismatched element count")
	}
}

func TestRawTensorClone(t *testing.T) {
	raw, err := NewRaw(Shape{4}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	raw.AsFloat32()[2] = 5

	clone := raw.Clone()
	clone.AsFloat32()[2] = 9

	assertEqualFloat32(t, 5, raw.AsFloat32()[2], "clone must not alias original")
}
