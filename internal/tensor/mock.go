package tensor

import "fmt"

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It implements all operations naively for correctness verification.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Add performs element-wise addition with broadcasting.
func (m *MockBackend) Add(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (m *MockBackend) Sub(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (m *MockBackend) Mul(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x * y })
}

// MatMul performs naive 2D matrix multiplication.
func (m *MockBackend) MatMul(a, b *RawTensor) *RawTensor {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 || aShape[1] != bShape[0] {
		panic(fmt.Sprintf("matmul: incompatible shapes %v and %v", aShape, bShape))
	}

	rows, inner, cols := aShape[0], aShape[1], bShape[1]
	result, err := NewRaw(Shape{rows, cols}, a.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	aData := m.toFloat64Slice(a)
	bData := m.toFloat64Slice(b)
	out := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sum := 0.0
			for k := 0; k < inner; k++ {
				sum += aData[i*inner+k] * bData[k*cols+j]
			}
			out[i*cols+j] = sum
		}
	}
	m.fromFloat64Slice(out, result)
	return result
}

// Reshape returns a view of the same buffer with a new shape.
func (m *MockBackend) Reshape(t *RawTensor, newShape Shape) *RawTensor {
	result, err := t.WithShape(newShape)
	if err != nil {
		panic(err)
	}
	return result
}

// Transpose permutes dimensions; empty axes reverses them all.
func (m *MockBackend) Transpose(t *RawTensor, axes ...int) *RawTensor {
	shape := t.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}

	newShape := make(Shape, ndim)
	for i, ax := range axes {
		newShape[i] = shape[ax]
	}

	result, err := NewRaw(newShape, t.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	oldStrides := shape.ComputeStrides()
	newStrides := newShape.ComputeStrides()
	src := m.toFloat64Slice(t)
	dst := make([]float64, len(src))

	idx := make([]int, ndim)
	for i := range dst {
		tmp := i
		for j := ndim - 1; j >= 0; j-- {
			idx[j] = tmp % newShape[j]
			tmp /= newShape[j]
		}
		oldFlat, newFlat := 0, 0
		for j := 0; j < ndim; j++ {
			oldFlat += idx[j] * oldStrides[axes[j]]
			newFlat += idx[j] * newStrides[j]
		}
		dst[newFlat] = src[oldFlat]
	}
	m.fromFloat64Slice(dst, result)
	return result
}

// elementWise performs element-wise operations with broadcasting.
func (m *MockBackend) elementWise(a, b *RawTensor, op func(float64, float64) float64) *RawTensor {
	outShape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}

	result, err := NewRaw(outShape, a.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	aData := m.toFloat64Slice(a)
	bData := m.toFloat64Slice(b)
	out := make([]float64, outShape.NumElements())

	for i := range out {
		aIdx := m.broadcastIndex(i, outShape, a.Shape())
		bIdx := m.broadcastIndex(i, outShape, b.Shape())
		out[i] = op(aData[aIdx], bData[bIdx])
	}

	m.fromFloat64Slice(out, result)
	return result
}

// broadcastIndex maps a flat index in the output shape to the flat index
// in an operand's (possibly smaller) shape under broadcasting rules.
func (m *MockBackend) broadcastIndex(flatIdx int, outShape, inShape Shape) int {
	outStrides := outShape.ComputeStrides()
	inStrides := inShape.ComputeStrides()
	offset := len(outShape) - len(inShape)

	inIdx := 0
	for i := 0; i < len(outShape); i++ {
		coord := (flatIdx / outStrides[i]) % outShape[i]
		j := i - offset
		if j < 0 {
			continue
		}
		if inShape[j] == 1 {
			coord = 0
		}
		inIdx += coord * inStrides[j]
	}
	return inIdx
}

func (m *MockBackend) toFloat64Slice(t *RawTensor) []float64 {
	switch t.DType() {
	case Float32:
		src := t.AsFloat32()
		out := make([]float64, len(src))
		for i, v := range src {
			out[i] = float64(v)
		}
		return out
	case Float64:
		return append([]float64(nil), t.AsFloat64()...)
	default:
		panic(fmt.Sprintf("mock backend: unsupported dtype %s", t.DType()))
	}
}

func (m *MockBackend) fromFloat64Slice(values []float64, t *RawTensor) {
	switch t.DType() {
	case Float32:
		dst := t.AsFloat32()
		for i, v := range values {
			dst[i] = float32(v)
		}
	case Float64:
		copy(t.AsFloat64(), values)
	default:
		panic(fmt.Sprintf("mock backend: unsupported dtype %s", t.DType()))
	}
}
