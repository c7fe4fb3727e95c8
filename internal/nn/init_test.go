package nn

import (
	"math"
	"testing"

	"github.com/grid-ml/gridrnn/internal/backend/cpu"
	"github.com/grid-ml/gridrnn/internal/tensor"
)

func TestXavierBounds(t *testing.T) {
	backend := cpu.New()
	fanIn, fanOut := 64, 32
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	w := Xavier(fanIn, fanOut, tensor.Shape{fanIn, fanOut}, backend)

	nonZero := 0
	for _, v := range w.Data() {
		if math.Abs(float64(v)) > bound {
			t.Fatalf("Xavier value %v exceeds bound %v", v, bound)
		}
		if v != 0 {
			nonZero++
		}
	}
	if nonZero < len(w.Data())/2 {
		t.Errorf("Xavier should produce mostly non-zero values, got %d of %d", nonZero, len(w.Data()))
	}
}

func TestZerosAndOnesInit(t *testing.T) {
	backend := cpu.New()

	z := Zeros(tensor.Shape{3}, backend)
	for i, v := range z.Data() {
		if v != 0 {
			t.Errorf("Zeros element %d = %v", i, v)
		}
	}

	o := Ones(tensor.Shape{3}, backend)
	for i, v := range o.Data() {
		if v != 1 {
			t.Errorf("Ones element %d = %v", i, v)
		}
	}
}

func TestIdentityInit(t *testing.T) {
	backend := cpu.New()

	eye := Identity(3, backend)
	if !eye.Shape().Equal(tensor.Shape{3, 3}) {
		t.Fatalf("Identity shape = %v, want [3 3]", eye.Shape())
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			if got := eye.At(i, j); got != want {
				t.Errorf("Identity[%d,%d] = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestParameter(t *testing.T) {
	backend := cpu.New()
	w := Identity(2, backend)

	p := NewParameter("kernel", w)
	if p.Name() != "kernel" {
		t.Errorf("Name() = %q, want %q", p.Name(), "kernel")
	}
	if p.Tensor() != w {
		t.Error("Tensor() should return the wrapped tensor")
	}
}
