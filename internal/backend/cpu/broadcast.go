package cpu

import (
	"github.com/grid-ml/gridrnn/internal/tensor"
)

// broadcastStrides computes strides for broadcasting inShape to outShape.
// Dimensions of size 1 (including left-padded ones) get stride 0.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	offset := outDim - len(inShape)
	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		if inIdx < 0 || inShape[inIdx] == 1 {
			strides[i] = 0
		} else {
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// flatIndex maps a flat output index to a flat source index given
// broadcast-adjusted source strides.
func flatIndex(outIdx int, outStrides, inStrides []int) int {
	flat := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flat += coord * inStrides[i]
	}
	return flat
}

func binaryBroadcastFloat32(result, a, b *tensor.RawTensor, outShape tensor.Shape, f func(x, y float32) float32) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)

	ax, bx, out := a.AsFloat32(), b.AsFloat32(), result.AsFloat32()
	for i := range out {
		out[i] = f(ax[flatIndex(i, outStrides, aStrides)], bx[flatIndex(i, outStrides, bStrides)])
	}
}

func binaryBroadcastFloat64(result, a, b *tensor.RawTensor, outShape tensor.Shape, f func(x, y float64) float64) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)

	ax, bx, out := a.AsFloat64(), b.AsFloat64(), result.AsFloat64()
	for i := range out {
		out[i] = f(ax[flatIndex(i, outStrides, aStrides)], bx[flatIndex(i, outStrides, bStrides)])
	}
}
