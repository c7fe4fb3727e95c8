package mdrnn

import (
	"github.com/grid-ml/gridrnn/internal/tensor"
)

// assembleOutputs slices the populated state grid into the requested
// results: the full sequence keeps the state grid's (batch, spatial...,
// units) layout in grid coordinate order, and the final state is the
// (batch, units) vector stored at the terminal coordinate.
func assembleOutputs[B tensor.Backend](
	stateRaw *tensor.RawTensor,
	indexer *gridIndexer,
	batch, units int,
	returnSequences, returnState bool,
	backend B,
) (sequence, finalState *tensor.Tensor[float32, B]) {
	if returnSequences {
		sequence = tensor.New[float32, B](stateRaw, backend)
	}
	if returnState {
		finalState = gatherVectors(stateRaw.AsFloat32(), stateRaw.Strides(),
			indexer.Terminal(), batch, units, backend)
	}
	return sequence, finalState
}

// spatialOffset computes the flat offset contributed by a spatial
// coordinate; strides[0] is the batch stride and strides[1:] cover the
// spatial axes, with the feature axis contiguous at stride 1.
func spatialOffset(coord, strides []int) int {
	off := 0
	for k, c := range coord {
		off += c * strides[k+1]
	}
	return off
}

// gatherVectors copies the width-w vector stored at coord for every batch
// element into a fresh (batch, w) tensor.
func gatherVectors[B tensor.Backend](
	src []float32,
	strides []int,
	coord []int,
	batch, w int,
	backend B,
) *tensor.Tensor[float32, B] {
	out := tensor.Zeros[float32](tensor.Shape{batch, w}, backend)
	data := out.Data()
	base := spatialOffset(coord, strides)
	for b := 0; b < batch; b++ {
		start := b*strides[0] + base
		copy(data[b*w:(b+1)*w], src[start:start+w])
	}
	return out
}

// scatterVectors writes a (batch, w) tensor's rows into the grid buffer
// at coord, the inverse of gatherVectors.
func scatterVectors(dst []float32, strides, coord []int, batch, w int, src []float32) {
	base := spatialOffset(coord, strides)
	for b := 0; b < batch; b++ {
		start := b*strides[0] + base
		copy(dst[start:start+w], src[b*w:(b+1)*w])
	}
}
