package cpu

import (
	"fmt"

	"github.com/seedling-ml/seedling/internal/tensor"
)

// Cat concatenates tensors along the specified dimension.
// Supports negative dim indexing (-1 = last dimension).
//
// All tensors must share a dtype and agree on every dimension except dim.
func (cpu *CPUBackend) Cat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	if len(tensors) == 0 {
		panic("cat: at least one tensor required")
	}

	shape := tensors[0].Shape()
	ndim := len(shape)
	dtype := tensors[0].DType()

	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("cat: dimension %d out of range for %dD tensor", dim, ndim))
	}

	totalDim := 0
	for i, t := range tensors {
		tShape := t.Shape()
		if len(tShape) != ndim {
			panic(fmt.Sprintf("cat: tensor %d has %d dimensions, expected %d", i, len(tShape), ndim))
		}
		if t.DType() != dtype {
			panic(fmt.Sprintf("cat: tensor %d has dtype %s, expected %s", i, t.DType(), dtype))
		}

		for d := 0; d < ndim; d++ {
			if d == dim {
				totalDim += tShape[d]
			} else if tShape[d] != shape[d] {
				panic(fmt.Sprintf("cat: tensor %d dimension %d is %d, expected %d", i, d, tShape[d], shape[d]))
			}
		}
	}

	outShape := shape.Clone()
	outShape[dim] = totalDim
	result := cpu.newResult("cat", outShape, dtype)

	// With row-major layout, everything from dim inward is one contiguous
	// block per outer index, so the concatenation is a series of copies.
	outer, _, inner := splitAt(shape, dim)
	blocks := make([]int, len(tensors))
	for i, t := range tensors {
		blocks[i] = t.Shape()[dim] * inner
	}

	switch dtype {
	case tensor.Float32:
		catBlocks(result.AsFloat32(), asSlices(tensors, (*tensor.RawTensor).AsFloat32), outer, blocks)
	case tensor.Float64:
		catBlocks(result.AsFloat64(), asSlices(tensors, (*tensor.RawTensor).AsFloat64), outer, blocks)
	case tensor.Int32:
		catBlocks(result.AsInt32(), asSlices(tensors, (*tensor.RawTensor).AsInt32), outer, blocks)
	case tensor.Int64:
		catBlocks(result.AsInt64(), asSlices(tensors, (*tensor.RawTensor).AsInt64), outer, blocks)
	case tensor.Uint8:
		catBlocks(result.AsUint8(), asSlices(tensors, (*tensor.RawTensor).AsUint8), outer, blocks)
	case tensor.Bool:
		catBlocks(result.AsBool(), asSlices(tensors, (*tensor.RawTensor).AsBool), outer, blocks)
	default:
		panic(fmt.Sprintf("cat: unsupported dtype %s", dtype))
	}

	return result
}

// asSlices extracts the typed data slice of every tensor.
func asSlices[T tensor.DType](tensors []*tensor.RawTensor, as func(*tensor.RawTensor) []T) [][]T {
	out := make([][]T, len(tensors))
	for i, t := range tensors {
		out[i] = as(t)
	}
	return out
}

// catBlocks interleaves the per-outer-index blocks of each source into dst.
func catBlocks[T tensor.DType](dst []T, srcs [][]T, outer int, blocks []int) {
	total := 0
	for _, b := range blocks {
		total += b
	}

	for o := 0; o < outer; o++ {
		at := o * total
		for s, src := range srcs {
			b := blocks[s]
			copy(dst[at:at+b], src[o*b:(o+1)*b])
			at += b
		}
	}
}
