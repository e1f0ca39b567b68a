package cpu

import (
	"fmt"

	"github.com/seedling-ml/seedling/internal/tensor"
)

// Sum computes the total sum of all elements (scalar result).
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newResult("sum", tensor.Shape{}, x.DType())

	switch x.DType() {
	case tensor.Float32:
		result.AsFloat32()[0] = sumKernel(x.AsFloat32())
	case tensor.Float64:
		result.AsFloat64()[0] = sumKernel(x.AsFloat64())
	case tensor.Int32:
		result.AsInt32()[0] = sumKernel(x.AsInt32())
	case tensor.Int64:
		result.AsInt64()[0] = sumKernel(x.AsInt64())
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}

	return result
}

// SumDim sums tensor elements along the specified dimension.
// Supports negative dim indexing (-1 = last dimension).
//
// Example:
//
//	x := tensor.Randn[float32](tensor.Shape{2, 3, 4}, backend)
//	y := x.SumDim(-1, true)   // shape: [2, 3, 1]
//	z := x.SumDim(-1, false)  // shape: [2, 3]
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("sumdim: dimension %d out of range for %dD tensor", dim, ndim))
	}

	outer, dimSize, inner := splitAt(shape, dim)
	result := cpu.newResult("sumdim", reducedShape(shape, dim, keepDim), x.DType())

	switch x.DType() {
	case tensor.Float32:
		sumDimKernel(result.AsFloat32(), x.AsFloat32(), outer, dimSize, inner)
	case tensor.Float64:
		sumDimKernel(result.AsFloat64(), x.AsFloat64(), outer, dimSize, inner)
	case tensor.Int32:
		sumDimKernel(result.AsInt32(), x.AsInt32(), outer, dimSize, inner)
	case tensor.Int64:
		sumDimKernel(result.AsInt64(), x.AsInt64(), outer, dimSize, inner)
	default:
		panic(fmt.Sprintf("sumdim: unsupported dtype %s", x.DType()))
	}

	return result
}

// MeanDim computes the mean of tensor elements along the specified dimension.
// Supports negative dim indexing (-1 = last dimension).
func (cpu *CPUBackend) MeanDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	sum := cpu.SumDim(x, dim, keepDim)

	shape := x.Shape()
	if dim < 0 {
		dim = len(shape) + dim
	}
	n := shape[dim]

	switch sum.DType() {
	case tensor.Float32:
		data := sum.AsFloat32()
		divisor := float32(n)
		for i := range data {
			data[i] /= divisor
		}
	case tensor.Float64:
		data := sum.AsFloat64()
		divisor := float64(n)
		for i := range data {
			data[i] /= divisor
		}
	default:
		panic(fmt.Sprintf("meandim: unsupported dtype %s (only float32/float64 supported)", sum.DType()))
	}

	return sum
}

// Argmax returns the index of the maximum value along the specified
// dimension. The result is an int32 tensor and the reduced dimension is
// always removed. Ties resolve to the lowest index.
func (cpu *CPUBackend) Argmax(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("argmax: dimension %d out of range for %dD tensor", dim, ndim))
	}

	outer, dimSize, inner := splitAt(shape, dim)
	result := cpu.newResult("argmax", reducedShape(shape, dim, false), tensor.Int32)

	switch x.DType() {
	case tensor.Float32:
		argmaxKernel(result.AsInt32(), x.AsFloat32(), outer, dimSize, inner)
	case tensor.Float64:
		argmaxKernel(result.AsInt32(), x.AsFloat64(), outer, dimSize, inner)
	case tensor.Int32:
		argmaxKernel(result.AsInt32(), x.AsInt32(), outer, dimSize, inner)
	case tensor.Int64:
		argmaxKernel(result.AsInt32(), x.AsInt64(), outer, dimSize, inner)
	default:
		panic(fmt.Sprintf("argmax: unsupported dtype %s", x.DType()))
	}

	return result
}

// splitAt factors shape into the product of dimensions before dim, the size
// of dim itself, and the product of dimensions after it. Row-major layout
// means element (o, d, in) of the factored view lives at o*dimSize*inner +
// d*inner + in.
func splitAt(shape tensor.Shape, dim int) (outer, dimSize, inner int) {
	outer, inner = 1, 1
	for i := 0; i < dim; i++ {
		outer *= shape[i]
	}
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}
	return outer, shape[dim], inner
}

// reducedShape drops dim or pins it to 1 depending on keepDim.
func reducedShape(shape tensor.Shape, dim int, keepDim bool) tensor.Shape {
	if keepDim {
		out := shape.Clone()
		out[dim] = 1
		return out
	}
	out := make(tensor.Shape, 0, len(shape)-1)
	for i, d := range shape {
		if i != dim {
			out = append(out, d)
		}
	}
	return out
}

func sumKernel[T numeric](data []T) T {
	var sum T
	for _, v := range data {
		sum += v
	}
	return sum
}

func sumDimKernel[T numeric](dst, src []T, outer, dimSize, inner int) {
	for o := 0; o < outer; o++ {
		srcBase := o * dimSize * inner
		dstBase := o * inner
		for in := 0; in < inner; in++ {
			var sum T
			for d := 0; d < dimSize; d++ {
				sum += src[srcBase+d*inner+in]
			}
			dst[dstBase+in] = sum
		}
	}
}

func argmaxKernel[T numeric](dst []int32, src []T, outer, dimSize, inner int) {
	for o := 0; o < outer; o++ {
		srcBase := o * dimSize * inner
		dstBase := o * inner
		for in := 0; in < inner; in++ {
			maxVal := src[srcBase+in]
			maxIdx := int32(0)
			for d := 1; d < dimSize; d++ {
				if v := src[srcBase+d*inner+in]; v > maxVal {
					maxVal = v
					//nolint:gosec // G115: dimension sizes fit in int32
					maxIdx = int32(d)
				}
			}
			dst[dstBase+in] = maxIdx
		}
	}
}
