package cpu

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"github.com/seedling-ml/seedling/internal/parallel"
	"github.com/seedling-ml/seedling/internal/tensor"
)

// Softmax computes the softmax along the given dimension.
// Supports negative dim indexing (-1 = last dimension).
//
// Each slice along dim is shifted by its max before exponentiation, so
// large logits do not overflow.
func (cpu *CPUBackend) Softmax(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("softmax: dimension %d out of range for %dD tensor", dim, ndim))
	}

	result := cpu.newResult("softmax", shape, x.DType())

	switch x.DType() {
	case tensor.Float32:
		softmaxFloat32(result.AsFloat32(), x.AsFloat32(), shape, dim, cpu.par)
	case tensor.Float64:
		softmaxFloat64(result.AsFloat64(), x.AsFloat64(), shape, dim, cpu.par)
	default:
		panic(fmt.Sprintf("softmax: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// softmaxFloat32 normalizes each slice along dim independently. Rows are
// independent, so they are distributed across workers.
func softmaxFloat32(dst, src []float32, shape tensor.Shape, dim int, cfg parallel.Config) {
	dimSize := shape[dim]
	inner := 1
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}
	rows := len(src) / dimSize

	parallel.For(rows, func(r int) {
		base := (r/inner)*dimSize*inner + r%inner

		maxVal := src[base]
		for i := 1; i < dimSize; i++ {
			if v := src[base+i*inner]; v > maxVal {
				maxVal = v
			}
		}

		var sum float32
		for i := 0; i < dimSize; i++ {
			e := math32.Exp(src[base+i*inner] - maxVal)
			dst[base+i*inner] = e
			sum += e
		}

		for i := 0; i < dimSize; i++ {
			dst[base+i*inner] /= sum
		}
	}, cfg)
}

func softmaxFloat64(dst, src []float64, shape tensor.Shape, dim int, cfg parallel.Config) {
	dimSize := shape[dim]
	inner := 1
	for i := dim + 1; i < len(shape); i++ {
		inner *= shape[i]
	}
	rows := len(src) / dimSize

	parallel.For(rows, func(r int) {
		base := (r/inner)*dimSize*inner + r%inner

		maxVal := src[base]
		for i := 1; i < dimSize; i++ {
			if v := src[base+i*inner]; v > maxVal {
				maxVal = v
			}
		}

		var sum float64
		for i := 0; i < dimSize; i++ {
			e := math.Exp(src[base+i*inner] - maxVal)
			dst[base+i*inner] = e
			sum += e
		}

		for i := 0; i < dimSize; i++ {
			dst[base+i*inner] /= sum
		}
	}, cfg)
}

// ReLU applies the rectified linear unit: max(0, x).
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newResult("relu", x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		parallel.ForChunks(len(src), func(start, end int) {
			for i := start; i < end; i++ {
				if v := src[i]; v > 0 {
					dst[i] = v
				} else {
					dst[i] = 0
				}
			}
		}, cpu.par)
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		parallel.ForChunks(len(src), func(start, end int) {
			for i := start; i < end; i++ {
				if v := src[i]; v > 0 {
					dst[i] = v
				} else {
					dst[i] = 0
				}
			}
		}, cpu.par)
	default:
		panic(fmt.Sprintf("relu: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// Sigmoid applies the logistic function: 1 / (1 + exp(-x)).
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newResult("sigmoid", x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		parallel.ForChunks(len(src), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = 1 / (1 + math32.Exp(-src[i]))
			}
		}, cpu.par)
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		parallel.ForChunks(len(src), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = 1 / (1 + math.Exp(-src[i]))
			}
		}, cpu.par)
	default:
		panic(fmt.Sprintf("sigmoid: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// Tanh applies the hyperbolic tangent.
func (cpu *CPUBackend) Tanh(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newResult("tanh", x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		parallel.ForChunks(len(src), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = math32.Tanh(src[i])
			}
		}, cpu.par)
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		parallel.ForChunks(len(src), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = math.Tanh(src[i])
			}
		}, cpu.par)
	default:
		panic(fmt.Sprintf("tanh: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}
