package cpu

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"github.com/seedling-ml/seedling/internal/parallel"
	"github.com/seedling-ml/seedling/internal/tensor"
)

// Exp computes the element-wise natural exponential.
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newResult("exp", x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		parallel.ForChunks(len(src), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = math32.Exp(src[i])
			}
		}, cpu.par)
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		parallel.ForChunks(len(src), func(start, end int) {
			for i := start; i < end; i++ {
				dst[i] = math.Exp(src[i])
			}
		}, cpu.par)
	default:
		panic(fmt.Sprintf("exp: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// Log computes the element-wise natural logarithm.
// Panics on non-positive values.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newResult("log", x.Shape(), x.DType())

	// Domain violations panic, so these loops stay on the caller's goroutine.
	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i, v := range src {
			if v <= 0 {
				panic(fmt.Sprintf("log: non-positive value %v at index %d", v, i))
			}
			dst[i] = math32.Log(v)
		}
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		for i, v := range src {
			if v <= 0 {
				panic(fmt.Sprintf("log: non-positive value %v at index %d", v, i))
			}
			dst[i] = math.Log(v)
		}
	default:
		panic(fmt.Sprintf("log: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// Sqrt computes the element-wise square root.
// Panics on negative values.
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.newResult("sqrt", x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		src := x.AsFloat32()
		dst := result.AsFloat32()
		for i, v := range src {
			if v < 0 {
				panic(fmt.Sprintf("sqrt: negative value %v at index %d", v, i))
			}
			dst[i] = math32.Sqrt(v)
		}
	case tensor.Float64:
		src := x.AsFloat64()
		dst := result.AsFloat64()
		for i, v := range src {
			if v < 0 {
				panic(fmt.Sprintf("sqrt: negative value %v at index %d", v, i))
			}
			dst[i] = math.Sqrt(v)
		}
	default:
		panic(fmt.Sprintf("sqrt: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}
