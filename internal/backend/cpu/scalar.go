package cpu

import (
	"fmt"

	"github.com/seedling-ml/seedling/internal/parallel"
	"github.com/seedling-ml/seedling/internal/tensor"
)

// Element-wise operations with a scalar value. The scalar must match the
// tensor's element type.

// MulScalar multiplies each element of the tensor by a scalar value.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newResult("mulScalar", x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		mulScalarKernel(result.AsFloat32(), x.AsFloat32(), scalar.(float32), cpu.par)
	case tensor.Float64:
		mulScalarKernel(result.AsFloat64(), x.AsFloat64(), scalar.(float64), cpu.par)
	case tensor.Int32:
		mulScalarKernel(result.AsInt32(), x.AsInt32(), scalar.(int32), cpu.par)
	case tensor.Int64:
		mulScalarKernel(result.AsInt64(), x.AsInt64(), scalar.(int64), cpu.par)
	default:
		panic(fmt.Sprintf("mulScalar: unsupported dtype %v", x.DType()))
	}

	return result
}

// AddScalar adds a scalar value to each element of the tensor.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newResult("addScalar", x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		addScalarKernel(result.AsFloat32(), x.AsFloat32(), scalar.(float32), cpu.par)
	case tensor.Float64:
		addScalarKernel(result.AsFloat64(), x.AsFloat64(), scalar.(float64), cpu.par)
	case tensor.Int32:
		addScalarKernel(result.AsInt32(), x.AsInt32(), scalar.(int32), cpu.par)
	case tensor.Int64:
		addScalarKernel(result.AsInt64(), x.AsInt64(), scalar.(int64), cpu.par)
	default:
		panic(fmt.Sprintf("addScalar: unsupported dtype %v", x.DType()))
	}

	return result
}

// SubScalar subtracts a scalar value from each element of the tensor.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newResult("subScalar", x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		subScalarKernel(result.AsFloat32(), x.AsFloat32(), scalar.(float32), cpu.par)
	case tensor.Float64:
		subScalarKernel(result.AsFloat64(), x.AsFloat64(), scalar.(float64), cpu.par)
	case tensor.Int32:
		subScalarKernel(result.AsInt32(), x.AsInt32(), scalar.(int32), cpu.par)
	case tensor.Int64:
		subScalarKernel(result.AsInt64(), x.AsInt64(), scalar.(int64), cpu.par)
	default:
		panic(fmt.Sprintf("subScalar: unsupported dtype %v", x.DType()))
	}

	return result
}

// DivScalar divides each element of the tensor by a scalar value.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := cpu.newResult("divScalar", x.Shape(), x.DType())

	switch x.DType() {
	case tensor.Float32:
		divScalarKernel(result.AsFloat32(), x.AsFloat32(), scalar.(float32), cpu.par)
	case tensor.Float64:
		divScalarKernel(result.AsFloat64(), x.AsFloat64(), scalar.(float64), cpu.par)
	case tensor.Int32:
		divScalarKernel(result.AsInt32(), x.AsInt32(), scalar.(int32), cpu.par)
	case tensor.Int64:
		divScalarKernel(result.AsInt64(), x.AsInt64(), scalar.(int64), cpu.par)
	default:
		panic(fmt.Sprintf("divScalar: unsupported dtype %v", x.DType()))
	}

	return result
}

func mulScalarKernel[T numeric](dst, src []T, s T, cfg parallel.Config) {
	parallel.ForChunks(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = src[i] * s
		}
	}, cfg)
}

func addScalarKernel[T numeric](dst, src []T, s T, cfg parallel.Config) {
	parallel.ForChunks(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = src[i] + s
		}
	}, cfg)
}

func subScalarKernel[T numeric](dst, src []T, s T, cfg parallel.Config) {
	parallel.ForChunks(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = src[i] - s
		}
	}, cfg)
}

func divScalarKernel[T numeric](dst, src []T, s T, cfg parallel.Config) {
	parallel.ForChunks(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = src[i] / s
		}
	}, cfg)
}
