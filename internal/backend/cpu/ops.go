package cpu

import (
	"github.com/seedling-ml/seedling/internal/parallel"
	"github.com/seedling-ml/seedling/internal/tensor"
)

// Dtype dispatch for the element-wise kernels in ops_generic.go.

// addInplace performs inplace addition (a += b).
// Requires: a.Shape().Equal(b.Shape()) && a.IsUnique().
func addInplace(a, b *tensor.RawTensor, cfg parallel.Config) {
	switch a.DType() {
	case tensor.Float32:
		addInplaceKernel(a.AsFloat32(), b.AsFloat32(), cfg)
	case tensor.Float64:
		addInplaceKernel(a.AsFloat64(), b.AsFloat64(), cfg)
	case tensor.Int32:
		addInplaceKernel(a.AsInt32(), b.AsInt32(), cfg)
	case tensor.Int64:
		addInplaceKernel(a.AsInt64(), b.AsInt64(), cfg)
	default:
		panic("addInplace: unsupported dtype")
	}
}

// addVectorized performs vectorized addition: result = a + b.
// Requires: a.Shape().Equal(b.Shape()).
func addVectorized(result, a, b *tensor.RawTensor, cfg parallel.Config) {
	switch a.DType() {
	case tensor.Float32:
		addKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), cfg)
	case tensor.Float64:
		addKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), cfg)
	case tensor.Int32:
		addKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), cfg)
	case tensor.Int64:
		addKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), cfg)
	default:
		panic("addVectorized: unsupported dtype")
	}
}

// addWithBroadcast performs addition with broadcasting.
func addWithBroadcast(result, a, b *tensor.RawTensor, outShape tensor.Shape, cfg parallel.Config) {
	switch a.DType() {
	case tensor.Float32:
		addBroadcastKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, cfg)
	case tensor.Float64:
		addBroadcastKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, cfg)
	case tensor.Int32:
		addBroadcastKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, cfg)
	case tensor.Int64:
		addBroadcastKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, cfg)
	default:
		panic("addWithBroadcast: unsupported dtype")
	}
}

// Similar dispatchers for sub, mul, div.

func subInplace(a, b *tensor.RawTensor, cfg parallel.Config) {
	switch a.DType() {
	case tensor.Float32:
		subInplaceKernel(a.AsFloat32(), b.AsFloat32(), cfg)
	case tensor.Float64:
		subInplaceKernel(a.AsFloat64(), b.AsFloat64(), cfg)
	case tensor.Int32:
		subInplaceKernel(a.AsInt32(), b.AsInt32(), cfg)
	case tensor.Int64:
		subInplaceKernel(a.AsInt64(), b.AsInt64(), cfg)
	default:
		panic("subInplace: unsupported dtype")
	}
}

func subVectorized(result, a, b *tensor.RawTensor, cfg parallel.Config) {
	switch a.DType() {
	case tensor.Float32:
		subKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), cfg)
	case tensor.Float64:
		subKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), cfg)
	case tensor.Int32:
		subKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), cfg)
	case tensor.Int64:
		subKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), cfg)
	default:
		panic("subVectorized: unsupported dtype")
	}
}

func subWithBroadcast(result, a, b *tensor.RawTensor, outShape tensor.Shape, cfg parallel.Config) {
	switch a.DType() {
	case tensor.Float32:
		subBroadcastKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, cfg)
	case tensor.Float64:
		subBroadcastKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, cfg)
	case tensor.Int32:
		subBroadcastKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, cfg)
	case tensor.Int64:
		subBroadcastKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, cfg)
	default:
		panic("subWithBroadcast: unsupported dtype")
	}
}

func mulInplace(a, b *tensor.RawTensor, cfg parallel.Config) {
	switch a.DType() {
	case tensor.Float32:
		mulInplaceKernel(a.AsFloat32(), b.AsFloat32(), cfg)
	case tensor.Float64:
		mulInplaceKernel(a.AsFloat64(), b.AsFloat64(), cfg)
	case tensor.Int32:
		mulInplaceKernel(a.AsInt32(), b.AsInt32(), cfg)
	case tensor.Int64:
		mulInplaceKernel(a.AsInt64(), b.AsInt64(), cfg)
	default:
		panic("mulInplace: unsupported dtype")
	}
}

func mulVectorized(result, a, b *tensor.RawTensor, cfg parallel.Config) {
	switch a.DType() {
	case tensor.Float32:
		mulKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), cfg)
	case tensor.Float64:
		mulKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), cfg)
	case tensor.Int32:
		mulKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), cfg)
	case tensor.Int64:
		mulKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), cfg)
	default:
		panic("mulVectorized: unsupported dtype")
	}
}

func mulWithBroadcast(result, a, b *tensor.RawTensor, outShape tensor.Shape, cfg parallel.Config) {
	switch a.DType() {
	case tensor.Float32:
		mulBroadcastKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, cfg)
	case tensor.Float64:
		mulBroadcastKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, cfg)
	case tensor.Int32:
		mulBroadcastKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, cfg)
	case tensor.Int64:
		mulBroadcastKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, cfg)
	default:
		panic("mulWithBroadcast: unsupported dtype")
	}
}

func divInplace(a, b *tensor.RawTensor, cfg parallel.Config) {
	switch a.DType() {
	case tensor.Float32:
		divInplaceKernel(a.AsFloat32(), b.AsFloat32(), cfg)
	case tensor.Float64:
		divInplaceKernel(a.AsFloat64(), b.AsFloat64(), cfg)
	case tensor.Int32:
		divInplaceKernel(a.AsInt32(), b.AsInt32(), cfg)
	case tensor.Int64:
		divInplaceKernel(a.AsInt64(), b.AsInt64(), cfg)
	default:
		panic("divInplace: unsupported dtype")
	}
}

func divVectorized(result, a, b *tensor.RawTensor, cfg parallel.Config) {
	switch a.DType() {
	case tensor.Float32:
		divKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), cfg)
	case tensor.Float64:
		divKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), cfg)
	case tensor.Int32:
		divKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), cfg)
	case tensor.Int64:
		divKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), cfg)
	default:
		panic("divVectorized: unsupported dtype")
	}
}

func divWithBroadcast(result, a, b *tensor.RawTensor, outShape tensor.Shape, cfg parallel.Config) {
	switch a.DType() {
	case tensor.Float32:
		divBroadcastKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, cfg)
	case tensor.Float64:
		divBroadcastKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, cfg)
	case tensor.Int32:
		divBroadcastKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, cfg)
	case tensor.Int64:
		divBroadcastKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, cfg)
	default:
		panic("divWithBroadcast: unsupported dtype")
	}
}

// transposeData permutes tensor data according to axes.
// Requires: result already carries the permuted shape.
func transposeData(result, t *tensor.RawTensor, axes []int, cfg parallel.Config) {
	switch t.DType() {
	case tensor.Float32:
		transposeKernel(result.AsFloat32(), t.AsFloat32(), t.Shape(), axes, cfg)
	case tensor.Float64:
		transposeKernel(result.AsFloat64(), t.AsFloat64(), t.Shape(), axes, cfg)
	case tensor.Int32:
		transposeKernel(result.AsInt32(), t.AsInt32(), t.Shape(), axes, cfg)
	case tensor.Int64:
		transposeKernel(result.AsInt64(), t.AsInt64(), t.Shape(), axes, cfg)
	case tensor.Uint8:
		transposeKernel(result.AsUint8(), t.AsUint8(), t.Shape(), axes, cfg)
	case tensor.Bool:
		transposeKernel(result.AsBool(), t.AsBool(), t.Shape(), axes, cfg)
	default:
		panic("transposeData: unsupported dtype")
	}
}
