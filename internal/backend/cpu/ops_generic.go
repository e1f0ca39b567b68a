package cpu

import (
	"github.com/seedling-ml/seedling/internal/parallel"
	"github.com/seedling-ml/seedling/internal/tensor"
)

// numeric covers the element types with arithmetic kernels. Bool tensors
// support only layout operations (transpose, cat, cast).
type numeric interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// Inplace kernels: a op= b.

func addInplaceKernel[T numeric](a, b []T, cfg parallel.Config) {
	parallel.ForChunks(len(a), func(start, end int) {
		for i := start; i < end; i++ {
			a[i] += b[i]
		}
	}, cfg)
}

func subInplaceKernel[T numeric](a, b []T, cfg parallel.Config) {
	parallel.ForChunks(len(a), func(start, end int) {
		for i := start; i < end; i++ {
			a[i] -= b[i]
		}
	}, cfg)
}

func mulInplaceKernel[T numeric](a, b []T, cfg parallel.Config) {
	parallel.ForChunks(len(a), func(start, end int) {
		for i := start; i < end; i++ {
			a[i] *= b[i]
		}
	}, cfg)
}

func divInplaceKernel[T numeric](a, b []T, cfg parallel.Config) {
	parallel.ForChunks(len(a), func(start, end int) {
		for i := start; i < end; i++ {
			a[i] /= b[i]
		}
	}, cfg)
}

// Vectorized kernels: dst = a op b, all slices the same length.

func addKernel[T numeric](dst, a, b []T, cfg parallel.Config) {
	parallel.ForChunks(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] + b[i]
		}
	}, cfg)
}

func subKernel[T numeric](dst, a, b []T, cfg parallel.Config) {
	parallel.ForChunks(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] - b[i]
		}
	}, cfg)
}

func mulKernel[T numeric](dst, a, b []T, cfg parallel.Config) {
	parallel.ForChunks(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] * b[i]
		}
	}, cfg)
}

func divKernel[T numeric](dst, a, b []T, cfg parallel.Config) {
	parallel.ForChunks(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = a[i] / b[i]
		}
	}, cfg)
}

// Broadcasting kernels: dst = a op b where a and b broadcast to outShape.

func addBroadcastKernel[T numeric](dst, a, b []T, aShape, bShape, outShape tensor.Shape, cfg parallel.Config) {
	outStrides := outShape.ComputeStrides()
	aStrides := computeBroadcastStridesForShape(aShape, outShape)
	bStrides := computeBroadcastStridesForShape(bShape, outShape)

	parallel.ForChunks(outShape.NumElements(), func(start, end int) {
		for i := start; i < end; i++ {
			aIdx := computeFlatIndex(i, outStrides, aStrides)
			bIdx := computeFlatIndex(i, outStrides, bStrides)
			dst[i] = a[aIdx] + b[bIdx]
		}
	}, cfg)
}

func subBroadcastKernel[T numeric](dst, a, b []T, aShape, bShape, outShape tensor.Shape, cfg parallel.Config) {
	outStrides := outShape.ComputeStrides()
	aStrides := computeBroadcastStridesForShape(aShape, outShape)
	bStrides := computeBroadcastStridesForShape(bShape, outShape)

	parallel.ForChunks(outShape.NumElements(), func(start, end int) {
		for i := start; i < end; i++ {
			aIdx := computeFlatIndex(i, outStrides, aStrides)
			bIdx := computeFlatIndex(i, outStrides, bStrides)
			dst[i] = a[aIdx] - b[bIdx]
		}
	}, cfg)
}

func mulBroadcastKernel[T numeric](dst, a, b []T, aShape, bShape, outShape tensor.Shape, cfg parallel.Config) {
	outStrides := outShape.ComputeStrides()
	aStrides := computeBroadcastStridesForShape(aShape, outShape)
	bStrides := computeBroadcastStridesForShape(bShape, outShape)

	parallel.ForChunks(outShape.NumElements(), func(start, end int) {
		for i := start; i < end; i++ {
			aIdx := computeFlatIndex(i, outStrides, aStrides)
			bIdx := computeFlatIndex(i, outStrides, bStrides)
			dst[i] = a[aIdx] * b[bIdx]
		}
	}, cfg)
}

func divBroadcastKernel[T numeric](dst, a, b []T, aShape, bShape, outShape tensor.Shape, cfg parallel.Config) {
	outStrides := outShape.ComputeStrides()
	aStrides := computeBroadcastStridesForShape(aShape, outShape)
	bStrides := computeBroadcastStridesForShape(bShape, outShape)

	parallel.ForChunks(outShape.NumElements(), func(start, end int) {
		for i := start; i < end; i++ {
			aIdx := computeFlatIndex(i, outStrides, aStrides)
			bIdx := computeFlatIndex(i, outStrides, bStrides)
			dst[i] = a[aIdx] / b[bIdx]
		}
	}, cfg)
}

// transposeKernel fills dst by decomposing each destination index into
// coordinates and mapping every coordinate back to its source axis.
func transposeKernel[T tensor.DType](dst, src []T, srcShape tensor.Shape, axes []int, cfg parallel.Config) {
	srcStrides := srcShape.ComputeStrides()

	dstShape := make(tensor.Shape, len(axes))
	for i, ax := range axes {
		dstShape[i] = srcShape[ax]
	}
	dstStrides := dstShape.ComputeStrides()

	parallel.ForChunks(len(dst), func(start, end int) {
		for i := start; i < end; i++ {
			srcIdx := 0
			rem := i
			for d := 0; d < len(dstStrides); d++ {
				coord := rem / dstStrides[d]
				rem %= dstStrides[d]
				srcIdx += coord * srcStrides[axes[d]]
			}
			dst[i] = src[srcIdx]
		}
	}, cfg)
}
