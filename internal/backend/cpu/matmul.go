package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/seedling-ml/seedling/internal/tensor"
)

// MatMul performs matrix multiplication of two 2D tensors.
//
// Float tensors go through gonum's GEMM, integer tensors fall back to a
// naive triple loop.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape := a.Shape()
	bShape := b.Shape()

	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape)))
	}

	m, k := aShape[0], aShape[1]
	if bShape[0] != k {
		panic(fmt.Sprintf("matmul: incompatible shapes %v x %v", aShape, bShape))
	}
	n := bShape[1]

	result := cpu.newResult("matmul", tensor.Shape{m, n}, a.DType())

	switch a.DType() {
	case tensor.Float32:
		matmulFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, n, k)
	case tensor.Float64:
		matmulFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, n, k)
	case tensor.Int32:
		matmulNaive(result.AsInt32(), a.AsInt32(), b.AsInt32(), m, n, k)
	case tensor.Int64:
		matmulNaive(result.AsInt64(), a.AsInt64(), b.AsInt64(), m, n, k)
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}

	return result
}

// matmulFloat32 computes c = a @ b via single-precision GEMM.
func matmulFloat32(c, a, b []float32, m, n, k int) {
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
		blas32.General{Rows: m, Cols: k, Stride: k, Data: a},
		blas32.General{Rows: k, Cols: n, Stride: n, Data: b},
		0,
		blas32.General{Rows: m, Cols: n, Stride: n, Data: c})
}

// matmulFloat64 computes c = a @ b via double-precision GEMM.
func matmulFloat64(c, a, b []float64, m, n, k int) {
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
		blas64.General{Rows: m, Cols: k, Stride: k, Data: a},
		blas64.General{Rows: k, Cols: n, Stride: n, Data: b},
		0,
		blas64.General{Rows: m, Cols: n, Stride: n, Data: c})
}

// matmulNaive computes c = a @ b with a triple loop. GEMM has no integer
// variant, so int32/int64 tensors land here.
func matmulNaive[T ~int32 | ~int64](c, a, b []T, m, n, k int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum T
			for p := 0; p < k; p++ {
				sum += a[i*k+p] * b[p*n+j]
			}
			c[i*n+j] = sum
		}
	}
}
