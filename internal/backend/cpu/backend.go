// Package cpu implements the CPU backend with BLAS-accelerated matrix
// multiplication and parallel element-wise kernels.
package cpu

import (
	"fmt"

	"github.com/seedling-ml/seedling/internal/parallel"
	"github.com/seedling-ml/seedling/internal/tensor"
)

// CPUBackend implements tensor operations on CPU. Large element-wise
// operations are split across worker goroutines, and float matrix
// multiplication goes through gonum's BLAS bindings.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config
}

// New creates a CPU backend with parallelism enabled for large tensors.
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with a custom parallelism config.
// Useful for forcing sequential execution in tests and benchmarks.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// newResult allocates the output tensor for op, panicking on failure.
func (cpu *CPUBackend) newResult(op string, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	result, err := tensor.NewRaw(shape, dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}

// Add performs element-wise addition with NumPy-style broadcasting.
//
// When both operands share a shape and a holds the only reference to its
// buffer, the addition happens inplace and a itself is returned.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("add: %v", err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		if a.IsUnique() {
			addInplace(a, b, cpu.par)
			return a
		}
		result := cpu.newResult("add", outShape, a.DType())
		addVectorized(result, a, b, cpu.par)
		return result
	}

	result := cpu.newResult("add", outShape, a.DType())
	addWithBroadcast(result, a, b, outShape, cpu.par)
	return result
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("sub: %v", err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		if a.IsUnique() {
			subInplace(a, b, cpu.par)
			return a
		}
		result := cpu.newResult("sub", outShape, a.DType())
		subVectorized(result, a, b, cpu.par)
		return result
	}

	result := cpu.newResult("sub", outShape, a.DType())
	subWithBroadcast(result, a, b, outShape, cpu.par)
	return result
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("mul: %v", err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		if a.IsUnique() {
			mulInplace(a, b, cpu.par)
			return a
		}
		result := cpu.newResult("mul", outShape, a.DType())
		mulVectorized(result, a, b, cpu.par)
		return result
	}

	result := cpu.newResult("mul", outShape, a.DType())
	mulWithBroadcast(result, a, b, outShape, cpu.par)
	return result
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("div: %v", err))
	}

	if !needsBroadcast && a.Shape().Equal(b.Shape()) {
		if a.IsUnique() {
			divInplace(a, b, cpu.par)
			return a
		}
		result := cpu.newResult("div", outShape, a.DType())
		divVectorized(result, a, b, cpu.par)
		return result
	}

	result := cpu.newResult("div", outShape, a.DType())
	divWithBroadcast(result, a, b, outShape, cpu.par)
	return result
}

// Reshape returns a tensor with the same data and a new shape.
//
// The result is a zero-copy view sharing the input's buffer. The shared
// reference count keeps later inplace operations from mutating either
// tensor behind the other's back.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	result, err := t.View(newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return result
}

// Transpose transposes the tensor by permuting its dimensions.
// With no axes given, all dimensions are reversed.
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := t.Shape()
	ndim := len(shape)

	// Default: reverse all dimensions
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}

	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("transpose: invalid axis %d for %dD tensor", ax, ndim))
		}
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
	}

	newShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		newShape[i] = shape[ax]
	}

	result := cpu.newResult("transpose", newShape, t.DType())
	transposeData(result, t, axes, cpu.par)

	return result
}
