// Copyright 2026 Seedling ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - gonum BLAS bindings for matrix multiplication
//   - Float32 and Float64 support
//   - Batch processing
//   - NumPy-compatible broadcasting
//
// # Basic Usage
//
//	import (
//	    "github.com/seedling-ml/seedling/backend/cpu"
//	    "github.com/seedling-ml/seedling/tensor"
//	    "github.com/seedling-ml/seedling/nn"
//	)
//
//	func main() {
//	    // Create CPU backend
//	    backend := cpu.New()
//
//	    // Use with tensors
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	    z := x.Add(y)
//
//	    // Use with neural networks
//	    layer := nn.NewLinear(784, 10, backend)
//	}
//
// # Performance
//
// The CPU backend is optimized for inference on CPUs:
//   - GEMM-backed matrix multiplication via gonum/blas
//   - Element-wise kernels split across worker goroutines
//   - In-place arithmetic when a buffer is uniquely referenced
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state.
package cpu
