// Copyright 2026 Seedling ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package interop converts between native tensors and the gonum and
// gorgonia tensor stacks.
//
// # Overview
//
// Conversions cover:
//   - gonum: *mat.Dense (2-D) and *mat.VecDense (1-D)
//   - gorgonia: *tensor.Dense (any rank, float32 or float64)
//   - direct gonum <-> gorgonia bridging
//
// Every conversion copies. Values crossing a library boundary never
// share memory with the source, so callers can mutate either side
// freely afterwards.
//
// # Basic Usage
//
//	import (
//	    "github.com/seedling-ml/seedling/interop"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	// Analyze a weight matrix with gonum
//	m, err := interop.ToMatDense(weights.Raw())
//	var svd mat.SVD
//	svd.Factorize(m, mat.SVDThin)
//
//	// Round-trip through gorgonia
//	g, err := interop.ToGorgonia(t.Raw())
//	back, err := interop.FromGorgonia(g)
//
// Float32 tensors widen to float64 when entering gonum, which only
// works in float64. The gorgonia conversions keep the element type.
package interop
