// Copyright 2026 Seedling ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package interop

import (
	"gonum.org/v1/gonum/mat"
	gtensor "gorgonia.org/tensor"

	"github.com/seedling-ml/seedling/internal/interop"
	"github.com/seedling-ml/seedling/tensor"
)

// gonum conversions

// ToMatDense converts a 2-D float32 or float64 tensor into a gonum
// *mat.Dense. Float32 values widen to float64 losslessly.
//
// Example:
//
//	m, err := interop.ToMatDense(t.Raw())
//	var svd mat.SVD
//	svd.Factorize(m, mat.SVDThin)
func ToMatDense(r *tensor.RawTensor) (*mat.Dense, error) {
	return interop.ToMatDense(r)
}

// FromMatDense converts a gonum matrix into a 2-D float64 tensor.
func FromMatDense(m *mat.Dense) (*tensor.RawTensor, error) {
	return interop.FromMatDense(m)
}

// ToVecDense converts a 1-D float32 or float64 tensor into a gonum
// *mat.VecDense.
func ToVecDense(r *tensor.RawTensor) (*mat.VecDense, error) {
	return interop.ToVecDense(r)
}

// FromVecDense converts a gonum vector into a 1-D float64 tensor.
func FromVecDense(v *mat.VecDense) (*tensor.RawTensor, error) {
	return interop.FromVecDense(v)
}

// gorgonia conversions

// ToGorgonia converts a float32 or float64 tensor into a gorgonia
// *tensor.Dense of the same shape and element type.
func ToGorgonia(r *tensor.RawTensor) (*gtensor.Dense, error) {
	return interop.ToGorgonia(r)
}

// FromGorgonia converts a gorgonia dense tensor back into the native
// representation, keeping its shape and element type. Views must be
// materialized by the caller first.
func FromGorgonia(d *gtensor.Dense) (*tensor.RawTensor, error) {
	return interop.FromGorgonia(d)
}

// MatToGorgonia converts a gonum matrix straight into a 2-D float64
// gorgonia tensor.
func MatToGorgonia(m *mat.Dense) (*gtensor.Dense, error) {
	return interop.MatToGorgonia(m)
}

// GorgoniaToMat converts a 2-D float32 or float64 gorgonia tensor into
// a gonum matrix.
func GorgoniaToMat(d *gtensor.Dense) (*mat.Dense, error) {
	return interop.GorgoniaToMat(d)
}
