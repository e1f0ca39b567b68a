// Package interop converts between the native tensor representation and
// the gonum and gorgonia tensor stacks. Every conversion copies: values
// crossing a library boundary never share memory with the source.
package interop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/seedling-ml/seedling/internal/tensor"
)

// ToMatDense converts a 2-D float32 or float64 tensor into a gonum
// *mat.Dense. Float32 values widen to float64 losslessly.
func ToMatDense(r *tensor.RawTensor) (*mat.Dense, error) {
	shape := r.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("interop: mat.Dense needs a 2-D tensor, got %d-D", len(shape))
	}
	data, err := toFloat64s(r)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(shape[0], shape[1], data), nil
}

// FromMatDense converts a gonum matrix into a 2-D float64 tensor.
func FromMatDense(m *mat.Dense) (*tensor.RawTensor, error) {
	rows, cols := m.Dims()
	raw, err := tensor.NewRaw(tensor.Shape{rows, cols}, tensor.Float64, tensor.CPU)
	if err != nil {
		return nil, fmt.Errorf("interop: %w", err)
	}

	// Row-wise copy handles submatrix views, whose stride exceeds cols.
	dst := raw.AsFloat64()
	rm := m.RawMatrix()
	for i := 0; i < rows; i++ {
		copy(dst[i*cols:(i+1)*cols], rm.Data[i*rm.Stride:i*rm.Stride+cols])
	}
	return raw, nil
}

// ToVecDense converts a 1-D float32 or float64 tensor into a gonum
// *mat.VecDense.
func ToVecDense(r *tensor.RawTensor) (*mat.VecDense, error) {
	shape := r.Shape()
	if len(shape) != 1 {
		return nil, fmt.Errorf("interop: mat.VecDense needs a 1-D tensor, got %d-D", len(shape))
	}
	data, err := toFloat64s(r)
	if err != nil {
		return nil, err
	}
	return mat.NewVecDense(shape[0], data), nil
}

// FromVecDense converts a gonum vector into a 1-D float64 tensor.
func FromVecDense(v *mat.VecDense) (*tensor.RawTensor, error) {
	n := v.Len()
	raw, err := tensor.NewRaw(tensor.Shape{n}, tensor.Float64, tensor.CPU)
	if err != nil {
		return nil, fmt.Errorf("interop: %w", err)
	}
	dst := raw.AsFloat64()
	for i := 0; i < n; i++ {
		dst[i] = v.AtVec(i)
	}
	return raw, nil
}

// toFloat64s flattens a float tensor into a fresh float64 slice.
func toFloat64s(r *tensor.RawTensor) ([]float64, error) {
	switch r.DType() {
	case tensor.Float32:
		src := r.AsFloat32()
		data := make([]float64, len(src))
		for i, v := range src {
			data[i] = float64(v)
		}
		return data, nil
	case tensor.Float64:
		data := make([]float64, r.NumElements())
		copy(data, r.AsFloat64())
		return data, nil
	default:
		return nil, fmt.Errorf("interop: cannot convert %s tensor to float64 values", r.DType())
	}
}
