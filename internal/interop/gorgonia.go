package interop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	gtensor "gorgonia.org/tensor"

	"github.com/seedling-ml/seedling/internal/tensor"
)

// ToGorgonia converts a float32 or float64 tensor into a gorgonia
// *tensor.Dense of the same shape and element type.
func ToGorgonia(r *tensor.RawTensor) (*gtensor.Dense, error) {
	shape := r.Shape()
	if len(shape) == 0 {
		return nil, fmt.Errorf("interop: scalar tensors are not supported by the gorgonia conversion")
	}

	switch r.DType() {
	case tensor.Float32:
		backing := make([]float32, r.NumElements())
		copy(backing, r.AsFloat32())
		return gtensor.New(gtensor.WithShape(shape...), gtensor.WithBacking(backing)), nil
	case tensor.Float64:
		backing := make([]float64, r.NumElements())
		copy(backing, r.AsFloat64())
		return gtensor.New(gtensor.WithShape(shape...), gtensor.WithBacking(backing)), nil
	default:
		return nil, fmt.Errorf("interop: cannot convert %s tensor to gorgonia", r.DType())
	}
}

// FromGorgonia converts a gorgonia dense tensor back into the native
// representation, keeping its shape and element type. Views must be
// materialized by the caller first.
func FromGorgonia(d *gtensor.Dense) (*tensor.RawTensor, error) {
	dims := d.Shape()
	if len(dims) == 0 {
		return nil, fmt.Errorf("interop: scalar tensors are not supported by the gorgonia conversion")
	}
	shape := make(tensor.Shape, len(dims))
	copy(shape, dims)

	switch d.Dtype() {
	case gtensor.Float32:
		src, ok := d.Data().([]float32)
		if !ok || len(src) != shape.NumElements() {
			return nil, fmt.Errorf("interop: gorgonia tensor data is not a plain float32 backing (materialize views first)")
		}
		raw, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
		if err != nil {
			return nil, fmt.Errorf("interop: %w", err)
		}
		copy(raw.AsFloat32(), src)
		return raw, nil
	case gtensor.Float64:
		src, ok := d.Data().([]float64)
		if !ok || len(src) != shape.NumElements() {
			return nil, fmt.Errorf("interop: gorgonia tensor data is not a plain float64 backing (materialize views first)")
		}
		raw, err := tensor.NewRaw(shape, tensor.Float64, tensor.CPU)
		if err != nil {
			return nil, fmt.Errorf("interop: %w", err)
		}
		copy(raw.AsFloat64(), src)
		return raw, nil
	default:
		return nil, fmt.Errorf("interop: unsupported gorgonia dtype %v", d.Dtype())
	}
}

// MatToGorgonia converts a gonum matrix straight into a 2-D float64
// gorgonia tensor.
func MatToGorgonia(m *mat.Dense) (*gtensor.Dense, error) {
	rows, cols := m.Dims()
	backing := make([]float64, rows*cols)
	rm := m.RawMatrix()
	for i := 0; i < rows; i++ {
		copy(backing[i*cols:(i+1)*cols], rm.Data[i*rm.Stride:i*rm.Stride+cols])
	}
	return gtensor.New(gtensor.WithShape(rows, cols), gtensor.WithBacking(backing)), nil
}

// GorgoniaToMat converts a 2-D float32 or float64 gorgonia tensor into a
// gonum matrix.
func GorgoniaToMat(d *gtensor.Dense) (*mat.Dense, error) {
	dims := d.Shape()
	if len(dims) != 2 {
		return nil, fmt.Errorf("interop: mat.Dense needs a 2-D tensor, got %d-D", len(dims))
	}
	n := dims[0] * dims[1]

	data := make([]float64, n)
	switch d.Dtype() {
	case gtensor.Float32:
		src, ok := d.Data().([]float32)
		if !ok || len(src) != n {
			return nil, fmt.Errorf("interop: gorgonia tensor data is not a plain float32 backing (materialize views first)")
		}
		for i, v := range src {
			data[i] = float64(v)
		}
	case gtensor.Float64:
		src, ok := d.Data().([]float64)
		if !ok || len(src) != n {
			return nil, fmt.Errorf("interop: gorgonia tensor data is not a plain float64 backing (materialize views first)")
		}
		copy(data, src)
	default:
		return nil, fmt.Errorf("interop: unsupported gorgonia dtype %v", d.Dtype())
	}
	return mat.NewDense(dims[0], dims[1], data), nil
}
