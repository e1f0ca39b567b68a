package interop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	gtensor "gorgonia.org/tensor"

	"github.com/seedling-ml/seedling/internal/tensor"
)

func TestToGorgonia_Float32(t *testing.T) {
	r := rawFloat32(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})

	d, err := ToGorgonia(r)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3}, []int(d.Shape()))
	assert.Equal(t, gtensor.Float32, d.Dtype())
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, d.Data().([]float32))
}

func TestToGorgonia_Float64(t *testing.T) {
	r := rawFloat64(t, tensor.Shape{4}, []float64{1, 2, 3, 4})

	d, err := ToGorgonia(r)
	require.NoError(t, err)
	assert.Equal(t, gtensor.Float64, d.Dtype())
	assert.Equal(t, []float64{1, 2, 3, 4}, d.Data().([]float64))
}

func TestToGorgonia_CopiesData(t *testing.T) {
	r := rawFloat32(t, tensor.Shape{2}, []float32{1, 2})

	d, err := ToGorgonia(r)
	require.NoError(t, err)

	r.AsFloat32()[0] = 99
	assert.Equal(t, float32(1), d.Data().([]float32)[0])
}

func TestToGorgonia_RejectsUnsupported(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2}, tensor.Uint8, tensor.CPU)
	require.NoError(t, err)
	_, err = ToGorgonia(raw)
	assert.Error(t, err)

	scalar, err := tensor.NewRaw(tensor.Shape{}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	_, err = ToGorgonia(scalar)
	assert.Error(t, err)
}

func TestFromGorgonia_Roundtrip(t *testing.T) {
	r := rawFloat32(t, tensor.Shape{2, 2}, []float32{1, 2, 3, 4})

	d, err := ToGorgonia(r)
	require.NoError(t, err)

	back, err := FromGorgonia(d)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2}, back.Shape())
	assert.Equal(t, tensor.Float32, back.DType())
	assert.Equal(t, []float32{1, 2, 3, 4}, back.AsFloat32())
}

func TestFromGorgonia_Float64(t *testing.T) {
	d := gtensor.New(gtensor.WithShape(3), gtensor.WithBacking([]float64{7, 8, 9}))

	raw, err := FromGorgonia(d)
	require.NoError(t, err)
	assert.Equal(t, tensor.Float64, raw.DType())
	assert.Equal(t, []float64{7, 8, 9}, raw.AsFloat64())
}

func TestFromGorgonia_RejectsIntDtype(t *testing.T) {
	d := gtensor.New(gtensor.WithShape(2), gtensor.WithBacking([]int32{1, 2}))
	_, err := FromGorgonia(d)
	assert.Error(t, err)
}

func TestMatToGorgonia(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	d, err := MatToGorgonia(m)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, []int(d.Shape()))
	assert.Equal(t, gtensor.Float64, d.Dtype())
	assert.Equal(t, []float64{1, 2, 3, 4}, d.Data().([]float64))
}

func TestGorgoniaToMat_WidensFloat32(t *testing.T) {
	d := gtensor.New(gtensor.WithShape(2, 2), gtensor.WithBacking([]float32{1.5, 2, 3, 4}))

	m, err := GorgoniaToMat(d)
	require.NoError(t, err)
	assert.Equal(t, 1.5, m.At(0, 0))
	assert.Equal(t, 4.0, m.At(1, 1))
}

func TestGorgoniaToMat_RejectsNon2D(t *testing.T) {
	d := gtensor.New(gtensor.WithShape(4), gtensor.WithBacking([]float32{1, 2, 3, 4}))
	_, err := GorgoniaToMat(d)
	assert.Error(t, err)
}

// TestBridge_NativeToMatToGorgoniaAndBack drives one value through every
// conversion in the package.
func TestBridge_NativeToMatToGorgoniaAndBack(t *testing.T) {
	start := rawFloat64(t, tensor.Shape{2, 2}, []float64{1, 2, 3, 4})

	m, err := ToMatDense(start)
	require.NoError(t, err)

	g, err := MatToGorgonia(m)
	require.NoError(t, err)

	m2, err := GorgoniaToMat(g)
	require.NoError(t, err)

	end, err := FromMatDense(m2)
	require.NoError(t, err)

	assert.Equal(t, start.Shape(), end.Shape())
	assert.Equal(t, start.AsFloat64(), end.AsFloat64())
}
