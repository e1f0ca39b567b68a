package interop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/seedling-ml/seedling/internal/tensor"
)

// rawFloat32 builds a native tensor from values.
func rawFloat32(t *testing.T, shape tensor.Shape, values []float32) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	copy(raw.AsFloat32(), values)
	return raw
}

func rawFloat64(t *testing.T, shape tensor.Shape, values []float64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	copy(raw.AsFloat64(), values)
	return raw
}

func TestToMatDense_Float32(t *testing.T) {
	r := rawFloat32(t, tensor.Shape{2, 3}, []float32{1, 2, 3, 4, 5, 6})

	m, err := ToMatDense(r)
	require.NoError(t, err)

	rows, cols := m.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 6.0, m.At(1, 2))
}

func TestToMatDense_CopiesData(t *testing.T) {
	r := rawFloat64(t, tensor.Shape{1, 2}, []float64{1, 2})

	m, err := ToMatDense(r)
	require.NoError(t, err)

	r.AsFloat64()[0] = 99
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestToMatDense_RejectsNon2D(t *testing.T) {
	_, err := ToMatDense(rawFloat32(t, tensor.Shape{4}, make([]float32, 4)))
	assert.Error(t, err)

	_, err = ToMatDense(rawFloat32(t, tensor.Shape{2, 2, 2}, make([]float32, 8)))
	assert.Error(t, err)
}

func TestToMatDense_RejectsIntDType(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 2}, tensor.Int32, tensor.CPU)
	require.NoError(t, err)

	_, err = ToMatDense(raw)
	assert.Error(t, err)
}

func TestFromMatDense(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	raw, err := FromMatDense(m)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 2}, raw.Shape())
	assert.Equal(t, tensor.Float64, raw.DType())
	assert.Equal(t, []float64{1, 2, 3, 4}, raw.AsFloat64())
}

// TestFromMatDense_Submatrix checks the row-wise copy against a view
// whose stride is wider than its column count.
func TestFromMatDense_Submatrix(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	sub := m.Slice(1, 3, 1, 3).(*mat.Dense)

	raw, err := FromMatDense(sub)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 2}, raw.Shape())
	assert.Equal(t, []float64{5, 6, 8, 9}, raw.AsFloat64())
}

func TestVecDense_Roundtrip(t *testing.T) {
	r := rawFloat32(t, tensor.Shape{4}, []float32{1, 2, 3, 4})

	v, err := ToVecDense(r)
	require.NoError(t, err)
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 3.0, v.AtVec(2))

	back, err := FromVecDense(v)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{4}, back.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4}, back.AsFloat64())
}

func TestToVecDense_RejectsNon1D(t *testing.T) {
	_, err := ToVecDense(rawFloat32(t, tensor.Shape{2, 2}, make([]float32, 4)))
	assert.Error(t, err)
}

// TestFromVecDense_StridedView converts a column view, whose elements
// are not adjacent in memory.
func TestFromVecDense_StridedView(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
	})
	col := m.ColView(1).(*mat.VecDense)

	raw, err := FromVecDense(col)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, raw.AsFloat64())
}
