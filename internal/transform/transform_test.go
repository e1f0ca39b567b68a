package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedling-ml/seedling/internal/digit"
	"github.com/seedling-ml/seedling/internal/tensor"
)

// TestRange_Endpoints pins the defining property of the Range preset:
// the darkest pixel maps to exactly -1 and the brightest to exactly +1.
func TestRange_Endpoints(t *testing.T) {
	assert.Equal(t, float32(-1), Range.Apply(0))
	assert.Equal(t, float32(1), Range.Apply(255))
	assert.InDelta(t, 0, Range.Apply(127)+Range.Apply(128), 1e-6)
}

func TestNone_ScalesToUnitInterval(t *testing.T) {
	assert.Equal(t, float32(0), None.Apply(0))
	assert.Equal(t, float32(1), None.Apply(255))
	assert.InDelta(t, 0.5, None.Apply(128), 0.01)
}

func TestMNIST_KnownValues(t *testing.T) {
	// (0/255 - 0.1307) / 0.3081 and (255/255 - 0.1307) / 0.3081.
	assert.InDelta(t, -0.4242, MNIST.Apply(0), 1e-4)
	assert.InDelta(t, 2.8215, MNIST.Apply(255), 1e-4)
}

func TestZeroValue_BehavesLikeNone(t *testing.T) {
	var n Normalize
	assert.Equal(t, None.Apply(0), n.Apply(0))
	assert.Equal(t, None.Apply(255), n.Apply(255))
	assert.Equal(t, uint8(200), n.Invert(n.Apply(200)))
}

func TestApplySlice(t *testing.T) {
	out := Range.ApplySlice([]uint8{0, 255, 51})
	require.Len(t, out, 3)
	assert.Equal(t, float32(-1), out[0])
	assert.Equal(t, float32(1), out[1])
	assert.InDelta(t, -0.6, out[2], 1e-6)
}

func TestApplyInto_FillsPrefix(t *testing.T) {
	dst := []float32{9, 9, 9}
	Range.ApplyInto(dst, []uint8{0, 255})
	assert.Equal(t, []float32{-1, 1, 9}, dst)
}

// TestInvert_RoundTripsEveryByte checks Apply then Invert recovers every
// possible intensity under each preset.
func TestInvert_RoundTripsEveryByte(t *testing.T) {
	for _, n := range []Normalize{Range, MNIST, None} {
		for v := 0; v < 256; v++ {
			got := n.Invert(n.Apply(uint8(v)))
			require.Equal(t, uint8(v), got, "preset %+v value %d", n, v)
		}
	}
}

func TestInvert_Clamps(t *testing.T) {
	assert.Equal(t, uint8(0), Range.Invert(-1.5))
	assert.Equal(t, uint8(255), Range.Invert(1.5))
	assert.Equal(t, uint8(0), None.Invert(-0.1))
}

func TestApplyTensor(t *testing.T) {
	b := tensor.NewMockBackend()
	x, err := tensor.FromSlice([]float32{0, 255, 127.5}, tensor.Shape{3}, b)
	require.NoError(t, err)

	ApplyTensor(Range, x)

	data := x.Data()
	assert.Equal(t, float32(-1), data[0])
	assert.Equal(t, float32(1), data[1])
	assert.InDelta(t, 0, data[2], 1e-6)
}

func TestToTensor_BatchOfOne(t *testing.T) {
	pixels := make([]uint8, digit.NumPixels)
	pixels[0] = 255
	img, err := digit.New(pixels)
	require.NoError(t, err)

	b := tensor.NewMockBackend()
	x, err := ToTensor(Range, img, b)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{1, digit.NumPixels}, x.Shape())
	assert.Equal(t, float32(1), x.At(0, 0))
	assert.Equal(t, float32(-1), x.At(0, 1))
}

func TestToVector(t *testing.T) {
	img, err := digit.New(make([]uint8, digit.NumPixels))
	require.NoError(t, err)

	b := tensor.NewMockBackend()
	x, err := ToVector(MNIST, img, b)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{digit.NumPixels}, x.Shape())
	assert.InDelta(t, -0.4242, x.At(0), 1e-4)
}
