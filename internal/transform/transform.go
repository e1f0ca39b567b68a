// Package transform rescales raw pixel intensities into model input
// values. The map is the usual two-step recipe: divide by 255 to reach
// [0, 1], then subtract a mean and divide by a standard deviation.
package transform

import (
	"github.com/chewxy/math32"

	"github.com/seedling-ml/seedling/internal/digit"
	"github.com/seedling-ml/seedling/internal/tensor"
)

// Normalize holds the mean and standard deviation applied after the
// /255 scaling. The zero value behaves like None.
type Normalize struct {
	Mean float32
	Std  float32
}

// Presets for the common recipes.
var (
	// Range maps into [-1, 1]: 0 becomes exactly -1 and 255 exactly +1.
	// This is the default everywhere in this module.
	Range = Normalize{Mean: 0.5, Std: 0.5}

	// MNIST uses the dataset's own pixel statistics, the torchvision
	// recipe.
	MNIST = Normalize{Mean: 0.1307, Std: 0.3081}

	// None only scales into [0, 1].
	None = Normalize{Mean: 0, Std: 1}
)

// std treats a zero standard deviation as 1 so the zero value of
// Normalize scales without dividing by zero.
func (n Normalize) std() float32 {
	if n.Std == 0 {
		return 1
	}
	return n.Std
}

// Apply maps one raw intensity to its normalized value.
func (n Normalize) Apply(v uint8) float32 {
	return (float32(v)/255 - n.Mean) / n.std()
}

// ApplySlice maps a whole sample, allocating the result.
func (n Normalize) ApplySlice(pixels []uint8) []float32 {
	out := make([]float32, len(pixels))
	n.ApplyInto(out, pixels)
	return out
}

// ApplyInto maps a sample into dst, which must be at least as long as
// pixels. Batch loaders use this to fill one backing slice per batch.
func (n Normalize) ApplyInto(dst []float32, pixels []uint8) {
	inv := 1 / n.std()
	for i, v := range pixels {
		dst[i] = (float32(v)/255 - n.Mean) * inv
	}
}

// Invert maps a normalized value back to the raw byte, rounding to
// nearest and clamping to [0, 255]. Apply followed by Invert returns
// the original intensity.
func (n Normalize) Invert(f float32) uint8 {
	v := math32.Round((f*n.std() + n.Mean) * 255)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// ApplyTensor normalizes a float32 tensor holding raw [0, 255]
// intensities in place.
func ApplyTensor[B tensor.Backend](n Normalize, t *tensor.Tensor[float32, B]) {
	inv := 1 / n.std()
	data := t.Data()
	for i, v := range data {
		data[i] = (v/255 - n.Mean) * inv
	}
}

// ToTensor normalizes a sample into a [1, 784] tensor, a batch of one
// ready for the model.
func ToTensor[B tensor.Backend](n Normalize, img digit.Image, b B) (*tensor.Tensor[float32, B], error) {
	return tensor.FromSlice(n.ApplySlice(img), tensor.Shape{1, digit.NumPixels}, b)
}

// ToVector normalizes a sample into a flat [784] tensor.
func ToVector[B tensor.Backend](n Normalize, img digit.Image, b B) (*tensor.Tensor[float32, B], error) {
	return tensor.FromSlice(n.ApplySlice(img), tensor.Shape{digit.NumPixels}, b)
}
