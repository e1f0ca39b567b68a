// Package digit holds the 28x28 grayscale sample type shared by the
// dataset, transform, and model packages, with conversions from and to
// the standard library image types.
package digit

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// Width and Height are the fixed sample dimensions.
const (
	Width  = 28
	Height = 28

	// NumPixels is the flattened sample length (Width * Height).
	NumPixels = Width * Height
)

// Image is one grayscale digit sample: NumPixels intensities in row-major
// order, where 0 is black and 255 is white.
type Image []uint8

// New wraps pixels as an Image. The slice is used directly, not copied,
// so loaders can slice one large read buffer into many samples.
func New(pixels []uint8) (Image, error) {
	if len(pixels) != NumPixels {
		return nil, fmt.Errorf("digit: expected %d pixels, got %d", NumPixels, len(pixels))
	}
	return Image(pixels), nil
}

// At returns the intensity at (row, col).
func (m Image) At(row, col int) uint8 {
	if row < 0 || row >= Height || col < 0 || col >= Width {
		panic(fmt.Sprintf("digit: pixel (%d, %d) out of range for %dx%d image", row, col, Height, Width))
	}
	return m[row*Width+col]
}

// Flatten32 returns the raw intensities as float32 values in [0, 255].
// Rescaling to a model input range is the transform package's job.
func (m Image) Flatten32() []float32 {
	out := make([]float32, len(m))
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// Flatten64 returns the raw intensities as float64 values in [0, 255].
func (m Image) Flatten64() []float64 {
	out := make([]float64, len(m))
	for i, v := range m {
		out[i] = float64(v)
	}
	return out
}

// renderRamp maps intensity to glyphs, darkest to brightest.
const renderRamp = " .:-=+*#%@"

// Render draws the sample as ASCII art, one line per pixel row. Each
// pixel prints as two copies of its glyph because terminal cells are
// roughly twice as tall as they are wide.
func (m Image) Render() string {
	var b strings.Builder
	b.Grow(Height * (2*Width + 1))
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			c := renderRamp[int(m[row*Width+col])*(len(renderRamp)-1)/255]
			b.WriteByte(c)
			b.WriteByte(c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ToGray copies the sample into a standard library grayscale image,
// suitable for encoding with image/png.
func (m Image) ToGray() *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, Width, Height))
	copy(dst.Pix, m)
	return dst
}

// FromGray copies a 28x28 grayscale image into an Image. Sources with
// other dimensions go through FromImage instead.
func FromGray(src *image.Gray) (Image, error) {
	b := src.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		return nil, fmt.Errorf("digit: expected %dx%d image, got %dx%d", Width, Height, b.Dx(), b.Dy())
	}
	out := make(Image, NumPixels)
	for y := 0; y < Height; y++ {
		start := src.PixOffset(b.Min.X, b.Min.Y+y)
		copy(out[y*Width:(y+1)*Width], src.Pix[start:start+Width])
	}
	return out, nil
}

// FromImage converts an arbitrary decoded image into a sample: grayscale
// conversion, plus a bilinear resize when the source is not 28x28.
func FromImage(src image.Image) Image {
	sb := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, Width, Height))
	if sb.Dx() == Width && sb.Dy() == Height {
		draw.Draw(dst, dst.Bounds(), src, sb.Min, draw.Src)
	} else {
		draw.BiLinear.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	}
	out := make(Image, NumPixels)
	copy(out, dst.Pix)
	return out
}
