// Copyright 2026 Seedling ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dataset

import (
	"image"
	"io"

	"github.com/seedling-ml/seedling/internal/dataset"
	"github.com/seedling-ml/seedling/internal/digit"
	"github.com/seedling-ml/seedling/internal/tensor"
	"github.com/seedling-ml/seedling/transform"
)

// Sample dimensions.
const (
	Width  = digit.Width
	Height = digit.Height

	// NumPixels is the flattened sample length (Width * Height).
	NumPixels = digit.NumPixels
)

// Image is one grayscale digit sample: NumPixels intensities in
// row-major order, where 0 is black and 255 is white.
type Image = digit.Image

// NewImage wraps pixels as an Image. The slice is used directly, not
// copied.
func NewImage(pixels []uint8) (Image, error) {
	return digit.New(pixels)
}

// FromGray copies a 28x28 grayscale image into an Image.
func FromGray(src *image.Gray) (Image, error) {
	return digit.FromGray(src)
}

// FromImage converts an arbitrary decoded image into a sample,
// converting to grayscale and resizing when the source is not 28x28.
func FromImage(src image.Image) Image {
	return digit.FromImage(src)
}

// Dataset is an in-memory set of digit samples with labels.
type Dataset = dataset.Dataset

// Stats summarizes a dataset: sample count, per-class counts, and pixel
// intensity statistics.
type Stats = dataset.Stats

// Batch is one mini-batch of normalized samples ready for the model.
type Batch[B tensor.Backend] = dataset.Batch[B]

// Option configures dataset loading.
type Option = dataset.Option

// WithMaxSamples caps how many samples are loaded.
func WithMaxSamples(n int) Option {
	return dataset.WithMaxSamples(n)
}

// WithDigestCheck verifies file SHA-256 digests against the known MNIST
// digests before decoding.
func WithDigestCheck() Option {
	return dataset.WithDigestCheck()
}

// KnownDigests maps the standard MNIST file names to their SHA-256
// digests.
var KnownDigests = dataset.KnownDigests

// New builds a dataset from already-decoded samples.
func New(images []Image, labels []uint8) (*Dataset, error) {
	return dataset.New(images, labels)
}

// ReadImages decodes an IDX image file (magic 2051) from r.
func ReadImages(r io.Reader) ([]Image, error) {
	return dataset.ReadImages(r)
}

// ReadLabels decodes an IDX label file (magic 2049) from r.
func ReadLabels(r io.Reader) ([]uint8, error) {
	return dataset.ReadLabels(r)
}

// Load reads an IDX image file and label file pair. Files may be plain
// or gzip-compressed.
//
// Example:
//
//	ds, err := dataset.Load(
//	    "data/t10k-images-idx3-ubyte.gz",
//	    "data/t10k-labels-idx1-ubyte.gz",
//	)
func Load(imagePath, labelPath string, opts ...Option) (*Dataset, error) {
	return dataset.Load(imagePath, labelPath, opts...)
}

// LoadDir loads the train or test split from a directory holding the
// standard MNIST file names.
func LoadDir(dir string, train bool, opts ...Option) (*Dataset, error) {
	return dataset.LoadDir(dir, train, opts...)
}

// ReadCSV decodes Kaggle-style CSV rows (label,pixel0,...,pixel783)
// from r.
func ReadCSV(r io.Reader, opts ...Option) (*Dataset, error) {
	return dataset.ReadCSV(r, opts...)
}

// LoadCSV reads a Kaggle-style CSV file.
func LoadCSV(path string, opts ...Option) (*Dataset, error) {
	return dataset.LoadCSV(path, opts...)
}

// VerifyDigest checks a file against an expected SHA-256 hex digest.
func VerifyDigest(path, wantHex string) error {
	return dataset.VerifyDigest(path, wantHex)
}

// Batches cuts the dataset into mini-batches of batchSize samples,
// normalizing pixels with norm as it goes.
//
// Example:
//
//	backend := cpu.New()
//	batches, err := dataset.Batches(ds, 64, transform.Range, backend)
func Batches[B tensor.Backend](d *Dataset, batchSize int, norm transform.Normalize, backend B) ([]*Batch[B], error) {
	return dataset.Batches(d, batchSize, norm, backend)
}
