package dataset

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/seedling-ml/seedling/internal/digit"
)

// Dataset is an in-memory set of labeled samples. Images and labels
// share indices.
type Dataset struct {
	images []digit.Image
	labels []uint8
}

// New builds a dataset from matching image and label slices.
func New(images []digit.Image, labels []uint8) (*Dataset, error) {
	if len(images) != len(labels) {
		return nil, fmt.Errorf("dataset: %d images but %d labels", len(images), len(labels))
	}
	return &Dataset{images: images, labels: labels}, nil
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.images)
}

// Image returns sample i's pixels.
func (d *Dataset) Image(i int) digit.Image {
	return d.images[i]
}

// Label returns sample i's class, 0 through 9.
func (d *Dataset) Label(i int) int {
	return int(d.labels[i])
}

// Shuffle reorders the samples in place with a seeded Fisher-Yates,
// keeping every image paired with its label. The same seed always
// produces the same order.
func (d *Dataset) Shuffle(seed int64) {
	r := rand.New(rand.NewSource(seed)) //nolint:gosec // G404: reproducible shuffling wants math/rand
	r.Shuffle(d.Len(), func(i, j int) {
		d.images[i], d.images[j] = d.images[j], d.images[i]
		d.labels[i], d.labels[j] = d.labels[j], d.labels[i]
	})
}

// Split cuts the dataset in two at ratio: the first part holds
// ratio*Len() samples, the second the rest. Both parts share the
// receiver's backing arrays.
func (d *Dataset) Split(ratio float64) (*Dataset, *Dataset, error) {
	if ratio <= 0 || ratio >= 1 {
		return nil, nil, fmt.Errorf("dataset: split ratio must be in (0, 1), got %v", ratio)
	}
	n := int(ratio * float64(d.Len()))
	first := &Dataset{images: d.images[:n], labels: d.labels[:n]}
	second := &Dataset{images: d.images[n:], labels: d.labels[n:]}
	return first, second, nil
}

// Stats summarizes the set: pixel mean and standard deviation on the
// [0, 1] scale, plus per-class sample counts.
type Stats struct {
	Samples int
	Mean    float64
	Std     float64
	Classes [10]int
}

// Stats computes summary statistics over every pixel in the set.
func (d *Dataset) Stats() Stats {
	s := Stats{Samples: d.Len()}
	if d.Len() == 0 {
		return s
	}

	// Every image has the same pixel count, so the global pixel mean is
	// the mean of per-image means, and the same holds for the second
	// moment.
	means := make([]float64, d.Len())
	moments := make([]float64, d.Len())
	for i, img := range d.images {
		var m, m2 float64
		for _, v := range img {
			x := float64(v) / 255
			m += x
			m2 += x * x
		}
		means[i] = m / digit.NumPixels
		moments[i] = m2 / digit.NumPixels
		s.Classes[d.labels[i]]++
	}

	s.Mean = stat.Mean(means, nil)
	variance := stat.Mean(moments, nil) - s.Mean*s.Mean
	if variance < 0 {
		variance = 0
	}
	s.Std = math.Sqrt(variance)
	return s
}

// loadConfig collects the options shared by the IDX and CSV loaders.
type loadConfig struct {
	maxSamples   int
	verifyDigest bool
}

// Option adjusts how a dataset loads.
type Option func(*loadConfig)

// WithMaxSamples caps the number of samples kept from each file. Zero
// keeps everything.
func WithMaxSamples(n int) Option {
	return func(c *loadConfig) { c.maxSamples = n }
}

// WithDigestCheck verifies file checksums against KnownDigests before
// decoding. Files whose names are not in the table fail the check.
func WithDigestCheck() Option {
	return func(c *loadConfig) { c.verifyDigest = true }
}

func applyOptions(opts []Option) loadConfig {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
