package dataset

import (
	"fmt"

	"github.com/seedling-ml/seedling/internal/digit"
	"github.com/seedling-ml/seedling/internal/tensor"
	"github.com/seedling-ml/seedling/internal/transform"
)

// Batch is one mini-batch of normalized samples ready for the model.
type Batch[B tensor.Backend] struct {
	Images *tensor.Tensor[float32, B] // [Size, 784]
	Labels *tensor.Tensor[int32, B]   // [Size]
	Size   int
}

// Batches cuts the dataset into mini-batches of batchSize samples,
// normalizing pixels with norm as it goes. The last batch may be
// smaller when the sizes do not divide evenly.
func Batches[B tensor.Backend](d *Dataset, batchSize int, norm transform.Normalize, backend B) ([]*Batch[B], error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("dataset: batch size must be positive, got %d", batchSize)
	}

	numBatches := (d.Len() + batchSize - 1) / batchSize
	batches := make([]*Batch[B], 0, numBatches)

	for start := 0; start < d.Len(); start += batchSize {
		end := start + batchSize
		if end > d.Len() {
			end = d.Len()
		}
		n := end - start

		pixels := make([]float32, n*digit.NumPixels)
		labels := make([]int32, n)
		for i := 0; i < n; i++ {
			norm.ApplyInto(pixels[i*digit.NumPixels:(i+1)*digit.NumPixels], d.images[start+i])
			labels[i] = int32(d.labels[start+i])
		}

		imagesT, err := tensor.FromSlice(pixels, tensor.Shape{n, digit.NumPixels}, backend)
		if err != nil {
			return nil, fmt.Errorf("batch at %d: %w", start, err)
		}
		labelsT, err := tensor.FromSlice(labels, tensor.Shape{n}, backend)
		if err != nil {
			return nil, fmt.Errorf("batch at %d: %w", start, err)
		}
		batches = append(batches, &Batch[B]{Images: imagesT, Labels: labelsT, Size: n})
	}
	return batches, nil
}
