// Copyright 2026 Seedling ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package transform

import (
	"github.com/seedling-ml/seedling/internal/digit"
	"github.com/seedling-ml/seedling/internal/tensor"
	"github.com/seedling-ml/seedling/internal/transform"
)

// Image is one grayscale digit sample. It is the same type as
// dataset.Image.
type Image = digit.Image

// Normalize holds the mean and standard deviation applied after pixels
// are scaled by 1/255.
type Normalize = transform.Normalize

// Presets for the common recipes.
var (
	// Range maps into [-1, 1]: 0 becomes exactly -1 and 255 exactly +1.
	// This is the default everywhere in this library.
	Range = transform.Range

	// MNIST uses the dataset's own pixel statistics, the torchvision
	// recipe.
	MNIST = transform.MNIST

	// None only scales into [0, 1].
	None = transform.None
)

// ApplyTensor normalizes a float32 tensor holding raw [0, 255]
// intensities in place.
func ApplyTensor[B tensor.Backend](n Normalize, t *tensor.Tensor[float32, B]) {
	transform.ApplyTensor(n, t)
}

// ToTensor normalizes a sample into a [1, 784] tensor, a batch of one
// ready for the model.
//
// Example:
//
//	backend := cpu.New()
//	input, err := transform.ToTensor(transform.Range, img, backend)
//	logits := model.Forward(input)
func ToTensor[B tensor.Backend](n Normalize, img Image, b B) (*tensor.Tensor[float32, B], error) {
	return transform.ToTensor(n, img, b)
}

// ToVector normalizes a sample into a flat [784] tensor.
func ToVector[B tensor.Backend](n Normalize, img Image, b B) (*tensor.Tensor[float32, B], error) {
	return transform.ToVector(n, img, b)
}
