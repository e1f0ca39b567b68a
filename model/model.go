// Copyright 2026 Seedling ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package model

import (
	"github.com/seedling-ml/seedling/internal/model"
	"github.com/seedling-ml/seedling/internal/tensor"
)

// Network dimensions.
const (
	// InputSize is the flattened image size the network consumes.
	InputSize = model.InputSize

	// NumClasses is the number of output classes, one per digit.
	NumClasses = model.NumClasses

	// DefaultHiddenSize is the hidden layer width used unless
	// overridden with WithHiddenSize.
	DefaultHiddenSize = model.DefaultHiddenSize
)

// MLP is a two-layer fully connected digit classifier. Forward returns
// raw logits; Probabilities and Predict layer softmax on top.
type MLP[B tensor.Backend] = model.MLP[B]

// Option configures an MLP at construction time.
type Option = model.Option

// WithHiddenSize overrides the hidden layer width.
func WithHiddenSize(n int) Option {
	return model.WithHiddenSize(n)
}

// New creates a classifier with Xavier-initialized weights.
//
// Example:
//
//	backend := cpu.New()
//	m := model.New(backend)
//	class, confidence := m.Predict(input)
func New[B tensor.Backend](backend B, opts ...Option) *MLP[B] {
	return model.New(backend, opts...)
}
