// Package model defines the digit classification network.
//
// The classifier is a two-layer perceptron: 784 input pixels, a hidden
// ReLU layer, and 10 output logits, one per digit class. With standard
// MNIST training this architecture reaches 97-98% test accuracy, which
// makes it the usual baseline for the dataset.
package model

import (
	"fmt"
	"strings"

	"github.com/seedling-ml/seedling/internal/digit"
	"github.com/seedling-ml/seedling/internal/nn"
	"github.com/seedling-ml/seedling/internal/tensor"
)

const (
	// InputSize is the flattened image size the network consumes.
	InputSize = digit.NumPixels

	// NumClasses is the number of output classes, one per digit.
	NumClasses = 10

	// DefaultHiddenSize is the hidden layer width used unless
	// overridden with WithHiddenSize.
	DefaultHiddenSize = 128
)

// Option configures an MLP at construction time.
type Option func(*options)

type options struct {
	hiddenSize int
}

// WithHiddenSize overrides the hidden layer width.
func WithHiddenSize(n int) Option {
	return func(o *options) {
		o.hiddenSize = n
	}
}

// MLP is a two-layer fully connected classifier over flattened digit
// images. Forward returns raw logits; Probabilities and Predict layer
// softmax on top when calibrated scores are needed.
type MLP[B tensor.Backend] struct {
	hiddenSize int
	fc1        *nn.Linear[B] // 784 -> hidden
	relu       *nn.ReLU[B]
	fc2        *nn.Linear[B] // hidden -> 10
}

// New creates a classifier with Xavier-initialized weights.
func New[B tensor.Backend](backend B, opts ...Option) *MLP[B] {
	o := options{hiddenSize: DefaultHiddenSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.hiddenSize <= 0 {
		panic(fmt.Sprintf("model.New: hidden size must be positive, got %d", o.hiddenSize))
	}

	return &MLP[B]{
		hiddenSize: o.hiddenSize,
		fc1:        nn.NewLinear[B](InputSize, o.hiddenSize, backend),
		relu:       nn.NewReLU[B](),
		fc2:        nn.NewLinear[B](o.hiddenSize, NumClasses, backend),
	}
}

// HiddenSize returns the width of the hidden layer.
func (m *MLP[B]) HiddenSize() int {
	return m.hiddenSize
}

// Forward computes logits for a batch of flattened images and returns
// them as a [batch, 10] tensor. A 1-D [784] input is treated as a batch
// of one. Any other shape panics.
func (m *MLP[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	shape := input.Shape()
	if len(shape) == 1 && shape[0] == InputSize {
		input = input.Reshape(1, InputSize)
	} else if len(shape) != 2 || shape[1] != InputSize {
		panic(fmt.Sprintf("model.MLP: input must be [%d] or [batch, %d], got shape %v", InputSize, InputSize, shape))
	}

	x := m.fc1.Forward(input)
	x = m.relu.Forward(x)
	return m.fc2.Forward(x)
}

// Probabilities runs Forward and applies softmax across the classes,
// returning a [batch, 10] tensor whose rows sum to one.
func (m *MLP[B]) Probabilities(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return m.Forward(input).Softmax(1)
}

// Predict classifies a single sample, shaped [784] or [1, 784], and
// returns the predicted class with its softmax confidence.
func (m *MLP[B]) Predict(input *tensor.Tensor[float32, B]) (class int, confidence float32) {
	shape := input.Shape()
	if !(len(shape) == 1 && shape[0] == InputSize) && !(len(shape) == 2 && shape[0] == 1 && shape[1] == InputSize) {
		panic(fmt.Sprintf("model.Predict: expected a single sample, got shape %v", shape))
	}

	probs := m.Probabilities(input).Data()
	class = nn.Argmax(probs)
	return class, probs[class]
}

// PredictBatch classifies every row of a [batch, 784] input and returns
// the predicted class per sample.
func (m *MLP[B]) PredictBatch(input *tensor.Tensor[float32, B]) []int {
	preds := m.Forward(input).Argmax(1)

	classes := make([]int, len(preds.Data()))
	for i, c := range preds.Data() {
		classes[i] = int(c)
	}
	return classes
}

// Parameters returns the weights and biases of both layers.
func (m *MLP[B]) Parameters() []*nn.Parameter[B] {
	params := make([]*nn.Parameter[B], 0, 4)
	params = append(params, m.fc1.Parameters()...)
	params = append(params, m.fc2.Parameters()...)
	return params
}

// NumParameters returns the total number of scalar weights.
func (m *MLP[B]) NumParameters() int {
	total := 0
	for _, p := range m.Parameters() {
		total += p.NumElements()
	}
	return total
}

// StateDict returns the network's parameters keyed "fc1.weight",
// "fc1.bias", "fc2.weight" and "fc2.bias".
func (m *MLP[B]) StateDict() map[string]*tensor.RawTensor {
	stateDict := make(map[string]*tensor.RawTensor, 4)
	for name, raw := range m.fc1.StateDict() {
		stateDict["fc1."+name] = raw
	}
	for name, raw := range m.fc2.StateDict() {
		stateDict["fc2."+name] = raw
	}
	return stateDict
}

// LoadStateDict restores both layers from a map produced by StateDict.
// Missing or mismatched entries fail the load; hidden size must match
// the network being loaded into.
func (m *MLP[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	if err := m.fc1.LoadStateDict(subDict(stateDict, "fc1.")); err != nil {
		return fmt.Errorf("fc1: %w", err)
	}
	if err := m.fc2.LoadStateDict(subDict(stateDict, "fc2.")); err != nil {
		return fmt.Errorf("fc2: %w", err)
	}
	return nil
}

func subDict(stateDict map[string]*tensor.RawTensor, prefix string) map[string]*tensor.RawTensor {
	sub := make(map[string]*tensor.RawTensor)
	for key, raw := range stateDict {
		if strings.HasPrefix(key, prefix) {
			sub[strings.TrimPrefix(key, prefix)] = raw
		}
	}
	return sub
}
