// Copyright 2026 Seedling ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/seedling-ml/seedling/internal/nn"
	"github.com/seedling-ml/seedling/internal/tensor"
)

// Module interface defines the common interface for all neural network modules.
type Module[B tensor.Backend] = nn.Module[B]

// StatefulModule is a Module whose parameters can be exported to and
// restored from a state dict. Layers with weights implement it,
// activations do not.
type StatefulModule[B tensor.Backend] = nn.StatefulModule[B]

// Parameter represents a named parameter in a neural network.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// Layers

// Linear represents a fully connected (dense) layer.
type Linear[B tensor.Backend] = nn.Linear[B]

// NewLinear creates a new linear layer with Xavier initialization.
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewLinear(784, 128, backend)
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	return nn.NewLinear(inFeatures, outFeatures, backend)
}

// Activations

// ReLUBackend is implemented by backends that provide a ReLU kernel.
type ReLUBackend = nn.ReLUBackend

// SigmoidBackend is implemented by backends that provide a sigmoid kernel.
type SigmoidBackend = nn.SigmoidBackend

// TanhBackend is implemented by backends that provide a tanh kernel.
type TanhBackend = nn.TanhBackend

// ReLU represents the Rectified Linear Unit activation function.
type ReLU[B tensor.Backend] = nn.ReLU[B]

// NewReLU creates a new ReLU activation layer.
//
// Example:
//
//	relu := nn.NewReLU[B]()
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return nn.NewReLU[B]()
}

// Sigmoid represents the Sigmoid activation function.
type Sigmoid[B tensor.Backend] = nn.Sigmoid[B]

// NewSigmoid creates a new Sigmoid activation layer.
//
// Example:
//
//	sigmoid := nn.NewSigmoid[B]()
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return nn.NewSigmoid[B]()
}

// Tanh represents the Tanh activation function.
type Tanh[B tensor.Backend] = nn.Tanh[B]

// NewTanh creates a new Tanh activation layer.
//
// Example:
//
//	tanh := nn.NewTanh[B]()
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return nn.NewTanh[B]()
}

// Sequential

// Sequential represents a sequential container of modules.
type Sequential[B tensor.Backend] = nn.Sequential[B]

// NewSequential creates a new sequential model.
//
// Example:
//
//	backend := cpu.New()
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, backend),
//	    nn.NewReLU[B](),
//	    nn.NewLinear(128, 10, backend),
//	)
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return nn.NewSequential(modules...)
}

// Initialization functions

// Xavier initializes a tensor using Xavier/Glorot initialization.
//
// Example:
//
//	backend := cpu.New()
//	weights := nn.Xavier(tensor.Shape{128, 784}, 784, 128, backend)
func Xavier[B tensor.Backend](shape tensor.Shape, fanIn, fanOut int, backend B) *tensor.Tensor[float32, B] {
	return nn.Xavier(shape, fanIn, fanOut, backend)
}

// Utility functions

// Accuracy computes the classification accuracy.
//
// Example:
//
//	acc := nn.Accuracy(logits, labels)
//	fmt.Printf("Accuracy: %.2f%%\n", acc*100)
func Accuracy[B tensor.Backend](
	logits *tensor.Tensor[float32, B],
	targets *tensor.Tensor[int32, B],
) float32 {
	return nn.Accuracy(logits, targets)
}

// Argmax returns the index of the largest value in a slice.
// Ties resolve to the earliest index.
func Argmax(values []float32) int {
	return nn.Argmax(values)
}
