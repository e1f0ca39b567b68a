// Package nn provides neural network building blocks for inference.
//
// Modules compose into networks through the Module interface. Every
// module is generic over the backend, so a network built for the CPU
// backend carries its device in the type and cannot silently mix
// tensors from different backends.
//
// Available modules:
//   - Linear: fully connected layer (x @ W^T + b)
//   - ReLU, Sigmoid, Tanh: element-wise activations
//   - Sequential: chains modules in order
//
// Modules that carry weights additionally implement StatefulModule,
// which exposes their parameters as a flat name-to-tensor map for
// serialization.
package nn

import (
	"github.com/seedling-ml/seedling/internal/tensor"
)

// Module is the interface implemented by all network building blocks.
type Module[B tensor.Backend] interface {
	// Forward computes the module's output for the given input.
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns the module's learnable parameters.
	// Stateless modules return nil.
	Parameters() []*Parameter[B]
}

// StatefulModule is implemented by modules whose parameters can be
// exported and restored. Stateless modules such as activations do not
// implement it; Sequential skips them when building its state dict.
type StatefulModule[B tensor.Backend] interface {
	Module[B]

	// StateDict returns the module's parameters keyed by name.
	// The returned tensors share memory with the module.
	StateDict() map[string]*tensor.RawTensor

	// LoadStateDict copies values from the given map into the
	// module's parameters. Every expected entry must be present
	// with a matching shape and dtype.
	LoadStateDict(stateDict map[string]*tensor.RawTensor) error
}
