package nn

import (
	"github.com/seedling-ml/seedling/internal/tensor"
)

// Parameter is a named tensor owned by a module, such as a layer's
// weight or bias.
type Parameter[B tensor.Backend] struct {
	name   string
	tensor *tensor.Tensor[float32, B]
}

// NewParameter creates a parameter wrapping the given tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter's name within its module.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter's value.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float32, B] {
	return p.tensor
}

// NumElements returns the number of scalar values in the parameter.
func (p *Parameter[B]) NumElements() int {
	return p.tensor.NumElements()
}
