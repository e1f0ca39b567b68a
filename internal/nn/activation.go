package nn

import (
	"github.com/seedling-ml/seedling/internal/tensor"
)

// ReLUBackend is implemented by backends that provide a fused ReLU
// kernel. The cpu backend implements it.
type ReLUBackend interface {
	ReLU(x *tensor.RawTensor) *tensor.RawTensor
}

// SigmoidBackend is implemented by backends that provide a fused
// sigmoid kernel.
type SigmoidBackend interface {
	Sigmoid(x *tensor.RawTensor) *tensor.RawTensor
}

// TanhBackend is implemented by backends that provide a fused tanh
// kernel.
type TanhBackend interface {
	Tanh(x *tensor.RawTensor) *tensor.RawTensor
}

// ReLU applies max(0, x) element-wise.
type ReLU[B tensor.Backend] struct{}

// NewReLU creates a ReLU activation module.
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return &ReLU[B]{}
}

// Forward applies the activation. It panics when the backend has no
// ReLU kernel.
func (r *ReLU[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	backend := input.Backend()
	if rb, ok := any(backend).(ReLUBackend); ok {
		return tensor.New[float32, B](rb.ReLU(input.Raw()), backend)
	}
	panic("nn.ReLU: backend does not implement ReLU (the cpu backend does)")
}

// Parameters returns nil; ReLU has no learnable parameters.
func (r *ReLU[B]) Parameters() []*Parameter[B] {
	return nil
}

// Sigmoid applies 1 / (1 + exp(-x)) element-wise.
type Sigmoid[B tensor.Backend] struct{}

// NewSigmoid creates a sigmoid activation module.
func NewSigmoid[B tensor.Backend]() *Sigmoid[B] {
	return &Sigmoid[B]{}
}

// Forward applies the activation. It panics when the backend has no
// sigmoid kernel.
func (s *Sigmoid[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	backend := input.Backend()
	if sb, ok := any(backend).(SigmoidBackend); ok {
		return tensor.New[float32, B](sb.Sigmoid(input.Raw()), backend)
	}
	panic("nn.Sigmoid: backend does not implement Sigmoid (the cpu backend does)")
}

// Parameters returns nil; Sigmoid has no learnable parameters.
func (s *Sigmoid[B]) Parameters() []*Parameter[B] {
	return nil
}

// Tanh applies the hyperbolic tangent element-wise.
type Tanh[B tensor.Backend] struct{}

// NewTanh creates a tanh activation module.
func NewTanh[B tensor.Backend]() *Tanh[B] {
	return &Tanh[B]{}
}

// Forward applies the activation. It panics when the backend has no
// tanh kernel.
func (t *Tanh[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	backend := input.Backend()
	if tb, ok := any(backend).(TanhBackend); ok {
		return tensor.New[float32, B](tb.Tanh(input.Raw()), backend)
	}
	panic("nn.Tanh: backend does not implement Tanh (the cpu backend does)")
}

// Parameters returns nil; Tanh has no learnable parameters.
func (t *Tanh[B]) Parameters() []*Parameter[B] {
	return nil
}
