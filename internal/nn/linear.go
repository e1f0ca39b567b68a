package nn

import (
	"fmt"

	"github.com/seedling-ml/seedling/internal/tensor"
)

// Linear is a fully connected layer computing output = input @ W^T + b.
//
// The weight has shape [outFeatures, inFeatures] and the bias has shape
// [outFeatures]. Weights are initialized with Xavier uniform values and
// the bias starts at zero.
//
// Example:
//
//	layer := nn.NewLinear(784, 128, backend)
//	output := layer.Forward(input) // [batch, 784] -> [batch, 128]
type Linear[B tensor.Backend] struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter[B]
	bias        *Parameter[B]
}

// NewLinear creates a fully connected layer with the given dimensions.
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("nn.NewLinear: dimensions must be positive, got in=%d out=%d", inFeatures, outFeatures))
	}

	weight := Xavier[B](tensor.Shape{outFeatures, inFeatures}, inFeatures, outFeatures, backend)
	bias := tensor.Zeros[float32, B](tensor.Shape{outFeatures}, backend)

	return &Linear[B]{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      NewParameter("weight", weight),
		bias:        NewParameter("bias", bias),
	}
}

// Forward applies the affine transform to a [batch, inFeatures] input
// and returns a [batch, outFeatures] output. It panics when the input
// is not 2-D or has the wrong feature count.
func (l *Linear[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	shape := input.Shape()
	if len(shape) != 2 {
		panic(fmt.Sprintf("nn.Linear: input must be 2-D [batch, features], got shape %v", shape))
	}
	if shape[1] != l.inFeatures {
		panic(fmt.Sprintf("nn.Linear: input has %d features, want %d", shape[1], l.inFeatures))
	}

	// x @ W^T, then the bias broadcast across the batch.
	output := input.MatMul(l.weight.Tensor().Transpose())
	return output.Add(l.bias.Tensor().Reshape(1, l.outFeatures))
}

// Parameters returns the layer's weight and bias.
func (l *Linear[B]) Parameters() []*Parameter[B] {
	return []*Parameter[B]{l.weight, l.bias}
}

// Weight returns the weight parameter, shaped [outFeatures, inFeatures].
func (l *Linear[B]) Weight() *Parameter[B] {
	return l.weight
}

// Bias returns the bias parameter, shaped [outFeatures].
func (l *Linear[B]) Bias() *Parameter[B] {
	return l.bias
}

// InFeatures returns the layer's input dimension.
func (l *Linear[B]) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the layer's output dimension.
func (l *Linear[B]) OutFeatures() int {
	return l.outFeatures
}

// StateDict returns the layer's parameters under the keys "weight" and
// "bias". The tensors share memory with the layer.
func (l *Linear[B]) StateDict() map[string]*tensor.RawTensor {
	return map[string]*tensor.RawTensor{
		"weight": l.weight.Tensor().Raw(),
		"bias":   l.bias.Tensor().Raw(),
	}
}

// LoadStateDict copies the "weight" and "bias" entries into the layer.
// Both must be present with matching shapes and Float32 dtype.
func (l *Linear[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	if err := copyParam(l.weight, stateDict, "weight"); err != nil {
		return err
	}
	return copyParam(l.bias, stateDict, "bias")
}

// copyParam copies one state dict entry into dst after validating that
// it exists and matches dst's shape and dtype.
func copyParam[B tensor.Backend](dst *Parameter[B], stateDict map[string]*tensor.RawTensor, name string) error {
	src, ok := stateDict[name]
	if !ok {
		return fmt.Errorf("missing %q in state dict", name)
	}
	want := dst.Tensor().Shape()
	if !src.Shape().Equal(want) {
		return fmt.Errorf("%s shape mismatch: got %v, want %v", name, src.Shape(), want)
	}
	if src.DType() != tensor.Float32 {
		return fmt.Errorf("%s dtype mismatch: got %v, want %v", name, src.DType(), tensor.Float32)
	}
	copy(dst.Tensor().Data(), src.AsFloat32())
	return nil
}
