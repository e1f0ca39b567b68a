package nn

import (
	"fmt"
	"strings"

	"github.com/seedling-ml/seedling/internal/tensor"
)

// Sequential chains modules, feeding each module's output to the next.
//
// Example:
//
//	net := nn.NewSequential[*cpu.CPUBackend](
//		nn.NewLinear(784, 128, backend),
//		nn.NewReLU[*cpu.CPUBackend](),
//		nn.NewLinear(128, 10, backend),
//	)
//	logits := net.Forward(input)
type Sequential[B tensor.Backend] struct {
	modules []Module[B]
}

// NewSequential creates a container running the given modules in order.
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return &Sequential[B]{modules: modules}
}

// Forward runs the input through every module in order.
func (s *Sequential[B]) Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	output := input
	for _, module := range s.modules {
		output = module.Forward(output)
	}
	return output
}

// Parameters returns the parameters of all contained modules in order.
func (s *Sequential[B]) Parameters() []*Parameter[B] {
	var params []*Parameter[B]
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the end of the chain.
func (s *Sequential[B]) Add(module Module[B]) {
	s.modules = append(s.modules, module)
}

// Len returns the number of contained modules.
func (s *Sequential[B]) Len() int {
	return len(s.modules)
}

// Module returns the module at the given position.
func (s *Sequential[B]) Module(index int) Module[B] {
	return s.modules[index]
}

// StateDict collects the state of every stateful module, prefixing each
// key with the module's position, e.g. "0.weight". Stateless modules
// such as activations contribute nothing but still occupy a position.
func (s *Sequential[B]) StateDict() map[string]*tensor.RawTensor {
	stateDict := make(map[string]*tensor.RawTensor)
	for i, module := range s.modules {
		stateful, ok := module.(StatefulModule[B])
		if !ok {
			continue
		}
		for name, raw := range stateful.StateDict() {
			stateDict[fmt.Sprintf("%d.%s", i, name)] = raw
		}
	}
	return stateDict
}

// LoadStateDict distributes position-prefixed entries to the contained
// stateful modules. Module positions must match those used when the
// state dict was produced.
func (s *Sequential[B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	for i, module := range s.modules {
		stateful, ok := module.(StatefulModule[B])
		if !ok {
			continue
		}

		prefix := fmt.Sprintf("%d.", i)
		sub := make(map[string]*tensor.RawTensor)
		for key, raw := range stateDict {
			if strings.HasPrefix(key, prefix) {
				sub[strings.TrimPrefix(key, prefix)] = raw
			}
		}
		if len(sub) == 0 {
			continue
		}
		if err := stateful.LoadStateDict(sub); err != nil {
			return fmt.Errorf("module %d: %w", i, err)
		}
	}
	return nil
}
