// Copyright 2026 Seedling ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/seedling-ml/seedling/checkpoint"
	"github.com/seedling-ml/seedling/internal/tensor"
)

// Save saves a module to a .seed file.
//
// This is a convenience function that exports the module's state
// dictionary and writes it with the checkpoint package.
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewLinear(784, 10, backend)
//	err := nn.Save(layer, "layer.seed", "Linear", nil)
func Save[B tensor.Backend](module StatefulModule[B], path, modelType string, metadata map[string]string) error {
	return checkpoint.Save(path, module.StateDict(),
		checkpoint.WithModelType(modelType),
		checkpoint.WithMetadata(metadata),
	)
}

// Load loads a module's parameters from a .seed file.
//
// This is a convenience function that reads a state dictionary from a
// file and loads it into the provided module. Returns the file header.
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewLinear(784, 10, backend)
//	header, err := nn.Load("layer.seed", layer)
func Load[B tensor.Backend](path string, module StatefulModule[B]) (checkpoint.Header, error) {
	stateDict, header, err := checkpoint.Load(path)
	if err != nil {
		return checkpoint.Header{}, err
	}
	if err := module.LoadStateDict(stateDict); err != nil {
		return checkpoint.Header{}, err
	}
	return header, nil
}
