// Copyright 2026 Seedling ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers and building blocks.
//
// # Overview
//
// This package contains:
//   - Layers: Linear
//   - Activations: ReLU, Sigmoid, Tanh
//   - Utilities: Sequential, Module interface, Parameter, Accuracy
//   - Initialization: Xavier
//
// # Basic Usage
//
//	import (
//	    "github.com/seedling-ml/seedling/nn"
//	    "github.com/seedling-ml/seedling/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Build a simple MLP
//	    model := nn.NewSequential(
//	        nn.NewLinear(784, 128, backend),
//	        nn.NewReLU[*cpu.Backend](),
//	        nn.NewLinear(128, 10, backend),
//	    )
//
//	    // Forward pass
//	    output := model.Forward(input)
//	}
//
// # Layers
//
// Linear: Fully connected layer with Xavier initialization
//
//	layer := nn.NewLinear(inFeatures, outFeatures, backend)
//
// # Activations
//
// Common activation functions:
//
//	relu := nn.NewReLU[B]()
//	sigmoid := nn.NewSigmoid[B]()
//	tanh := nn.NewTanh[B]()
//
// Activations dispatch to backend kernels through capability interfaces
// (ReLUBackend, SigmoidBackend, TanhBackend). The cpu backend implements
// all three.
//
// # Sequential Models
//
// Build models by composing layers:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 256, backend),
//	    nn.NewReLU[*cpu.Backend](),
//	    nn.NewLinear(256, 128, backend),
//	    nn.NewReLU[*cpu.Backend](),
//	    nn.NewLinear(128, 10, backend),
//	)
//
// # Parameter Management
//
// Access model parameters for inspection:
//
//	params := model.Parameters()
//	for _, param := range params {
//	    fmt.Println(param.Name(), param.Tensor().Shape())
//	}
//
// # State Dicts
//
// Layers with weights implement StatefulModule and round-trip through
// state dicts, which the checkpoint package serializes to disk:
//
//	state := model.StateDict()
//	err := model.LoadStateDict(state)
package nn
