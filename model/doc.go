// Copyright 2026 Seedling ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package model defines the digit classification network.
//
// # Overview
//
// The classifier is a two-layer perceptron: 784 input pixels, a hidden
// ReLU layer (128 units by default), and 10 output logits, one per
// digit class. With standard MNIST training this architecture reaches
// 97-98% test accuracy.
//
// # Basic Usage
//
//	import (
//	    "github.com/seedling-ml/seedling/model"
//	    "github.com/seedling-ml/seedling/transform"
//	    "github.com/seedling-ml/seedling/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    m := model.New(backend)
//
//	    input, _ := transform.ToTensor(transform.Range, img, backend)
//	    class, confidence := m.Predict(input)
//	    fmt.Printf("digit %d (%.1f%%)\n", class, confidence*100)
//	}
//
// Forward accepts a [784] vector, a [1, 784] row, or a [batch, 784]
// matrix and returns raw logits. Probabilities applies softmax;
// PredictBatch classifies whole batches at once.
//
// # Checkpoints
//
// MLP implements nn.StatefulModule, so weights round-trip through the
// checkpoint package:
//
//	err := checkpoint.Save("mlp.seed", m.StateDict(),
//	    checkpoint.WithModelType("MLP"),
//	)
package model
