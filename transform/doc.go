// Copyright 2026 Seedling ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package transform rescales raw pixel intensities into model input
// values.
//
// # Overview
//
// The map is the usual two-step recipe: divide by 255 to reach [0, 1],
// then subtract a mean and divide by a standard deviation. Three
// presets cover the common cases:
//   - Range: mean 0.5, std 0.5, mapping into [-1, 1] (the default)
//   - MNIST: the dataset's own statistics (0.1307, 0.3081)
//   - None: [0, 1] scaling only
//
// With Range, a black pixel (0) maps to exactly -1 and a white pixel
// (255) to exactly +1.
//
// # Basic Usage
//
//	import (
//	    "github.com/seedling-ml/seedling/transform"
//	    "github.com/seedling-ml/seedling/backend/cpu"
//	)
//
//	backend := cpu.New()
//	input, err := transform.ToTensor(transform.Range, img, backend)
//	logits := model.Forward(input)
//
// Normalize.Invert maps model-space values back to raw bytes, which the
// render tooling uses to display normalized tensors.
package transform
