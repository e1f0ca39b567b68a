// Copyright 2026 Seedling ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset loads MNIST-format digit datasets into memory.
//
// # Overview
//
// This package reads the two formats the dataset is commonly
// distributed in:
//   - IDX binary files (the original Yann LeCun distribution),
//     plain or gzip-compressed, with optional SHA-256 verification
//   - Kaggle-style CSV (label,pixel0,...,pixel783)
//
// Loaded datasets support shuffling, splitting, per-class statistics,
// and batching into native tensors.
//
// # Basic Usage
//
//	import (
//	    "github.com/seedling-ml/seedling/dataset"
//	    "github.com/seedling-ml/seedling/transform"
//	    "github.com/seedling-ml/seedling/backend/cpu"
//	)
//
//	func main() {
//	    ds, err := dataset.LoadDir("data", false) // test split
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    backend := cpu.New()
//	    batches, err := dataset.Batches(ds, 64, transform.Range, backend)
//	    for _, b := range batches {
//	        logits := model.Forward(b.Images)
//	    }
//	}
//
// # Samples
//
// Each sample is an Image, a flat slice of 28x28 uint8 intensities.
// Images render as ASCII art for terminal inspection and convert to and
// from the standard library image types for PNG input and output.
package dataset
