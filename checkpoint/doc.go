// Copyright 2026 Seedling ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package checkpoint saves and loads model state dicts in the Seedling
// native .seed format.
//
// # Overview
//
// A .seed file holds a JSON header describing each tensor, followed by
// the raw tensor data protected by a SHA-256 checksum:
//   - Magic "SEED", format version, header and data sizes
//   - JSON header: library version, model type, tensor metadata, free-form metadata
//   - Tensor data blob, written in sorted name order
//
// Float32 tensors can optionally be stored as float16 or bfloat16 to
// halve the file size. They decode back to float32 on load.
//
// # Basic Usage
//
//	import (
//	    "github.com/seedling-ml/seedling/checkpoint"
//	    "github.com/seedling-ml/seedling/model"
//	    "github.com/seedling-ml/seedling/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    m := model.New(backend)
//
//	    // Save
//	    err := checkpoint.Save("mlp.seed", m.StateDict(),
//	        checkpoint.WithModelType("MLP"),
//	    )
//
//	    // Load
//	    stateDict, header, err := checkpoint.Load("mlp.seed")
//	    err = m.LoadStateDict(stateDict)
//	}
//
// # Validation
//
// Load verifies the data checksum and validates the header at
// ValidationStrict by default. Pass WithValidation or SkipChecksum to
// relax either check. Inspect reads only the header, for tooling that
// lists a file's contents.
package checkpoint
