// Copyright 2026 Seedling ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package checkpoint

import (
	"github.com/seedling-ml/seedling/internal/checkpoint"
	"github.com/seedling-ml/seedling/internal/tensor"
)

// Header describes the contents of a .seed file.
type Header = checkpoint.Header

// TensorMeta describes one tensor entry in a .seed file header.
type TensorMeta = checkpoint.TensorMeta

// Storage selects how float32 tensors are encoded on disk.
type Storage = checkpoint.Storage

// Storage encodings.
const (
	StorageFloat32  Storage = checkpoint.StorageFloat32
	StorageFloat16  Storage = checkpoint.StorageFloat16
	StorageBFloat16 Storage = checkpoint.StorageBFloat16
)

// ValidationLevel controls how strictly file headers are checked on load.
type ValidationLevel = checkpoint.ValidationLevel

// Validation levels.
const (
	ValidationStrict ValidationLevel = checkpoint.ValidationStrict
	ValidationNormal ValidationLevel = checkpoint.ValidationNormal
	ValidationNone   ValidationLevel = checkpoint.ValidationNone
)

// Sentinel errors returned when a file fails to load.
var (
	ErrChecksumMismatch   = checkpoint.ErrChecksumMismatch
	ErrInvalidMagic       = checkpoint.ErrInvalidMagic
	ErrUnsupportedVersion = checkpoint.ErrUnsupportedVersion
	ErrHeaderTooLarge     = checkpoint.ErrHeaderTooLarge
)

// SaveOption configures Save.
type SaveOption = checkpoint.SaveOption

// WithModelType records the model type name in the file header.
func WithModelType(modelType string) SaveOption {
	return checkpoint.WithModelType(modelType)
}

// WithMetadata records free-form key/value metadata in the file header.
func WithMetadata(metadata map[string]string) SaveOption {
	return checkpoint.WithMetadata(metadata)
}

// WithStorage selects the on-disk encoding for float32 tensors.
// Half-precision encodings halve the file size and decode back to
// float32 on load.
func WithStorage(storage Storage) SaveOption {
	return checkpoint.WithStorage(storage)
}

// Save writes a state dict to a .seed file.
//
// Example:
//
//	err := checkpoint.Save("model.seed", model.StateDict(),
//	    checkpoint.WithModelType("MLP"),
//	)
func Save(path string, stateDict map[string]*tensor.RawTensor, opts ...SaveOption) error {
	return checkpoint.Save(path, stateDict, opts...)
}

// LoadOption configures Load.
type LoadOption = checkpoint.LoadOption

// WithValidation sets the header validation level.
func WithValidation(level ValidationLevel) LoadOption {
	return checkpoint.WithValidation(level)
}

// SkipChecksum disables data checksum verification on load.
func SkipChecksum() LoadOption {
	return checkpoint.SkipChecksum()
}

// Load reads a state dict and header from a .seed file.
//
// Example:
//
//	stateDict, header, err := checkpoint.Load("model.seed")
//	if err != nil {
//	    return err
//	}
//	err = model.LoadStateDict(stateDict)
func Load(path string, opts ...LoadOption) (map[string]*tensor.RawTensor, Header, error) {
	return checkpoint.Load(path, opts...)
}

// Inspect reads only the header of a .seed file, skipping the data
// checksum. Useful for listing tensors without paying for a full load.
func Inspect(path string) (Header, error) {
	return checkpoint.Inspect(path)
}
