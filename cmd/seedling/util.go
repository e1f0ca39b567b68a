package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/seedling-ml/seedling/backend/cpu"
	"github.com/seedling-ml/seedling/checkpoint"
	"github.com/seedling-ml/seedling/dataset"
	"github.com/seedling-ml/seedling/model"
)

// loadModel restores an MLP from a checkpoint, sizing the hidden layer
// from the stored fc1 weights so no flag has to repeat it.
func loadModel(path string, backend *cpu.Backend) (*model.MLP[*cpu.Backend], checkpoint.Header, error) {
	stateDict, header, err := checkpoint.Load(path)
	if err != nil {
		return nil, checkpoint.Header{}, err
	}

	fc1, ok := stateDict["fc1.weight"]
	if !ok {
		return nil, checkpoint.Header{}, fmt.Errorf("%s has no fc1.weight tensor, not an MLP checkpoint", path)
	}
	shape := fc1.Shape()
	if len(shape) != 2 {
		return nil, checkpoint.Header{}, fmt.Errorf("%s: fc1.weight has shape %v, want 2 dimensions", path, shape)
	}

	m := model.New(backend, model.WithHiddenSize(shape[0]))
	if err := m.LoadStateDict(stateDict); err != nil {
		return nil, checkpoint.Header{}, fmt.Errorf("load %s: %w", path, err)
	}
	return m, header, nil
}

// readImageFile decodes a PNG or JPEG file into a sample, converting to
// grayscale and rescaling to 28x28 when needed.
func readImageFile(path string) (dataset.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return dataset.FromImage(src), nil
}

// splitTrain maps a --split flag value to the loader's train switch.
func splitTrain(split string) (bool, error) {
	switch split {
	case "train":
		return true, nil
	case "test":
		return false, nil
	default:
		return false, fmt.Errorf("unknown split %q (want train or test)", split)
	}
}

// parseStorage maps a --storage flag value to a checkpoint encoding.
func parseStorage(name string) (checkpoint.Storage, error) {
	switch name {
	case "float32":
		return checkpoint.StorageFloat32, nil
	case "float16":
		return checkpoint.StorageFloat16, nil
	case "bfloat16":
		return checkpoint.StorageBFloat16, nil
	default:
		return checkpoint.StorageFloat32, fmt.Errorf("unknown storage %q (want float32, float16 or bfloat16)", name)
	}
}
