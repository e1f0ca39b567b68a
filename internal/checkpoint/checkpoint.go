package checkpoint

import (
	"github.com/seedling-ml/seedling/internal/tensor"
)

// SaveOption configures Save.
type SaveOption func(*saveConfig)

type saveConfig struct {
	modelType string
	metadata  map[string]string
	storage   Storage
}

// WithModelType records the model architecture name in the header.
func WithModelType(modelType string) SaveOption {
	return func(c *saveConfig) {
		c.modelType = modelType
	}
}

// WithMetadata attaches free-form key/value metadata to the header.
func WithMetadata(metadata map[string]string) SaveOption {
	return func(c *saveConfig) {
		c.metadata = metadata
	}
}

// WithStorage selects the on-disk encoding for float32 tensors.
func WithStorage(storage Storage) SaveOption {
	return func(c *saveConfig) {
		c.storage = storage
	}
}

// Save writes a state dictionary to path as a .seed file.
func Save(path string, stateDict map[string]*tensor.RawTensor, opts ...SaveOption) error {
	cfg := saveConfig{storage: StorageFloat32}
	for _, opt := range opts {
		opt(&cfg)
	}

	w, err := NewWriter(path)
	if err != nil {
		return err
	}
	header := Header{
		ModelType: cfg.modelType,
		Metadata:  cfg.metadata,
	}
	if err := w.WriteStateDict(stateDict, header, cfg.storage); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	validation   ValidationLevel
	skipChecksum bool
}

// WithValidation sets the header validation level for loading.
func WithValidation(level ValidationLevel) LoadOption {
	return func(c *loadConfig) {
		c.validation = level
	}
}

// SkipChecksum disables SHA-256 verification on load.
func SkipChecksum() LoadOption {
	return func(c *loadConfig) {
		c.skipChecksum = true
	}
}

// Load reads a .seed file into a CPU state dictionary and returns the
// parsed header alongside it.
func Load(path string, opts ...LoadOption) (map[string]*tensor.RawTensor, Header, error) {
	cfg := loadConfig{validation: ValidationStrict}
	for _, opt := range opts {
		opt(&cfg)
	}

	r, err := NewReaderWithOptions(path, ReaderOptions{
		SkipChecksum:    cfg.skipChecksum,
		ValidationLevel: cfg.validation,
	})
	if err != nil {
		return nil, Header{}, err
	}
	defer r.Close()

	stateDict, err := r.ReadStateDict(tensor.CPU)
	if err != nil {
		return nil, Header{}, err
	}
	return stateDict, r.Header(), nil
}

// Inspect returns a file's header without reading tensor data or
// verifying the checksum.
func Inspect(path string) (Header, error) {
	r, err := NewReaderWithOptions(path, ReaderOptions{
		SkipChecksum:    true,
		ValidationLevel: ValidationNormal,
	})
	if err != nil {
		return Header{}, err
	}
	defer r.Close()
	return r.Header(), nil
}
