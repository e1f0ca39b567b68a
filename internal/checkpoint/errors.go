package checkpoint

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by readers.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
)

// ValidationError reports why a header failed validation.
type ValidationError struct {
	Type    string // Kind of failure, e.g. "offset_overlap"
	Tensor  string // Primary tensor involved
	Tensor2 string // Secondary tensor, for overlap errors
	Details string
}

func (e *ValidationError) Error() string {
	if e.Tensor2 != "" {
		return fmt.Sprintf("%s: tensors %q and %q: %s", e.Type, e.Tensor, e.Tensor2, e.Details)
	}
	if e.Tensor != "" {
		return fmt.Sprintf("%s: tensor %q: %s", e.Type, e.Tensor, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Details)
}
