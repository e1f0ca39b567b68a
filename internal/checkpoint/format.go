package checkpoint

import (
	"time"

	"github.com/seedling-ml/seedling/internal/tensor"
)

// Format constants.
const (
	MagicBytes      = "SEED"
	FormatVersion   = 1
	FixedHeaderSize = 64   // Fixed header occupies 0x00-0x3F
	HeaderAlignment = 64   // Tensor data starts on a 64-byte boundary
	ChecksumOffset  = 0x20 // SHA-256 of the data section
	ChecksumSize    = 32
)

// Flags stored in the fixed header.
const (
	FlagHasMetadata uint32 = 1 << 0
)

// Data type strings used in the JSON header. float16 and bfloat16 are
// storage-only encodings; in memory both load as float32.
const (
	DTypeFloat32  = "float32"
	DTypeFloat64  = "float64"
	DTypeInt32    = "int32"
	DTypeInt64    = "int64"
	DTypeUint8    = "uint8"
	DTypeBool     = "bool"
	DTypeFloat16  = "float16"
	DTypeBFloat16 = "bfloat16"
)

// Header is the JSON metadata block of a .seed file.
type Header struct {
	FormatVersion   int               `json:"format_version"`
	SeedlingVersion string            `json:"seedling_version"`
	ModelType       string            `json:"model_type"`
	CreatedAt       time.Time         `json:"created_at"`
	Tensors         []TensorMeta      `json:"tensors"`
	Metadata        map[string]string `json:"metadata"`
}

// TensorMeta describes one tensor in the data section.
type TensorMeta struct {
	Name   string `json:"name"`
	DType  string `json:"dtype"`
	Shape  []int  `json:"shape"`
	Offset int64  `json:"offset"` // Bytes from the start of the data section
	Size   int64  `json:"size"`   // Encoded size in bytes
}

// parseDType maps a header dtype string to an in-memory DataType.
// Half-precision encodings are handled by decode, not here.
func parseDType(s string) (tensor.DataType, bool) {
	switch s {
	case DTypeFloat32:
		return tensor.Float32, true
	case DTypeFloat64:
		return tensor.Float64, true
	case DTypeInt32:
		return tensor.Int32, true
	case DTypeInt64:
		return tensor.Int64, true
	case DTypeUint8:
		return tensor.Uint8, true
	case DTypeBool:
		return tensor.Bool, true
	default:
		return 0, false
	}
}
