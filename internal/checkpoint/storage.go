package checkpoint

import (
	"encoding/binary"
	"fmt"

	"github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"

	"github.com/seedling-ml/seedling/internal/tensor"
)

// Storage selects the on-disk encoding for float32 tensors. Other
// dtypes are always stored raw.
type Storage int

const (
	// StorageFloat32 stores float32 tensors unchanged.
	StorageFloat32 Storage = iota
	// StorageFloat16 stores float32 tensors as IEEE 754 half precision.
	StorageFloat16
	// StorageBFloat16 stores float32 tensors as bfloat16.
	StorageBFloat16
)

func (s Storage) String() string {
	switch s {
	case StorageFloat32:
		return DTypeFloat32
	case StorageFloat16:
		return DTypeFloat16
	case StorageBFloat16:
		return DTypeBFloat16
	default:
		return "unknown"
	}
}

// encode returns the on-disk bytes and header dtype string for a
// tensor. The returned slice aliases the tensor for raw storage and is
// freshly allocated for half-precision encodings.
func encode(raw *tensor.RawTensor, storage Storage) ([]byte, string, error) {
	if raw.DType() != tensor.Float32 || storage == StorageFloat32 {
		return raw.Data(), raw.DType().String(), nil
	}

	values := raw.AsFloat32()
	switch storage {
	case StorageFloat16:
		buf := make([]byte, len(values)*2)
		for i, v := range values {
			binary.LittleEndian.PutUint16(buf[i*2:], float16.Fromfloat32(v).Bits())
		}
		return buf, DTypeFloat16, nil
	case StorageBFloat16:
		return bfloat16.EncodeFloat32(values), DTypeBFloat16, nil
	default:
		return nil, "", fmt.Errorf("unknown storage encoding %d", int(storage))
	}
}

// decode expands an encoded data region into a RawTensor on the given
// device. Half-precision encodings widen back to float32.
func decode(name, dtype string, shape tensor.Shape, data []byte, device tensor.Device) (*tensor.RawTensor, error) {
	switch dtype {
	case DTypeFloat16:
		raw, err := tensor.NewRaw(shape, tensor.Float32, device)
		if err != nil {
			return nil, fmt.Errorf("tensor %s: %w", name, err)
		}
		dst := raw.AsFloat32()
		if len(data) != 2*len(dst) {
			return nil, fmt.Errorf("tensor %s: %d bytes for %d float16 values", name, len(data), len(dst))
		}
		for i := range dst {
			dst[i] = float16.Frombits(binary.LittleEndian.Uint16(data[i*2:])).Float32()
		}
		return raw, nil

	case DTypeBFloat16:
		raw, err := tensor.NewRaw(shape, tensor.Float32, device)
		if err != nil {
			return nil, fmt.Errorf("tensor %s: %w", name, err)
		}
		values := bfloat16.DecodeFloat32(data)
		if len(values) != raw.NumElements() {
			return nil, fmt.Errorf("tensor %s: %d bfloat16 values for shape %v", name, len(values), shape)
		}
		copy(raw.AsFloat32(), values)
		return raw, nil

	default:
		dt, ok := parseDType(dtype)
		if !ok {
			return nil, fmt.Errorf("tensor %s: unsupported dtype %q", name, dtype)
		}
		raw, err := tensor.NewRaw(shape, dt, device)
		if err != nil {
			return nil, fmt.Errorf("tensor %s: %w", name, err)
		}
		if len(data) != raw.ByteSize() {
			return nil, fmt.Errorf("tensor %s: %d bytes for shape %v dtype %s", name, len(data), shape, dtype)
		}
		copy(raw.Data(), data)
		return raw, nil
	}
}
