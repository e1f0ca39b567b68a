package checkpoint

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/seedling-ml/seedling/internal/tensor"
)

const seedlingVersion = "0.1.0"

// Writer writes .seed files.
type Writer struct {
	file   *os.File
	closed bool
}

// NewWriter creates a writer for the given path, truncating any
// existing file.
func NewWriter(path string) (*Writer, error) {
	//nolint:gosec // G304: the caller chooses where to save the model
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create checkpoint: %w", err)
	}
	return &Writer{file: file}, nil
}

// WriteStateDict writes all tensors with the given header fields.
// Header.Tensors, FormatVersion, SeedlingVersion and CreatedAt are
// filled in; the caller sets ModelType and Metadata.
func (w *Writer) WriteStateDict(stateDict map[string]*tensor.RawTensor, header Header, storage Storage) error {
	if w.closed {
		return fmt.Errorf("writer is closed")
	}
	return WriteTo(w.file, stateDict, header, storage)
}

// Close closes the underlying file. Closing twice is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

// WriteTo streams a checkpoint to an io.Writer. Useful for buffers and
// network connections.
func WriteTo(writer io.Writer, stateDict map[string]*tensor.RawTensor, header Header, storage Storage) error {
	header.FormatVersion = FormatVersion
	header.SeedlingVersion = seedlingVersion
	if header.CreatedAt.IsZero() {
		header.CreatedAt = time.Now().UTC()
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	// Sorted name order keeps the layout independent of map order.
	names := make([]string, 0, len(stateDict))
	for name := range stateDict {
		names = append(names, name)
	}
	sort.Strings(names)

	header.Tensors = make([]TensorMeta, 0, len(stateDict))
	var dataBuf []byte
	var offset int64
	for _, name := range names {
		encoded, dtype, err := encode(stateDict[name], storage)
		if err != nil {
			return fmt.Errorf("encode tensor %s: %w", name, err)
		}
		header.Tensors = append(header.Tensors, TensorMeta{
			Name:   name,
			DType:  dtype,
			Shape:  []int(stateDict[name].Shape()),
			Offset: offset,
			Size:   int64(len(encoded)),
		})
		dataBuf = append(dataBuf, encoded...)
		offset += int64(len(encoded))
	}

	checksum := ComputeChecksum(dataBuf)

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("marshal header: %w", err)
	}

	fixed := make([]byte, FixedHeaderSize)
	copy(fixed[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:8], FormatVersion)
	flags := uint32(0)
	if len(header.Metadata) > 0 {
		flags |= FlagHasMetadata
	}
	binary.LittleEndian.PutUint32(fixed[8:12], flags)
	// 0x0C-0x0F reserved, left zero.
	binary.LittleEndian.PutUint64(fixed[16:24], uint64(len(headerJSON)))
	binary.LittleEndian.PutUint64(fixed[24:32], uint64(len(dataBuf)))
	copy(fixed[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	if _, err := writer.Write(fixed); err != nil {
		return fmt.Errorf("write fixed header: %w", err)
	}
	if _, err := writer.Write(headerJSON); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	pos := int64(FixedHeaderSize) + int64(len(headerJSON))
	if padding := (HeaderAlignment - pos%HeaderAlignment) % HeaderAlignment; padding > 0 {
		if _, err := writer.Write(make([]byte, padding)); err != nil {
			return fmt.Errorf("write padding: %w", err)
		}
	}

	if _, err := writer.Write(dataBuf); err != nil {
		return fmt.Errorf("write tensor data: %w", err)
	}
	return nil
}
