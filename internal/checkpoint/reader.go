package checkpoint

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/seedling-ml/seedling/internal/tensor"
)

// Reader reads .seed files.
type Reader struct {
	file       *os.File
	header     Header
	flags      uint32
	dataOffset int64
	dataSize   int64
	checksum   [32]byte
	opts       ReaderOptions
	closed     bool
}

// ReaderOptions configures how a file is opened.
type ReaderOptions struct {
	// SkipChecksum disables the SHA-256 verification of the data
	// section. Faster, but corruption goes unnoticed.
	SkipChecksum bool

	// ValidationLevel controls header validation strictness.
	ValidationLevel ValidationLevel
}

// NewReader opens a .seed file with strict validation.
func NewReader(path string) (*Reader, error) {
	return NewReaderWithOptions(path, ReaderOptions{ValidationLevel: ValidationStrict})
}

// NewReaderWithOptions opens a .seed file with the given options.
func NewReaderWithOptions(path string, opts ReaderOptions) (*Reader, error) {
	//nolint:gosec // G304: the caller chooses which model file to load
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open checkpoint: %w", err)
	}

	r := &Reader{file: file, opts: opts}
	if err := r.parseHeader(); err != nil {
		_ = file.Close()
		return nil, err
	}

	if err := ValidateHeader(&r.header, r.dataSize, opts.ValidationLevel); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return r, nil
}

func (r *Reader) parseHeader() error {
	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r.file, fixed); err != nil {
		return fmt.Errorf("read fixed header: %w", err)
	}

	if string(fixed[0:4]) != MagicBytes {
		return ErrInvalidMagic
	}
	if version := binary.LittleEndian.Uint32(fixed[4:8]); version != FormatVersion {
		return fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, version, FormatVersion)
	}
	r.flags = binary.LittleEndian.Uint32(fixed[8:12])

	headerSize := binary.LittleEndian.Uint64(fixed[16:24])
	if headerSize > MaxHeaderSize {
		return ErrHeaderTooLarge
	}
	r.dataSize = int64(binary.LittleEndian.Uint64(fixed[24:32])) //nolint:gosec // G115: bounded by the file size check below
	copy(r.checksum[:], fixed[ChecksumOffset:ChecksumOffset+ChecksumSize])

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r.file, headerJSON); err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	if err := json.Unmarshal(headerJSON, &r.header); err != nil {
		return fmt.Errorf("parse header JSON: %w", err)
	}

	pos := int64(FixedHeaderSize) + int64(headerSize) //nolint:gosec // G115: headerSize <= MaxHeaderSize
	r.dataOffset = pos + (HeaderAlignment-pos%HeaderAlignment)%HeaderAlignment

	info, err := r.file.Stat()
	if err != nil {
		return fmt.Errorf("stat checkpoint: %w", err)
	}
	if got := info.Size() - r.dataOffset; got != r.dataSize {
		return fmt.Errorf("data size mismatch: header says %d bytes, file has %d", r.dataSize, got)
	}

	if !r.opts.SkipChecksum {
		if _, err := r.file.Seek(r.dataOffset, io.SeekStart); err != nil {
			return fmt.Errorf("seek to data: %w", err)
		}
		computed, err := ComputeChecksumReader(io.LimitReader(r.file, r.dataSize))
		if err != nil {
			return fmt.Errorf("checksum data: %w", err)
		}
		if err := ValidateChecksum(computed, r.checksum); err != nil {
			return err
		}
	}

	return nil
}

// Header returns the parsed JSON header.
func (r *Reader) Header() Header {
	return r.header
}

// Metadata returns the header's metadata map.
func (r *Reader) Metadata() map[string]string {
	return r.header.Metadata
}

// TensorNames lists the tensors in file order.
func (r *Reader) TensorNames() []string {
	names := make([]string, len(r.header.Tensors))
	for i, meta := range r.header.Tensors {
		names[i] = meta.Name
	}
	return names
}

// TensorInfo returns the metadata for a named tensor.
func (r *Reader) TensorInfo(name string) (*TensorMeta, error) {
	for _, meta := range r.header.Tensors {
		if meta.Name == name {
			return &meta, nil
		}
	}
	return nil, fmt.Errorf("tensor %s not found", name)
}

// ReadTensorData returns the encoded bytes of a named tensor.
func (r *Reader) ReadTensorData(name string) ([]byte, error) {
	if r.closed {
		return nil, fmt.Errorf("reader is closed")
	}
	meta, err := r.TensorInfo(name)
	if err != nil {
		return nil, err
	}

	if _, err := r.file.Seek(r.dataOffset+meta.Offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to tensor %s: %w", name, err)
	}
	data := make([]byte, meta.Size)
	if _, err := io.ReadFull(r.file, data); err != nil {
		return nil, fmt.Errorf("read tensor %s: %w", name, err)
	}
	return data, nil
}

// LoadTensor reads and decodes a single tensor onto the given device.
func (r *Reader) LoadTensor(name string, device tensor.Device) (*tensor.RawTensor, error) {
	meta, err := r.TensorInfo(name)
	if err != nil {
		return nil, err
	}

	shape := tensor.Shape(meta.Shape)
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("tensor %s: invalid shape: %w", name, err)
	}

	data, err := r.ReadTensorData(name)
	if err != nil {
		return nil, err
	}
	return decode(name, meta.DType, shape, data, device)
}

// ReadStateDict loads every tensor into a state dictionary.
func (r *Reader) ReadStateDict(device tensor.Device) (map[string]*tensor.RawTensor, error) {
	if r.closed {
		return nil, fmt.Errorf("reader is closed")
	}

	stateDict := make(map[string]*tensor.RawTensor, len(r.header.Tensors))
	for _, meta := range r.header.Tensors {
		raw, err := r.LoadTensor(meta.Name, device)
		if err != nil {
			return nil, err
		}
		stateDict[meta.Name] = raw
	}
	return stateDict, nil
}

// Close closes the underlying file. Closing twice is a no-op.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.file.Close()
}
