// Package dataset loads MNIST samples from the classic IDX files or a
// Kaggle-style CSV and serves them as shuffled splits and mini-batches.
package dataset

import (
	"bufio"
	"compress/gzip"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/seedling-ml/seedling/internal/digit"
)

// IDX magic numbers from the classic MNIST distribution.
const (
	imageMagic = 2051
	labelMagic = 2049
)

// maxIDXCount caps the sample count read from an IDX header, well above
// the 60k training set, so a corrupt count cannot drive a huge allocation.
const maxIDXCount = 1 << 24

// The classic distribution's file names.
const (
	TrainImagesFile = "train-images-idx3-ubyte"
	TrainLabelsFile = "train-labels-idx1-ubyte"
	TestImagesFile  = "t10k-images-idx3-ubyte"
	TestLabelsFile  = "t10k-labels-idx1-ubyte"
)

// KnownDigests maps gzipped file names from the classic distribution to
// their SHA-256 checksums, for optional verification before decoding.
var KnownDigests = map[string]string{
	TrainImagesFile + ".gz": "440fcabf73cc546fa21475e81ea370265605f56be210a4024d2ca8f203523609",
	TrainLabelsFile + ".gz": "3552534a0a558bbed6aed32b30c495cca23d567ec52cac8be1a0730e8010255c",
	TestImagesFile + ".gz":  "8d422c7b0a1c1c79245a5bcf07fe86e33eeafee792b84584aec276f5a2dbc4e6",
	TestLabelsFile + ".gz":  "f7ae60f92e00ec6debd23a6088c31dbd2371eca3ffa0defaefb259924204aec6",
}

// ReadImages decodes an IDX image file.
//
// Layout: magic 2051, image count, row count, column count (uint32
// big-endian each), then one unsigned byte per pixel.
func ReadImages(r io.Reader) ([]digit.Image, error) {
	var h struct {
		Magic, Count, Rows, Cols uint32
	}
	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		return nil, fmt.Errorf("read image header: %w", err)
	}
	if h.Magic != imageMagic {
		return nil, fmt.Errorf("invalid image magic: got %d, want %d", h.Magic, imageMagic)
	}
	if h.Rows != digit.Height || h.Cols != digit.Width {
		return nil, fmt.Errorf("unsupported image size %dx%d, want %dx%d", h.Rows, h.Cols, digit.Height, digit.Width)
	}
	if h.Count > maxIDXCount {
		return nil, fmt.Errorf("implausible image count %d", h.Count)
	}

	n := int(h.Count)
	buf := make([]uint8, n*digit.NumPixels)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("read %d images: %w", n, err)
	}

	images := make([]digit.Image, n)
	for i := range images {
		images[i] = digit.Image(buf[i*digit.NumPixels : (i+1)*digit.NumPixels])
	}
	return images, nil
}

// ReadLabels decodes an IDX label file.
//
// Layout: magic 2049, label count (uint32 big-endian each), then one
// unsigned byte per label.
func ReadLabels(r io.Reader) ([]uint8, error) {
	var h struct {
		Magic, Count uint32
	}
	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		return nil, fmt.Errorf("read label header: %w", err)
	}
	if h.Magic != labelMagic {
		return nil, fmt.Errorf("invalid label magic: got %d, want %d", h.Magic, labelMagic)
	}
	if h.Count > maxIDXCount {
		return nil, fmt.Errorf("implausible label count %d", h.Count)
	}

	labels := make([]uint8, h.Count)
	if _, err := io.ReadFull(r, labels); err != nil {
		return nil, fmt.Errorf("read %d labels: %w", h.Count, err)
	}
	for i, v := range labels {
		if v > 9 {
			return nil, fmt.Errorf("label %d out of range at index %d", v, i)
		}
	}
	return labels, nil
}

// Load reads a matching pair of IDX image and label files. Both files
// load concurrently, and gzipped files are decompressed transparently.
func Load(imagePath, labelPath string, opts ...Option) (*Dataset, error) {
	cfg := applyOptions(opts)

	var (
		images []digit.Image
		labels []uint8
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		v, err := loadFile(imagePath, cfg, ReadImages)
		images = v
		return err
	})
	g.Go(func() error {
		v, err := loadFile(labelPath, cfg, ReadLabels)
		labels = v
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(images) != len(labels) {
		return nil, fmt.Errorf("dataset: %d images but %d labels", len(images), len(labels))
	}
	return &Dataset{images: images, labels: labels}, nil
}

// LoadDir loads the train or test pair from a directory holding the
// classic file names, plain or gzipped.
func LoadDir(dir string, train bool, opts ...Option) (*Dataset, error) {
	imageName, labelName := TestImagesFile, TestLabelsFile
	if train {
		imageName, labelName = TrainImagesFile, TrainLabelsFile
	}

	imagePath, err := resolveFile(dir, imageName)
	if err != nil {
		return nil, err
	}
	labelPath, err := resolveFile(dir, labelName)
	if err != nil {
		return nil, err
	}
	return Load(imagePath, labelPath, opts...)
}

// resolveFile returns the plain file when present, the gzipped one
// otherwise.
func resolveFile(dir, name string) (string, error) {
	for _, candidate := range []string{name, name + ".gz"} {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("dataset: neither %s nor %s.gz found in %s", name, name, dir)
}

// loadFile opens, optionally verifies, and decodes one IDX file with
// the given reader, applying the sample cap afterwards.
func loadFile[T any](path string, cfg loadConfig, read func(io.Reader) ([]T, error)) ([]T, error) {
	if cfg.verifyDigest {
		want, ok := KnownDigests[filepath.Base(path)]
		if !ok {
			return nil, fmt.Errorf("dataset: no known digest for %q", filepath.Base(path))
		}
		if err := VerifyDigest(path, want); err != nil {
			return nil, err
		}
	}

	r, err := openMaybeGzip(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	items, err := read(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.maxSamples > 0 && len(items) > cfg.maxSamples {
		items = items[:cfg.maxSamples]
	}
	return items, nil
}

// VerifyDigest compares the file's SHA-256 checksum, as stored on disk,
// against the expected lowercase hex digest.
func VerifyDigest(path, wantHex string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return fmt.Errorf("hash %s: %w", path, err)
	}
	got := hex.EncodeToString(h.Sum(nil))
	if got != strings.ToLower(wantHex) {
		return fmt.Errorf("digest mismatch for %s: got %s, want %s", path, got, wantHex)
	}
	return nil
}

// openMaybeGzip opens path and sniffs the gzip magic, so compressed
// files work regardless of their extension.
func openMaybeGzip(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(f)
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open gzip %s: %w", path, err)
		}
		return &gzipReadCloser{Reader: gz, file: f}, nil
	}
	return &bufferedReadCloser{Reader: br, file: f}, nil
}

type gzipReadCloser struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipReadCloser) Close() error {
	gzErr := g.Reader.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return gzErr
}

type bufferedReadCloser struct {
	*bufio.Reader
	file *os.File
}

func (b *bufferedReadCloser) Close() error {
	return b.file.Close()
}
