package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/seedling-ml/seedling/internal/digit"
)

// ReadCSV decodes Kaggle-style MNIST rows: label,pixel0,...,pixel783.
// A leading header row is skipped when present.
func ReadCSV(r io.Reader, opts ...Option) (*Dataset, error) {
	cfg := applyOptions(opts)

	reader := csv.NewReader(r)
	var (
		images []digit.Image
		labels []uint8
		row    int
	)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		row++
		if row == 1 && len(record) > 0 && record[0] == "label" {
			continue
		}
		if len(record) != 1+digit.NumPixels {
			return nil, fmt.Errorf("row %d: got %d fields, want %d", row, len(record), 1+digit.NumPixels)
		}

		label, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid label: %w", row, err)
		}
		if label < 0 || label > 9 {
			return nil, fmt.Errorf("row %d: label %d out of range [0, 9]", row, label)
		}

		pixels := make([]uint8, digit.NumPixels)
		for j := 0; j < digit.NumPixels; j++ {
			v, err := strconv.Atoi(record[j+1])
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid pixel %d: %w", row, j, err)
			}
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("row %d: pixel %d value %d out of range [0, 255]", row, j, v)
			}
			pixels[j] = uint8(v)
		}

		images = append(images, digit.Image(pixels))
		labels = append(labels, uint8(label))
		if cfg.maxSamples > 0 && len(images) == cfg.maxSamples {
			break
		}
	}

	if len(images) == 0 {
		return nil, fmt.Errorf("csv: no data rows")
	}
	return &Dataset{images: images, labels: labels}, nil
}

// LoadCSV reads a Kaggle-style CSV file from disk.
func LoadCSV(path string, opts ...Option) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := ReadCSV(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
