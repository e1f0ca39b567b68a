package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/seedling-ml/seedling/dataset"
	"github.com/seedling-ml/seedling/internal/config"
)

func newRenderCmd(cfg config.Config) *cobra.Command {
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Draw a dataset sample as ASCII art",
		Args:  cobra.NoArgs,
		RunE:  RenderHandler,
	}

	renderCmd.Flags().String("data", cfg.DataDir, "Directory holding the MNIST files")
	renderCmd.Flags().String("split", "test", "Dataset split: train or test")
	renderCmd.Flags().Int("index", 0, "Sample index within the split")
	renderCmd.Flags().String("out", "", "Write the sample as a PNG instead of printing it")

	return renderCmd
}

func RenderHandler(cmd *cobra.Command, args []string) error {
	dir, err := cmd.Flags().GetString("data")
	if err != nil {
		return err
	}
	split, err := cmd.Flags().GetString("split")
	if err != nil {
		return err
	}
	index, err := cmd.Flags().GetInt("index")
	if err != nil {
		return err
	}
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	if index < 0 {
		return fmt.Errorf("index must not be negative, got %d", index)
	}
	train, err := splitTrain(split)
	if err != nil {
		return err
	}

	// Only the prefix up to the requested sample has to be decoded.
	ds, err := dataset.LoadDir(dir, train, dataset.WithMaxSamples(index+1))
	if err != nil {
		return err
	}
	if index >= ds.Len() {
		return fmt.Errorf("index %d out of range for %s split with %d samples", index, split, ds.Len())
	}

	img := ds.Image(index)

	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := png.Encode(f, img.ToGray()); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		fmt.Printf("wrote %s\n", out)
		return nil
	}

	fmt.Print(img.Render())
	fmt.Printf("label: %d\n", ds.Label(index))
	return nil
}
