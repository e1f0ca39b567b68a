package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/seedling-ml/seedling/backend/cpu"
	"github.com/seedling-ml/seedling/dataset"
	"github.com/seedling-ml/seedling/internal/config"
	"github.com/seedling-ml/seedling/nn"
	"github.com/seedling-ml/seedling/transform"
)

func newPredictCmd(cfg config.Config) *cobra.Command {
	predictCmd := &cobra.Command{
		Use:   "predict [IMAGE]",
		Short: "Classify a digit image",
		Args:  cobra.MaximumNArgs(1),
		RunE:  PredictHandler,
	}

	predictCmd.Flags().String("model", "mlp.seed", "Model checkpoint to load")
	predictCmd.Flags().String("data", cfg.DataDir, "Directory holding the MNIST files")
	predictCmd.Flags().String("split", "test", "Dataset split for --index")
	predictCmd.Flags().Int("index", -1, "Classify a dataset sample instead of a file")

	return predictCmd
}

func PredictHandler(cmd *cobra.Command, args []string) error {
	modelPath, err := cmd.Flags().GetString("model")
	if err != nil {
		return err
	}
	index, err := cmd.Flags().GetInt("index")
	if err != nil {
		return err
	}

	backend := cpu.New()
	m, header, err := loadModel(modelPath, backend)
	if err != nil {
		return err
	}
	slog.Debug("model loaded", "path", modelPath, "type", header.ModelType, "hidden", m.HiddenSize())

	var (
		img   dataset.Image
		label = -1
	)
	switch {
	case len(args) == 1:
		img, err = readImageFile(args[0])
		if err != nil {
			return err
		}
	case index >= 0:
		dir, err := cmd.Flags().GetString("data")
		if err != nil {
			return err
		}
		split, err := cmd.Flags().GetString("split")
		if err != nil {
			return err
		}
		train, err := splitTrain(split)
		if err != nil {
			return err
		}

		ds, err := dataset.LoadDir(dir, train, dataset.WithMaxSamples(index+1))
		if err != nil {
			return err
		}
		if index >= ds.Len() {
			return fmt.Errorf("index %d out of range for %s split with %d samples", index, split, ds.Len())
		}
		img = ds.Image(index)
		label = ds.Label(index)
	default:
		return errors.New("provide an image file or --index")
	}

	input, err := transform.ToTensor(transform.Range, img, backend)
	if err != nil {
		return err
	}

	probs := m.Probabilities(input).Data()
	class := nn.Argmax(probs)

	rows := make([][]string, 0, len(probs))
	for c, p := range probs {
		marker := ""
		if c == class {
			marker = "*"
		}
		rows = append(rows, []string{strconv.Itoa(c), fmt.Sprintf("%.4f", p), marker})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"CLASS", "PROBABILITY", ""})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(rows)
	table.Render()

	fmt.Println()
	fmt.Printf("prediction: %d (%.1f%% confidence)\n", class, 100*probs[class])
	if label >= 0 {
		fmt.Printf("label: %d\n", label)
	}
	return nil
}
