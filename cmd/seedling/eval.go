package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/seedling-ml/seedling/backend/cpu"
	"github.com/seedling-ml/seedling/dataset"
	"github.com/seedling-ml/seedling/internal/config"
	"github.com/seedling-ml/seedling/transform"
)

func newEvalCmd(cfg config.Config) *cobra.Command {
	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "Measure model accuracy over a dataset split",
		Args:  cobra.NoArgs,
		RunE:  EvalHandler,
	}

	evalCmd.Flags().String("model", "mlp.seed", "Model checkpoint to load")
	evalCmd.Flags().String("data", cfg.DataDir, "Directory holding the MNIST files")
	evalCmd.Flags().String("split", "test", "Dataset split: train or test")
	evalCmd.Flags().Int("batch", 256, "Samples per forward pass")
	evalCmd.Flags().Int("limit", 0, "Evaluate at most this many samples, 0 for all")

	return evalCmd
}

func EvalHandler(cmd *cobra.Command, args []string) error {
	modelPath, err := cmd.Flags().GetString("model")
	if err != nil {
		return err
	}
	dir, err := cmd.Flags().GetString("data")
	if err != nil {
		return err
	}
	split, err := cmd.Flags().GetString("split")
	if err != nil {
		return err
	}
	batchSize, err := cmd.Flags().GetInt("batch")
	if err != nil {
		return err
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	train, err := splitTrain(split)
	if err != nil {
		return err
	}

	backend := cpu.New()
	m, _, err := loadModel(modelPath, backend)
	if err != nil {
		return err
	}

	var opts []dataset.Option
	if limit > 0 {
		opts = append(opts, dataset.WithMaxSamples(limit))
	}
	ds, err := dataset.LoadDir(dir, train, opts...)
	if err != nil {
		return err
	}

	batches, err := dataset.Batches(ds, batchSize, transform.Range, backend)
	if err != nil {
		return err
	}

	start := time.Now()

	var correct, total int
	var classTotal, classCorrect [10]int
	for _, batch := range batches {
		preds := m.PredictBatch(batch.Images)
		labels := batch.Labels.Data()
		for i, pred := range preds {
			label := int(labels[i])
			classTotal[label]++
			total++
			if pred == label {
				classCorrect[label]++
				correct++
			}
		}
	}
	elapsed := time.Since(start)

	if total == 0 {
		return fmt.Errorf("no samples in %s split", split)
	}
	slog.Debug("evaluation finished", "samples", total, "batches", len(batches), "elapsed", elapsed)

	rows := make([][]string, 0, 10)
	for c := 0; c < 10; c++ {
		accuracy := "-"
		if classTotal[c] > 0 {
			accuracy = fmt.Sprintf("%.2f%%", 100*float64(classCorrect[c])/float64(classTotal[c]))
		}
		rows = append(rows, []string{
			strconv.Itoa(c),
			strconv.Itoa(classTotal[c]),
			strconv.Itoa(classCorrect[c]),
			accuracy,
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"CLASS", "SAMPLES", "CORRECT", "ACCURACY"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(rows)
	table.Render()

	fmt.Println()
	fmt.Printf("accuracy %.2f%% (%d/%d) in %s\n",
		100*float64(correct)/float64(total), correct, total, elapsed.Round(time.Millisecond))
	return nil
}
