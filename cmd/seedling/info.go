package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/seedling-ml/seedling/dataset"
	"github.com/seedling-ml/seedling/internal/config"
)

func newInfoCmd(cfg config.Config) *cobra.Command {
	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Summarize the datasets in a directory",
		Args:  cobra.NoArgs,
		RunE:  InfoHandler,
	}

	infoCmd.Flags().String("data", cfg.DataDir, "Directory holding the MNIST files")
	infoCmd.Flags().Bool("verify", false, "Check file digests before decoding")

	return infoCmd
}

func InfoHandler(cmd *cobra.Command, args []string) error {
	dir, err := cmd.Flags().GetString("data")
	if err != nil {
		return err
	}
	verify, err := cmd.Flags().GetBool("verify")
	if err != nil {
		return err
	}

	var opts []dataset.Option
	if verify {
		opts = append(opts, dataset.WithDigestCheck())
	}

	splits := []struct {
		name  string
		train bool
	}{
		{"train", true},
		{"test", false},
	}

	var (
		rows    [][]string
		classes [][]string
		loadErr error
	)
	classHeader := []string{"CLASS"}

	for _, split := range splits {
		ds, err := dataset.LoadDir(dir, split.train, opts...)
		if err != nil {
			slog.Warn("skipping split", "split", split.name, "error", err)
			loadErr = err
			continue
		}

		stats := ds.Stats()
		rows = append(rows, []string{
			split.name,
			strconv.Itoa(stats.Samples),
			fmt.Sprintf("%.4f", stats.Mean),
			fmt.Sprintf("%.4f", stats.Std),
		})

		classHeader = append(classHeader, strings.ToUpper(split.name))
		if classes == nil {
			classes = make([][]string, 10)
			for c := range classes {
				classes[c] = []string{strconv.Itoa(c)}
			}
		}
		for c := 0; c < 10; c++ {
			classes[c] = append(classes[c], strconv.Itoa(stats.Classes[c]))
		}
	}

	if len(rows) == 0 {
		return fmt.Errorf("no datasets in %s: %w", dir, loadErr)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"SPLIT", "SAMPLES", "MEAN", "STD"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(rows)
	table.Render()

	fmt.Println()

	table = tablewriter.NewWriter(os.Stdout)
	table.SetHeader(classHeader)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(classes)
	table.Render()

	return nil
}
