package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/seedling-ml/seedling/checkpoint"
)

func newShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Show checkpoint metadata and tensors",
		Args:  cobra.ExactArgs(1),
		RunE:  ShowHandler,
	}

	return showCmd
}

func ShowHandler(cmd *cobra.Command, args []string) error {
	header, err := checkpoint.Inspect(args[0])
	if err != nil {
		return err
	}

	var total int64
	for _, meta := range header.Tensors {
		total += meta.Size
	}

	tableRender := func(section string, rows func() [][]string) {
		fmt.Println(" ", section)

		table := tablewriter.NewWriter(os.Stdout)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetBorder(false)
		table.SetNoWhiteSpace(true)
		table.SetTablePadding("    ")
		table.AppendBulk(rows())
		table.Render()

		fmt.Println()
	}

	tableRender("Model", func() (rows [][]string) {
		rows = append(rows,
			[]string{"", "type", header.ModelType},
			[]string{"", "format version", strconv.Itoa(header.FormatVersion)},
			[]string{"", "written by", "seedling " + header.SeedlingVersion},
			[]string{"", "created", header.CreatedAt.Format(time.RFC3339)},
			[]string{"", "tensors", strconv.Itoa(len(header.Tensors))},
			[]string{"", "data size", humanize.Bytes(uint64(total))},
		)
		return
	})

	if len(header.Metadata) > 0 {
		tableRender("Metadata", func() (rows [][]string) {
			keys := make([]string, 0, len(header.Metadata))
			for key := range header.Metadata {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			for _, key := range keys {
				rows = append(rows, []string{"", key, header.Metadata[key]})
			}
			return
		})
	}

	tableRender("Tensors", func() (rows [][]string) {
		for _, meta := range header.Tensors {
			rows = append(rows, []string{
				"", meta.Name, meta.DType, fmt.Sprint(meta.Shape), humanize.Bytes(uint64(meta.Size)),
			})
		}
		return
	})

	return nil
}
