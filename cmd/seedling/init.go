package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/seedling-ml/seedling/backend/cpu"
	"github.com/seedling-ml/seedling/checkpoint"
	"github.com/seedling-ml/seedling/internal/config"
	"github.com/seedling-ml/seedling/model"
)

func newInitCmd(cfg config.Config) *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init MODEL",
		Short: "Write a freshly initialized model checkpoint",
		Args:  cobra.ExactArgs(1),
		RunE:  InitHandler,
	}

	initCmd.Flags().Int("hidden", cfg.HiddenSize, "Hidden layer width")
	initCmd.Flags().String("storage", "float32", "Tensor encoding: float32, float16 or bfloat16")

	return initCmd
}

func InitHandler(cmd *cobra.Command, args []string) error {
	hidden, err := cmd.Flags().GetInt("hidden")
	if err != nil {
		return err
	}
	storageName, err := cmd.Flags().GetString("storage")
	if err != nil {
		return err
	}

	if hidden <= 0 {
		return fmt.Errorf("hidden layer width must be positive, got %d", hidden)
	}
	storage, err := parseStorage(storageName)
	if err != nil {
		return err
	}

	m := model.New(cpu.New(), model.WithHiddenSize(hidden))

	err = checkpoint.Save(args[0], m.StateDict(),
		checkpoint.WithModelType("MLP"),
		checkpoint.WithMetadata(map[string]string{"hidden_size": strconv.Itoa(hidden)}),
		checkpoint.WithStorage(storage),
	)
	if err != nil {
		return err
	}

	fi, err := os.Stat(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s: %d parameters, %s on disk\n", args[0], m.NumParameters(), humanize.Bytes(uint64(fi.Size())))
	return nil
}
