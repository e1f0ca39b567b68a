package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seedling-ml/seedling/internal/config"
)

// version is reported by --version and the version command.
const version = "0.1.0"

func versionHandler(cmd *cobra.Command, _ []string) {
	fmt.Println("seedling version is", version)
}

// NewCLI assembles the command tree. Flag defaults come from the
// environment configuration, so SEEDLING_DATA_DIR and friends set the
// baseline and flags override per invocation.
func NewCLI(cfg config.Config) *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "seedling",
		Short:         "Handwritten digit recognition toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			initLogging(verbose)
		},
		Run: func(cmd *cobra.Command, args []string) {
			if version, _ := cmd.Flags().GetBool("version"); version {
				versionHandler(cmd, args)
				return
			}

			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")
	rootCmd.PersistentFlags().Bool("verbose", cfg.Verbose, "Enable debug logging")

	rootCmd.AddCommand(
		newInitCmd(cfg),
		newInfoCmd(cfg),
		newRenderCmd(cfg),
		newPredictCmd(cfg),
		newEvalCmd(cfg),
		newShowCmd(),
	)

	return rootCmd
}
