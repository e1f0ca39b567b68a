// Command seedling is the command line interface to the library: it
// inspects MNIST data, initializes and examines .seed checkpoints, and
// runs the digit classifier.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/seedling-ml/seedling/internal/config"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := NewCLI(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// initLogging routes slog through a text handler on stderr, keeping
// stdout free for command output.
func initLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: verbose,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				if source, ok := attr.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			}
			return attr
		},
	})

	slog.SetDefault(slog.New(handler))
}
