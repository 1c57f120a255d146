// Command ubench runs the sample Fibonacci benchmarks and watches the
// output of benchmark binaries running on remote devices.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	root := newRootCmd(logger, level)
	if err := root.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(exitStatus(err))
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), err)
}

type rootOptions struct {
	verbose bool
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "ubench",
		Short: "Micro-benchmarking harness",
		Long: `ubench runs micro-benchmarks over sequences of inputs and reports
per-input statistics, either locally or on a remote device whose output is
watched over a serial line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if opts.verbose {
				level.Set(slog.LevelDebug)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newRunCmd(logger))
	root.AddCommand(newWatchCmd(logger))

	return root
}
