package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/violenttestpen/ubench/devlog"
	"golang.org/x/term"
	"golang.org/x/tools/benchmark/parse"
)

type watchOptions struct {
	summary bool
}

func newWatchCmd(logger *slog.Logger) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch [device|-]",
		Short: "Forward the output of a benchmark running on a device",
		Long: `Read the output of a benchmark binary from a serial device (or stdin)
and forward it line by line until the end marker is seen.

If the device reports a panic, its message is printed and ubench exits
with status 3.

Example:
  ubench watch /dev/ttyACM0
  ubench run --fenced --format gobench | ubench watch --summary -`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return watchDevice(logger, path, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.summary, "summary", false,
		"Collect go-bench result lines and print them as a table at the end")

	return cmd
}

func watchDevice(logger *slog.Logger, path string, opts *watchOptions, stdin io.Reader, stdout io.Writer) error {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fail(statusUsage, "opening device", err)
		}
		defer f.Close()

		if fd := int(f.Fd()); term.IsTerminal(fd) {
			state, err := term.MakeRaw(fd)
			if err != nil {
				return fail(statusUsage, "configuring device", err)
			}
			defer term.Restore(fd, state)
		}
		r = f
	}
	logger.Info("watching", slog.String("device", path))

	var results []*parse.Benchmark
	err := devlog.WatchFunc(r, func(line string) error {
		if opts.summary {
			if b, err := parse.ParseLine(line); err == nil {
				results = append(results, b)
			}
		}
		_, err := io.WriteString(stdout, line+"\n")
		return err
	})

	var panicErr *devlog.PanicError
	switch {
	case errors.As(err, &panicErr):
		return fail(statusPanicked, "watching device", err)
	case errors.Is(err, devlog.ErrNoEnd):
		return fail(statusFailed, "watching device", err)
	case err != nil:
		return fail(statusFailed, "forwarding output", err)
	}
	logger.Debug("end marker seen", slog.Int("results", len(results)))

	if opts.summary && len(results) > 0 {
		fmt.Fprintln(stdout)
		renderResults(stdout, results)
	}
	return nil
}

func renderResults(w io.Writer, results []*parse.Benchmark) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Benchmark", "N", "ns/op"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})
	for _, b := range results {
		nsPerOp := "-"
		if b.Measured&parse.NsPerOp != 0 {
			nsPerOp = strconv.FormatFloat(b.NsPerOp, 'f', -1, 64)
		}
		table.Append([]string{b.Name, strconv.Itoa(b.N), nsPerOp})
	}
	table.Render()
}
