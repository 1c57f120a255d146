package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/violenttestpen/ubench"
	"github.com/violenttestpen/ubench/devlog"
	"github.com/violenttestpen/ubench/internal/fib"
	"github.com/violenttestpen/ubench/metrics"
	"github.com/violenttestpen/ubench/reporters"
	"golang.org/x/term"
)

type runOptions struct {
	configPath string
	iterations int
	clock      string
	format     string
	noColor    bool
	progress   bool
	start      int
	stop       int
	step       int
	members    []string
	fenced     bool
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the sample Fibonacci benchmarks",
		Long: `Run a single Fibonacci benchmark and a suite comparing Fibonacci
implementations over a range of inputs, and report per-input statistics.

Example:
  ubench run --iterations 50 --clock cpu
  ubench run --config bench.yaml --format table
  ubench run --members recursive,iterative --stop 20 --format gobench`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return fail(statusUsage, "invalid configuration", err)
			}
			return runBenchmarks(cmd.Context(), logger, cfg, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "",
		"Path to a YAML config file")
	flags.IntVarP(&opts.iterations, "iterations", "n", 20,
		"Iterations per input")
	flags.StringVar(&opts.clock, "clock", "wall",
		"Clock to measure with: wall, cpu, cycles, count")
	flags.StringVar(&opts.format, "format", "basic",
		"Report format: basic, table, gobench")
	flags.BoolVar(&opts.noColor, "no-color", false,
		"Disable colored output")
	flags.BoolVar(&opts.progress, "progress", false,
		"Draw a progress bar on stderr")
	flags.IntVar(&opts.start, "start", 0,
		"First input")
	flags.IntVar(&opts.stop, "stop", 36,
		"Inputs stop below this value")
	flags.IntVar(&opts.step, "step", 5,
		"Distance between inputs")
	flags.StringSliceVar(&opts.members, "members", nil,
		"Fibonacci implementations to compare (default all)")
	flags.BoolVar(&opts.fenced, "fenced", false,
		"Fence panics and mark the end of the run for ubench watch")

	return cmd
}

// resolveConfig layers flags that were set explicitly over the config file
// over the defaults.
func resolveConfig(cmd *cobra.Command, opts *runOptions) (*Config, error) {
	cfg := &Config{}
	if opts.configPath != "" {
		var err error
		if cfg, err = loadConfig(opts.configPath); err != nil {
			return nil, err
		}
	}

	// Zero values mean "unset" to applyDefaults, so explicit zeros are
	// rejected here.
	flags := cmd.Flags()
	if flags.Changed("iterations") && opts.iterations < 1 {
		return nil, fmt.Errorf("iterations must be at least 1, got %d", opts.iterations)
	}
	if flags.Changed("step") && opts.step < 1 {
		return nil, fmt.Errorf("inputs step must be positive, got %d", opts.step)
	}

	if flags.Changed("iterations") {
		cfg.Iterations = opts.iterations
	}
	if flags.Changed("clock") {
		cfg.Clock = opts.clock
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("no-color") {
		cfg.NoColor = &opts.noColor
	}
	if flags.Changed("members") {
		cfg.Members = opts.members
	}
	if flags.Changed("start") || flags.Changed("stop") || flags.Changed("step") {
		if cfg.Inputs == nil {
			cfg.Inputs = defaultConfig().Inputs
		}
		if flags.Changed("start") {
			cfg.Inputs.Start = opts.start
		}
		if flags.Changed("stop") {
			cfg.Inputs.Stop = opts.stop
		}
		if flags.Changed("step") {
			cfg.Inputs.Step = opts.step
		}
	}
	if cfg.NoColor == nil {
		noColor := !isTerminal(cmd.OutOrStdout())
		cfg.NoColor = &noColor
	}

	cfg.applyDefaults(defaultConfig())
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func buildRunner(cfg *Config) ubench.Runner {
	in := cfg.Inputs
	return ubench.NewRunner().
		SetIterations(cfg.Iterations).
		Add(ubench.Single[uint64]("iterative fibonacci", fib.Iterative{}, ubench.Range(in.Start, in.Stop, in.Step))).
		Add(fib.Suite("fibonacci comparison", ubench.Range(in.Start, in.Stop, in.Step), cfg.Members...))
}

func runBenchmarks(
	ctx context.Context,
	logger *slog.Logger,
	cfg *Config,
	opts *runOptions,
	stdout, stderr io.Writer,
) error {
	logger.InfoContext(ctx, "starting run",
		slog.Int("iterations", cfg.Iterations),
		slog.String("clock", cfg.Clock),
		slog.String("format", cfg.Format),
	)
	logger.DebugContext(ctx, "inputs",
		slog.Int("start", cfg.Inputs.Start),
		slog.Int("stop", cfg.Inputs.Stop),
		slog.Int("step", cfg.Inputs.Step),
		slog.Any("members", cfg.Members),
	)
	if *cfg.NoColor {
		color.NoColor = true
	}

	if opts.fenced {
		defer devlog.Trap(stdout)
	}

	start := time.Now()
	runner := buildRunner(cfg)

	var err error
	switch cfg.Clock {
	case "wall":
		err = execute[time.Time, time.Duration](runner, metrics.WallClock{}, cfg, opts.progress, stdout, stderr)
	case "cpu":
		m, merr := metrics.NewProcessCPUTime()
		if merr != nil {
			return clockError(cfg.Clock, merr)
		}
		err = execute[time.Duration, time.Duration](runner, m, cfg, opts.progress, stdout, stderr)
	case "cycles":
		m, merr := metrics.NewCycleCounter()
		if merr != nil {
			return clockError(cfg.Clock, merr)
		}
		defer m.Close()
		err = execute[struct{}, metrics.Cycles](runner, m, cfg, opts.progress, stdout, stderr)
	case "count":
		err = execute[struct{}, uint32](runner, metrics.Counter{}, cfg, opts.progress, stdout, stderr)
	}
	if err != nil {
		return fail(statusFailed, "writing report", err)
	}

	if opts.fenced {
		if err := devlog.End(stdout); err != nil {
			return fail(statusFailed, "writing end marker", err)
		}
	}

	logger.InfoContext(ctx, "run finished", slog.Duration("elapsed", time.Since(start)))
	return nil
}

func clockError(clock string, err error) error {
	if errors.Is(err, metrics.ErrUnsupported) {
		return fail(statusUsage, fmt.Sprintf("clock %q is not available", clock), err)
	}
	return fail(statusFailed, fmt.Sprintf("opening clock %q", clock), err)
}

// execute runs runner with m and the reporters selected by cfg. It returns
// the first error hit while writing the report.
func execute[S any, U ubench.Unit](
	runner ubench.Runner,
	m ubench.Metric[S, U],
	cfg *Config,
	progress bool,
	stdout, stderr io.Writer,
) error {
	out := reporters.WriterOutput(stdout)

	var rs []ubench.Reporter[U]
	switch cfg.Format {
	case "basic":
		opts := reporters.DefaultFormatOptions()
		if *cfg.NoColor {
			opts = opts.Plain()
		}
		rs = append(rs, reporters.NewBasicWithOptions[U](out, opts))
	case "table":
		rs = append(rs, reporters.NewSummary[U](stdout))
	case "gobench":
		rs = append(rs, reporters.NewGoBench[U](out))
	}
	if progress {
		rs = append(rs, reporters.NewProgress[U](stderr))
	}

	ubench.Run[S, U](runner, m, reporters.Tee[U](rs...))
	return out.Err()
}
