package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI runs the root command with args and returns what it wrote to
// stdout.
func runCLI(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	root := newRootCmd(logger, new(slog.LevelVar))

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), err
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd(slog.New(slog.NewTextHandler(io.Discard, nil)), new(slog.LevelVar))
	assert.Equal(t, "ubench", root.Use)

	for _, name := range []string{"run", "watch"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := root.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}

	verbose := root.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
}

func TestVerboseRaisesLogLevel(t *testing.T) {
	level := new(slog.LevelVar)
	root := newRootCmd(slog.New(slog.NewTextHandler(io.Discard, nil)), level)
	root.SetOut(io.Discard)
	root.SetArgs([]string{"run", "-v", "--clock", "count", "--stop", "2", "--iterations", "1", "--no-color"})

	require.NoError(t, root.Execute())
	assert.Equal(t, slog.LevelDebug, level.Level())
}

func TestExitCodes(t *testing.T) {
	base := errors.New("boom")

	assert.Equal(t, statusOK, exitStatus(nil))
	assert.Equal(t, statusFailed, exitStatus(base))
	assert.Equal(t, statusUsage, exitStatus(fail(statusUsage, "reading config", base)))

	wrapped := fail(statusPanicked, "watching device", base)
	assert.Equal(t, statusPanicked, exitStatus(wrapped))
	assert.ErrorIs(t, wrapped, base)
	assert.Equal(t, "watching device: boom", wrapped.Error())
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.New("boom"))
	assert.Contains(t, buf.String(), "Error:")
	assert.Contains(t, buf.String(), "boom\n")
}
