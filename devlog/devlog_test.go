package devlog

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchForwardsUntilEnd(t *testing.T) {
	in := "┆ ┌───┐\r\n┆ │ s │\r\nplain\n\n==========\nafter the end\n"

	var out bytes.Buffer
	require.NoError(t, Watch(strings.NewReader(in), &out))
	assert.Equal(t, "┆ ┌───┐\n┆ │ s │\nplain\n\n", out.String())
}

func TestWatchCollectsPanic(t *testing.T) {
	in := "line one\n\n++++++++++\npanicked at 'boom'\nsrc/main.rs:12\n++++++++++\n==========\n"

	var out bytes.Buffer
	err := Watch(strings.NewReader(in), &out)

	var perr *PanicError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "panicked at 'boom'\nsrc/main.rs:12", perr.Message)
	assert.False(t, perr.Truncated)
	assert.Equal(t, "line one\n\n", out.String())
}

func TestWatchTruncatedPanic(t *testing.T) {
	err := Watch(strings.NewReader("++++++++++\nhalf a mess"), &bytes.Buffer{})

	var perr *PanicError
	require.ErrorAs(t, err, &perr)
	assert.True(t, perr.Truncated)
	assert.Equal(t, "half a mess", perr.Message)
	assert.Contains(t, perr.Error(), "truncated")
}

func TestWatchWithoutEnd(t *testing.T) {
	var out bytes.Buffer
	err := Watch(strings.NewReader("a\nb"), &out)
	assert.ErrorIs(t, err, ErrNoEnd)
	assert.Equal(t, "a\nb\n", out.String())

	assert.ErrorIs(t, Watch(strings.NewReader(""), &out), ErrNoEnd)
}

func TestWatchMarkersIgnoreTrailingSpace(t *testing.T) {
	var lines []string
	err := WatchFunc(strings.NewReader("x\n==========  \r\n"), func(l string) error {
		lines = append(lines, l)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, lines)
}

func TestWatchFuncStopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := WatchFunc(strings.NewReader("a\nb\nc\n==========\n"), func(string) error {
		n++
		if n == 2 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, n)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("serial fault") }

func TestWatchReadError(t *testing.T) {
	err := Watch(failingReader{}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "serial fault")
	assert.NotErrorIs(t, err, ErrNoEnd)
}

func TestTrapAndEndRoundTrip(t *testing.T) {
	var device bytes.Buffer
	device.WriteString("report line\n")

	assert.PanicsWithValue(t, "fib: input 36 out of range", func() {
		defer Trap(&device)
		panic("fib: input 36 out of range")
	})

	var out bytes.Buffer
	err := Watch(&device, &out)

	var perr *PanicError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "fib: input 36 out of range", perr.Message)
	assert.Equal(t, "report line\n\n", out.String())
}

func TestTrapWithoutPanic(t *testing.T) {
	var device bytes.Buffer
	func() {
		defer Trap(&device)
	}()
	require.NoError(t, End(&device))

	var out bytes.Buffer
	require.NoError(t, Watch(&device, &out))
	assert.Equal(t, "\n", out.String())
}
