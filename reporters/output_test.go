package reporters

import (
	"bufio"
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errLineDown = errors.New("line down")

// limitedWriter accepts limit bytes and then fails.
type limitedWriter struct {
	buf   bytes.Buffer
	limit int
	calls int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	w.calls++
	if w.buf.Len()+len(p) > w.limit {
		return 0, errLineDown
	}
	return w.buf.Write(p)
}

func (w *limitedWriter) WriteByte(c byte) error {
	w.calls++
	if w.buf.Len() >= w.limit {
		return errLineDown
	}
	return w.buf.WriteByte(c)
}

func TestWriterOutput(t *testing.T) {
	var buf bytes.Buffer
	out := WriterOutput(&buf)

	out.OutputString("n=")
	out.OutputFormat("%d, %s\n", 42, "ok")
	out.Flush()

	require.NoError(t, out.Err())
	assert.Equal(t, "n=42, ok\n", buf.String())
}

func TestWriterOutputErrorIsSticky(t *testing.T) {
	w := &limitedWriter{limit: 4}
	out := WriterOutput(w)

	out.OutputString("abc")
	out.OutputString("defg")
	out.OutputFormat("%s", "h")
	out.Flush()

	assert.ErrorIs(t, out.Err(), errLineDown)
	assert.Equal(t, "abc", w.buf.String())
	assert.Equal(t, 2, w.calls)
}

func TestWriterOutputFlushes(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	out := WriterOutput(bw)

	out.OutputString("buffered")
	assert.Empty(t, buf.String())

	out.Flush()
	require.NoError(t, out.Err())
	assert.Equal(t, "buffered", buf.String())
}

func TestByteOutput(t *testing.T) {
	w := &limitedWriter{limit: 100}
	out := ByteOutput(w)

	out.OutputFormat("%s|%d", "uart", 7)
	require.NoError(t, out.Err())
	assert.Equal(t, "uart|7", w.buf.String())
	assert.Equal(t, 6, w.calls)
}

func TestByteOutputStopsAtFirstError(t *testing.T) {
	w := &limitedWriter{limit: 3}
	out := ByteOutput(w)

	out.OutputString("abcdef")
	out.OutputString("more")

	assert.ErrorIs(t, out.Err(), errLineDown)
	assert.Equal(t, "abc", w.buf.String())
	assert.Equal(t, 4, w.calls)
}

func TestDiscard(t *testing.T) {
	Discard.OutputString("x")
	Discard.OutputFormat("%d", 1)
	Discard.Flush()
	assert.NoError(t, Discard.Err())
}
