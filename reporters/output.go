// Package reporters renders the callbacks of a ubench run.
package reporters

import (
	"fmt"
	"io"
)

// Output is a text sink. It unifies byte streams, formatted writers and
// one-byte-at-a-time transports such as a UART.
//
// Writes never return errors; the first error is kept, every later write is
// dropped, and Err reports it.
type Output interface {
	OutputString(s string)
	OutputFormat(format string, args ...any)
	Flush()
	Err() error
}

type flusher interface {
	Flush() error
}

type writerOutput struct {
	w   io.Writer
	err error
}

// WriterOutput writes to w. Flush calls w.Flush if w has one, as
// bufio.Writer does.
func WriterOutput(w io.Writer) Output {
	return &writerOutput{w: w}
}

func (o *writerOutput) OutputString(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

func (o *writerOutput) OutputFormat(format string, args ...any) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprintf(o.w, format, args...)
}

func (o *writerOutput) Flush() {
	if o.err != nil {
		return
	}
	if f, ok := o.w.(flusher); ok {
		o.err = f.Flush()
	}
}

func (o *writerOutput) Err() error {
	return o.err
}

type byteOutput struct {
	w   io.ByteWriter
	err error
}

// ByteOutput writes one byte at a time to w, for transports that accept
// nothing larger.
func ByteOutput(w io.ByteWriter) Output {
	return &byteOutput{w: w}
}

func (o *byteOutput) OutputString(s string) {
	for i := 0; i < len(s) && o.err == nil; i++ {
		o.err = o.w.WriteByte(s[i])
	}
}

func (o *byteOutput) OutputFormat(format string, args ...any) {
	if o.err != nil {
		return
	}
	o.OutputString(fmt.Sprintf(format, args...))
}

func (o *byteOutput) Flush() {
	if o.err != nil {
		return
	}
	if f, ok := o.w.(flusher); ok {
		o.err = f.Flush()
	}
}

func (o *byteOutput) Err() error {
	return o.err
}

// Discard is an Output that drops everything.
var Discard Output = discard{}

type discard struct{}

func (discard) OutputString(string)         {}
func (discard) OutputFormat(string, ...any) {}
func (discard) Flush()                      {}
func (discard) Err() error                  { return nil }
