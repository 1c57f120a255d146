// Package devlog implements the line protocol spoken by a benchmark binary
// running on a remote device and the host that watches its output.
//
// The device writes ordinary report lines. If it panics, the panic message
// is written between two PanicDelim lines; when the run completes, an
// EndDelim line is written. The host forwards ordinary lines, collects the
// panic message, and stops at the end marker.
package devlog

import (
	"errors"
	"fmt"
	"io"
)

const (
	PanicDelim = "++++++++++"
	EndDelim   = "=========="
)

// ErrNoEnd is returned by Watch when the stream ends before the end marker.
var ErrNoEnd = errors.New("devlog: stream ended without end marker")

// PanicError carries the panic message reported by the device.
type PanicError struct {
	Message string
	// Truncated is set when the stream ended before the closing
	// delimiter.
	Truncated bool
}

func (e *PanicError) Error() string {
	if e.Truncated {
		return fmt.Sprintf("device panicked (message truncated): %s", e.Message)
	}
	return fmt.Sprintf("device panicked: %s", e.Message)
}

// Trap writes a recovered panic to w between PanicDelim lines and then
// panics again with the same value. It must be deferred directly:
//
//	defer devlog.Trap(w)
func Trap(w io.Writer) {
	v := recover()
	if v == nil {
		return
	}
	fmt.Fprintf(w, "\n%s\n%v\n%s\n", PanicDelim, v, PanicDelim)
	panic(v)
}

// End writes the end marker to w.
func End(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\n%s\n", EndDelim)
	return err
}
