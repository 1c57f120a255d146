package devlog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// WatchFunc reads r line by line until the end marker, calling fn with each
// ordinary line stripped of its line terminator. Lines that make up a
// panic message are not passed to fn; instead WatchFunc returns a
// *PanicError once the closing delimiter is read.
//
// It returns nil after the end marker, ErrNoEnd if r is exhausted first,
// and the first error returned by fn or by r otherwise.
func WatchFunc(r io.Reader, fn func(line string) error) error {
	br := bufio.NewReader(r)

	var (
		panicked bool
		msg      []string
	)
	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("devlog: reading: %w", err)
		}
		eof := err != nil
		if eof && raw == "" {
			if panicked {
				return &PanicError{Message: strings.Join(msg, "\n"), Truncated: true}
			}
			return ErrNoEnd
		}

		line := strings.TrimRight(raw, "\r\n")
		marker := strings.TrimRightFunc(line, unicode.IsSpace)

		switch {
		case panicked && marker == PanicDelim:
			return &PanicError{Message: strings.Join(msg, "\n")}
		case panicked:
			msg = append(msg, line)
		case marker == PanicDelim:
			panicked = true
		case marker == EndDelim:
			return nil
		default:
			if err := fn(line); err != nil {
				return err
			}
		}

		if eof {
			if panicked {
				return &PanicError{Message: strings.Join(msg, "\n"), Truncated: true}
			}
			return ErrNoEnd
		}
	}
}

// Watch forwards the ordinary lines of r to w, one per line.
func Watch(r io.Reader, w io.Writer) error {
	return WatchFunc(r, func(line string) error {
		_, err := io.WriteString(w, line+"\n")
		return err
	})
}
