package main

import (
	"errors"
	"fmt"
)

// Process exit statuses.
const (
	statusOK       = 0
	statusFailed   = 1 // the run or the watched stream failed
	statusUsage    = 2 // bad flags, config file or device path
	statusPanicked = 3 // the watched device panicked
)

// statusError ties an error to the exit status main reports for it.
type statusError struct {
	status int
	op     string
	err    error
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s: %v", e.op, e.err)
}

func (e *statusError) Unwrap() error {
	return e.err
}

// fail wraps err, annotating it with the operation that failed.
func fail(status int, op string, err error) error {
	return &statusError{status: status, op: op, err: err}
}

// exitStatus returns the status for err. Errors raised by cobra itself,
// such as unknown flags, are not wrapped and count as failures.
func exitStatus(err error) int {
	if err == nil {
		return statusOK
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.status
	}
	return statusFailed
}
