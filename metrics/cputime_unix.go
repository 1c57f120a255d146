//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package metrics

import (
	"time"

	"golang.org/x/sys/unix"
)

func init() {
	processTimes = getrusageTimes
}

func getrusageTimes() (time.Duration, time.Duration, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, 0, err
	}
	return time.Duration(ru.Utime.Nano()), time.Duration(ru.Stime.Nano()), nil
}
