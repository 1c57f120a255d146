//go:build windows

package metrics

import (
	"time"

	"golang.org/x/sys/windows"
)

// Windows FILETIME values count 100ns ticks.
const hundredNSTicks = 100

func init() {
	processTimes = getProcessTimes
}

func getProcessTimes() (time.Duration, time.Duration, error) {
	var creation, exit, kernel, user windows.Filetime
	if err := windows.GetProcessTimes(windows.CurrentProcess(), &creation, &exit, &kernel, &user); err != nil {
		return 0, 0, err
	}
	return filetimeDuration(user), filetimeDuration(kernel), nil
}

func filetimeDuration(ft windows.Filetime) time.Duration {
	ticks := int64(ft.HighDateTime)<<32 | int64(ft.LowDateTime)
	return time.Duration(ticks * hundredNSTicks)
}
