//go:build linux

package metrics

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// NewCycleCounter opens a cycle counter for the calling thread. It fails
// with ErrUnsupported when the kernel or hardware offers no cycle counter,
// or when perf events are not permitted (see perf_event_paranoid).
func NewCycleCounter() (*CycleCounter, error) {
	attr := unix.PerfEventAttr{
		Type:   unix.PERF_TYPE_HARDWARE,
		Config: unix.PERF_COUNT_HW_CPU_CYCLES,
		Bits:   unix.PerfBitDisabled | unix.PerfBitExcludeKernel | unix.PerfBitExcludeHv,
	}
	attr.Size = uint32(unsafe.Sizeof(attr))

	runtime.LockOSThread()

	fd, err := unix.PerfEventOpen(&attr, 0, -1, -1, unix.PERF_FLAG_FD_CLOEXEC)
	if err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("%w: perf_event_open: %v", ErrUnsupported, err)
	}

	if err := unix.IoctlSetInt(fd, unix.PERF_EVENT_IOC_ENABLE, 0); err != nil {
		unix.Close(fd)
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("%w: enable cycle counter: %v", ErrUnsupported, err)
	}

	return &CycleCounter{fd: fd}, nil
}

// Start zeroes the counter instead of recording its value, so End does not
// have to deal with wrapping.
func (c *CycleCounter) Start() struct{} {
	_ = unix.IoctlSetInt(c.fd, unix.PERF_EVENT_IOC_RESET, 0)
	return struct{}{}
}

// End returns the cycles counted since Start, or 0 if the read fails.
func (c *CycleCounter) End(struct{}) Cycles {
	var buf [8]byte
	if n, err := unix.Read(c.fd, buf[:]); err != nil || n != len(buf) {
		return 0
	}
	return Cycles(binary.NativeEndian.Uint64(buf[:]))
}

// Close releases the counter and unlocks the OS thread.
func (c *CycleCounter) Close() error {
	err := unix.Close(c.fd)
	runtime.UnlockOSThread()
	return err
}
