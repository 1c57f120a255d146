package metrics

// Cycles is a count of CPU cycles.
type Cycles uint64

// CycleCounter counts CPU cycles spent by the calling OS thread in user
// space, using the hardware performance counters exposed by Linux
// perf events. The counter is reset by Start and read by End, so it cannot
// wrap within a realistic run; the kernel multiplexes counters when too
// many are open, which makes readings unreliable.
//
// NewCycleCounter locks the calling goroutine to its OS thread; use the
// counter from that goroutine only and call Close when done.
type CycleCounter struct {
	fd int
}

func (c *CycleCounter) UnitName() string {
	return "cycles"
}
