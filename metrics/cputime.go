package metrics

import (
	"fmt"
	"time"
)

// processTimes reports the user and kernel CPU time consumed so far by the
// current process. It is set by the platform specific files; nil means the
// platform has no implementation.
var processTimes func() (user, kernel time.Duration, err error)

// ProcessCPUTime measures CPU time (user plus kernel) consumed by the whole
// process. Resolution depends on the operating system, often a scheduler
// tick, so it suits longer runs. Other goroutines doing work during a run
// are counted too.
type ProcessCPUTime struct{}

// NewProcessCPUTime checks that process CPU times can be read.
func NewProcessCPUTime() (*ProcessCPUTime, error) {
	if processTimes == nil {
		return nil, ErrUnsupported
	}
	if _, _, err := processTimes(); err != nil {
		return nil, fmt.Errorf("%w: read process times: %v", ErrUnsupported, err)
	}
	return &ProcessCPUTime{}, nil
}

func (p *ProcessCPUTime) Start() time.Duration {
	return p.now()
}

// End never reports a negative duration, even if a read fails.
func (p *ProcessCPUTime) End(start time.Duration) time.Duration {
	elapsed := p.now() - start
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (p *ProcessCPUTime) UnitName() string {
	return "cpu time"
}

func (p *ProcessCPUTime) now() time.Duration {
	user, kernel, err := processTimes()
	if err != nil {
		return 0
	}
	return user + kernel
}
