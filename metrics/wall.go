package metrics

import "time"

// WallClock measures elapsed time on the monotonic clock. A time.Duration
// overflows after roughly 292 years.
type WallClock struct{}

func (WallClock) Start() time.Time {
	return time.Now()
}

func (WallClock) End(start time.Time) time.Duration {
	return time.Since(start)
}

func (WallClock) UnitName() string {
	return "time"
}
