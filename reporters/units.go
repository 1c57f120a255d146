package reporters

import (
	"fmt"
	"time"

	"github.com/violenttestpen/ubench"
)

var denominators = []int64{int64(time.Hour), int64(time.Minute), int64(time.Second), int64(time.Millisecond), int64(time.Microsecond), int64(time.Nanosecond)}
var units = []string{"h", "m", "s", "ms", "µs", "ns"}

func getMeasurementMetrics(timing int64) (float64, string) {
	for i, denominator := range denominators {
		if timing/denominator > 0 {
			return float64(denominator), units[i]
		}
	}
	return 0, ""
}

// formatDuration scales d to the largest unit it fills, e.g. "1.25 ms".
func formatDuration(d time.Duration) string {
	denominator, unit := getMeasurementMetrics(int64(d))
	if unit == "" {
		return fmt.Sprintf("%d ns", int64(d))
	}
	return fmt.Sprintf("%.2f %s", float64(d)/denominator, unit)
}

// formatMeasurement renders durations scaled and everything else as is.
func formatMeasurement[U ubench.Unit](v U) string {
	if d, ok := any(v).(time.Duration); ok {
		return formatDuration(d)
	}
	return fmt.Sprint(v)
}
