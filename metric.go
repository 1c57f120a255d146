package ubench

// Unit is the type of a measurement. It must be ordered, additive and
// divisible by an iteration count, which every Go numeric type is.
// time.Duration satisfies Unit.
type Unit interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Metric measures the cost of a code region.
//
// Start captures a token right before a benchmark's Run and End turns that
// token into a measurement right after it. Neither may fail once the metric
// has been constructed; backends that can be unavailable report that from
// their constructor.
type Metric[S any, U Unit] interface {
	Start() S
	End(start S) U
	// UnitName is a human readable name for U, such as "time" or "cycles".
	UnitName() string
}
