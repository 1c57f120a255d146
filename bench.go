package ubench

// Benchmark is a unit of work measured by the harness.
//
// Run is the only call bracketed by the Metric. A benchmark may also
// implement Setupper and TearDowner; both are called around every Run and
// are not measured.
type Benchmark[In, Res any] interface {
	Run(in In) Res
}

// Setupper is implemented by benchmarks that reset per-iteration state
// before every Run. One-time initialization belongs in the constructor.
type Setupper[In any] interface {
	Setup(in In)
}

// TearDowner is implemented by benchmarks that inspect the result of every
// Run, typically to assert that it is correct.
type TearDowner[In, Res any] interface {
	Teardown(in In, res Res)
}

// Func adapts an ordinary function to the Benchmark interface.
type Func[In, Res any] func(in In) Res

// Run calls f(in).
func (f Func[In, Res]) Run(in In) Res {
	return f(in)
}

// BlackBox returns x unchanged. It is never inlined, so the compiler cannot
// prove anything about the value flowing through it and cannot drop or
// hoist the computation that produced or consumes it.
//
//go:noinline
func BlackBox[T any](x T) T {
	return x
}
