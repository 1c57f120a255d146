// Package ubench is a small micro-benchmarking harness.
//
// A Runner holds an ordered list of entries. An entry is either a single
// benchmark with its own inputs, or a suite: a group of named benchmarks
// that share one input sequence and are reported side by side per input.
// Suite members share the input type but may return different results.
//
//	runner := ubench.NewRunner().
//		SetIterations(20).
//		Add(ubench.SingleFunc("square", square, ubench.Values(1, 2, 3))).
//		Add(ubench.NewSuite("fibonacci", ubench.Range(0, 30, 5)).
//			Add(ubench.Member("recursive", fib.Recursive{})).
//			Add(ubench.Member("iterative", fib.Iterative{})).
//			Add(ubench.MemberFunc("formatted", strconv.Itoa)))
//
//	ubench.Run[time.Time, time.Duration](runner, metrics.WallClock{}, reporter)
//
// Run drives every entry in the order it was added, every input in
// sequence order and every iteration, bracketing each Run call of a
// benchmark with the Metric and streaming the measurements to a Reporter.
// Execution is strictly sequential. Panics raised by benchmark code are
// never recovered by the harness.
package ubench
