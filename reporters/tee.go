package reporters

import (
	"iter"

	"github.com/violenttestpen/ubench"
)

type tee[U ubench.Unit] []ubench.Reporter[U]

// Tee returns a Reporter forwarding every callback to each of rs, in order.
func Tee[U ubench.Unit](rs ...ubench.Reporter[U]) ubench.Reporter[U] {
	return tee[U](rs)
}

func (t tee[U]) TopLevelBenchmarks(names iter.Seq[string]) {
	for _, r := range t {
		r.TopLevelBenchmarks(names)
	}
}

func (t tee[U]) NumIterations(iterations int) {
	for _, r := range t {
		r.NumIterations(iterations)
	}
}

func (t tee[U]) Measuring(unit string) {
	for _, r := range t {
		r.Measuring(unit)
	}
}

func (t tee[U]) StartingSingle(name string, inputs ubench.SizeHint) {
	for _, r := range t {
		r.StartingSingle(name, inputs)
	}
}

func (t tee[U]) SingleRun(inputIdx int, input any, iteration int, measurement U) {
	for _, r := range t {
		r.SingleRun(inputIdx, input, iteration, measurement)
	}
}

func (t tee[U]) EndingSingle(name string) {
	for _, r := range t {
		r.EndingSingle(name)
	}
}

func (t tee[U]) StartingSuite(name string, inputs ubench.SizeHint, members iter.Seq[string]) {
	for _, r := range t {
		r.StartingSuite(name, inputs, members)
	}
}

func (t tee[U]) SuiteInput(inputIdx int, input any) {
	for _, r := range t {
		r.SuiteInput(inputIdx, input)
	}
}

func (t tee[U]) SuiteRun(inputIdx int, input any, memberIdx int, member string, iteration int, measurement U) {
	for _, r := range t {
		r.SuiteRun(inputIdx, input, memberIdx, member, iteration, measurement)
	}
}

func (t tee[U]) EndingSuite(name string) {
	for _, r := range t {
		r.EndingSuite(name)
	}
}

func (t tee[U]) Ended() {
	for _, r := range t {
		r.Ended()
	}
}
