package ubench

import "iter"

// trial is a benchmark bound to its current input.
type trial interface {
	setup()
	run()
	teardown()
}

// executor is the type-erased view of the engine handed to entries. Entries
// own the input loop; the engine owns the iteration loop and the metric.
type executor interface {
	startSingle(name string, inputs SizeHint)
	measureSingle(inputIdx int, input any, t trial)
	endSingle(name string)

	startSuite(name string, inputs SizeHint, members iter.Seq[string])
	suiteInput(inputIdx int, input any)
	measureMember(inputIdx int, input any, memberIdx int, member string, t trial)
	endSuite(name string)
}

type engine[S any, U Unit] struct {
	metric     Metric[S, U]
	reporter   Reporter[U]
	iterations int
}

func (e *engine[S, U]) startSingle(name string, inputs SizeHint) {
	e.reporter.StartingSingle(name, inputs)
}

func (e *engine[S, U]) measureSingle(inputIdx int, input any, t trial) {
	for it := 0; it < e.iterations; it++ {
		t.setup()
		start := e.metric.Start()
		t.run()
		measurement := e.metric.End(start)
		t.teardown()

		e.reporter.SingleRun(inputIdx, input, it, measurement)
	}
}

func (e *engine[S, U]) endSingle(name string) {
	e.reporter.EndingSingle(name)
}

func (e *engine[S, U]) startSuite(name string, inputs SizeHint, members iter.Seq[string]) {
	e.reporter.StartingSuite(name, inputs, members)
}

func (e *engine[S, U]) suiteInput(inputIdx int, input any) {
	e.reporter.SuiteInput(inputIdx, input)
}

func (e *engine[S, U]) measureMember(inputIdx int, input any, memberIdx int, member string, t trial) {
	for it := 0; it < e.iterations; it++ {
		t.setup()
		start := e.metric.Start()
		t.run()
		measurement := e.metric.End(start)
		t.teardown()

		e.reporter.SuiteRun(inputIdx, input, memberIdx, member, it, measurement)
	}
}

func (e *engine[S, U]) endSuite(name string) {
	e.reporter.EndingSuite(name)
}
