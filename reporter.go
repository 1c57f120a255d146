package ubench

import "iter"

// Reporter consumes the callbacks emitted while a Runner executes.
//
// A run produces, in order:
//
//	TopLevelBenchmarks, NumIterations, Measuring
//	for each entry:
//	  single: StartingSingle, SingleRun per input and iteration, EndingSingle
//	  suite:  StartingSuite, then per input SuiteInput followed by
//	          SuiteRun per member and iteration, EndingSuite
//	Ended
//
// Embed NopReporter to implement only the callbacks you care about.
type Reporter[U Unit] interface {
	// TopLevelBenchmarks announces the names of every entry. The sequence
	// may be iterated any number of times.
	TopLevelBenchmarks(names iter.Seq[string])
	NumIterations(iterations int)
	// Measuring announces the unit name of the metric in use.
	Measuring(unit string)

	StartingSingle(name string, inputs SizeHint)
	SingleRun(inputIdx int, input any, iteration int, measurement U)
	EndingSingle(name string)

	// StartingSuite announces a suite and the names of its members, in
	// execution order. The members sequence is restartable.
	StartingSuite(name string, inputs SizeHint, members iter.Seq[string])
	SuiteInput(inputIdx int, input any)
	SuiteRun(inputIdx int, input any, memberIdx int, member string, iteration int, measurement U)
	EndingSuite(name string)

	Ended()
}

// NopReporter implements every Reporter callback as a no-op.
type NopReporter[U Unit] struct{}

func (NopReporter[U]) TopLevelBenchmarks(iter.Seq[string])              {}
func (NopReporter[U]) NumIterations(int)                                {}
func (NopReporter[U]) Measuring(string)                                 {}
func (NopReporter[U]) StartingSingle(string, SizeHint)                  {}
func (NopReporter[U]) SingleRun(int, any, int, U)                       {}
func (NopReporter[U]) EndingSingle(string)                              {}
func (NopReporter[U]) StartingSuite(string, SizeHint, iter.Seq[string]) {}
func (NopReporter[U]) SuiteInput(int, any)                              {}
func (NopReporter[U]) SuiteRun(int, any, int, string, int, U)           {}
func (NopReporter[U]) EndingSuite(string)                               {}
func (NopReporter[U]) Ended()                                           {}
