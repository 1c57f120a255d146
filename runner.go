package ubench

import (
	"fmt"
	"iter"
)

// Entry is a top-level item of a Runner: a single benchmark built with
// Single or SingleFunc, or a suite built with NewSuite.
type Entry interface {
	Name() string
	execute(x executor)
}

// Runner is an immutable, ordered list of entries plus an iteration count.
// Every method returns a new Runner and leaves the receiver untouched, so
// a partially built Runner can be shared and extended independently.
//
// The zero Runner is empty and runs one iteration per input.
type Runner struct {
	iterations int
	last       *entryNode
	n          int
}

// entryNode links an entry to the entries added before it. Nodes are
// never mutated after creation.
type entryNode struct {
	entry Entry
	prev  *entryNode
}

// NewRunner returns an empty Runner that runs one iteration per input.
func NewRunner() Runner {
	return Runner{iterations: 1}
}

// SetIterations sets how many times every benchmark runs per input.
// It panics if n is less than one.
func (r Runner) SetIterations(n int) Runner {
	if n < 1 {
		panic(fmt.Sprintf("ubench: iterations must be at least 1, got %d", n))
	}
	r.iterations = n
	return r
}

// Iterations returns the configured iteration count.
func (r Runner) Iterations() int {
	if r.iterations == 0 {
		return 1
	}
	return r.iterations
}

// Add appends an entry. Entries run in the order they are added.
func (r Runner) Add(e Entry) Runner {
	r.last = &entryNode{entry: e, prev: r.last}
	r.n++
	return r
}

// Len returns the number of entries.
func (r Runner) Len() int {
	return r.n
}

// Names returns the entry names in run order. The returned sequence does
// not consume the Runner and may be iterated repeatedly.
func (r Runner) Names() iter.Seq[string] {
	last := r.last
	return func(yield func(string) bool) {
		last.walk(func(e Entry) bool {
			return yield(e.Name())
		})
	}
}

// walk visits the chain oldest first. The chain is stored newest first,
// so the recursion unwinds in insertion order.
func (n *entryNode) walk(visit func(Entry) bool) bool {
	if n == nil {
		return true
	}
	if !n.prev.walk(visit) {
		return false
	}
	return visit(n.entry)
}

// Run executes every entry of r, measuring with m and reporting to rep.
//
// Benchmarks and input sequences are used up by the run: stateful
// benchmarks keep whatever state they reached and single-pass input
// sequences are drained. Build a fresh Runner to run again.
func Run[S any, U Unit](r Runner, m Metric[S, U], rep Reporter[U]) {
	rep.TopLevelBenchmarks(r.Names())
	rep.NumIterations(r.Iterations())
	rep.Measuring(m.UnitName())

	e := &engine[S, U]{
		metric:     m,
		reporter:   rep,
		iterations: r.Iterations(),
	}
	r.last.walk(func(en Entry) bool {
		en.execute(e)
		return true
	})

	rep.Ended()
}
