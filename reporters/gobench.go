package reporters

import (
	"fmt"
	"iter"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/violenttestpen/ubench"
)

// GoBenchReporter writes one line per (input, benchmark) pair in the
// format printed by "go test -bench", so results can be fed to tools such
// as benchstat:
//
//	BenchmarkFibonacci/recursive/10	20	 5231 ns/op
//
// Durations are reported as ns/op; other units as <unit>/op.
type GoBenchReporter[U ubench.Unit] struct {
	ubench.NopReporter[U]

	out        Output
	iterations int
	unit       string
	entry      string
	stats      Stats[U]
}

// NewGoBench returns a GoBenchReporter writing to out.
func NewGoBench[U ubench.Unit](out Output) *GoBenchReporter[U] {
	return &GoBenchReporter[U]{out: out, iterations: 1, unit: "unknown"}
}

func (r *GoBenchReporter[U]) NumIterations(iterations int) {
	r.iterations = iterations
}

func (r *GoBenchReporter[U]) Measuring(unit string) {
	r.unit = strings.Join(strings.Fields(unit), "-")
}

func (r *GoBenchReporter[U]) StartingSingle(name string, _ ubench.SizeHint) {
	r.entry = benchName(name)
	r.stats.Reset()
}

func (r *GoBenchReporter[U]) SingleRun(_ int, input any, iteration int, measurement U) {
	r.stats.Add(measurement)
	if iteration+1 == r.iterations {
		r.line(r.entry + "/" + sanitize(fmt.Sprint(input)))
	}
}

func (r *GoBenchReporter[U]) StartingSuite(name string, _ ubench.SizeHint, _ iter.Seq[string]) {
	r.entry = benchName(name)
	r.stats.Reset()
}

func (r *GoBenchReporter[U]) SuiteRun(_ int, input any, _ int, member string, iteration int, measurement U) {
	r.stats.Add(measurement)
	if iteration+1 == r.iterations {
		r.line(r.entry + "/" + sanitize(member) + "/" + sanitize(fmt.Sprint(input)))
	}
}

func (r *GoBenchReporter[U]) Ended() {
	r.out.Flush()
}

// Err returns the first error hit while writing output.
func (r *GoBenchReporter[U]) Err() error {
	return r.out.Err()
}

func (r *GoBenchReporter[U]) line(name string) {
	mean := r.stats.Mean()
	if d, ok := any(mean).(time.Duration); ok {
		r.out.OutputFormat("%s\t%d\t%d ns/op\n", name, r.stats.Count(), d.Nanoseconds())
	} else {
		r.out.OutputFormat("%s\t%d\t%v %s/op\n", name, r.stats.Count(), mean, r.unit)
	}
	r.stats.Reset()
}

// benchName turns an entry name into a benchmark name: "Benchmark" followed
// by the sanitized name with its first letter upper-cased.
func benchName(name string) string {
	name = sanitize(name)
	if name == "" {
		return "Benchmark"
	}
	r, size := utf8.DecodeRuneInString(name)
	return "Benchmark" + string(unicode.ToUpper(r)) + name[size:]
}

// sanitize replaces whitespace, which would split a result line into
// fields, with underscores.
func sanitize(s string) string {
	return strings.Join(strings.Fields(s), "_")
}
