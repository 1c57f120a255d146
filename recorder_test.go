package ubench_test

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/violenttestpen/ubench"
)

// recorder logs every callback as one line.
type recorder[U ubench.Unit] struct {
	events []string
}

func (r *recorder[U]) log(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder[U]) TopLevelBenchmarks(names iter.Seq[string]) {
	r.log("top [%s]", strings.Join(slices.Collect(names), ","))
}

func (r *recorder[U]) NumIterations(n int)   { r.log("iterations %d", n) }
func (r *recorder[U]) Measuring(unit string) { r.log("measuring %s", unit) }

func (r *recorder[U]) StartingSingle(name string, hint ubench.SizeHint) {
	r.log("start single %s %d", name, hint.Estimate())
}

func (r *recorder[U]) SingleRun(idx int, input any, it int, m U) {
	r.log("single %d %v %d %v", idx, input, it, m)
}

func (r *recorder[U]) EndingSingle(name string) { r.log("end single %s", name) }

func (r *recorder[U]) StartingSuite(name string, hint ubench.SizeHint, members iter.Seq[string]) {
	r.log("start suite %s %d [%s]", name, hint.Estimate(), strings.Join(slices.Collect(members), ","))
}

func (r *recorder[U]) SuiteInput(idx int, input any) { r.log("input %d %v", idx, input) }

func (r *recorder[U]) SuiteRun(idx int, input any, memberIdx int, member string, it int, m U) {
	r.log("member %d %v %d %s %d %v", idx, input, memberIdx, member, it, m)
}

func (r *recorder[U]) EndingSuite(name string) { r.log("end suite %s", name) }
func (r *recorder[U]) Ended()                  { r.log("ended") }

// count returns the number of events starting with prefix.
func (r *recorder[U]) count(prefix string) int {
	n := 0
	for _, e := range r.events {
		if strings.HasPrefix(e, prefix) {
			n++
		}
	}
	return n
}

func identity(x int) int { return x }
