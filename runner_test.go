package ubench_test

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/violenttestpen/ubench"
	"github.com/violenttestpen/ubench/internal/fib"
	"github.com/violenttestpen/ubench/metrics"
)

func TestSingleCountingClock(t *testing.T) {
	runner := ubench.NewRunner().
		SetIterations(3).
		Add(ubench.SingleFunc("s", identity, ubench.Values(1, 2, 3)))

	rec := &recorder[uint32]{}
	ubench.Run[struct{}, uint32](runner, metrics.Counter{}, rec)

	assert.Equal(t, []string{
		"top [s]",
		"iterations 3",
		"measuring count",
		"start single s 3",
		"single 0 1 0 1", "single 0 1 1 1", "single 0 1 2 1",
		"single 1 2 0 1", "single 1 2 1 1", "single 1 2 2 1",
		"single 2 3 0 1", "single 2 3 1 1", "single 2 3 2 1",
		"end single s",
		"ended",
	}, rec.events)
}

func TestSuiteMemberOrder(t *testing.T) {
	suite := ubench.NewSuite("sfx", ubench.Values(10)).
		Add(ubench.MemberFunc("a", identity)).
		Add(ubench.MemberFunc("b", func(x int) int { return -x }))
	runner := ubench.NewRunner().SetIterations(2).Add(suite)

	rec := &recorder[uint64]{}
	ubench.Run[struct{}, uint64](runner, metrics.NewStepper(0, 1), rec)

	assert.Equal(t, []string{
		"top [sfx]",
		"iterations 2",
		"measuring steps",
		"start suite sfx 1 [a,b]",
		"input 0 10",
		"member 0 10 0 a 0 0",
		"member 0 10 0 a 1 1",
		"member 0 10 1 b 0 2",
		"member 0 10 1 b 1 3",
		"end suite sfx",
		"ended",
	}, rec.events)
}

func TestMeasurementCallbackCounts(t *testing.T) {
	suite := ubench.NewSuite("suite", ubench.Range(0, 10, 3)).
		Add(ubench.MemberFunc("x", identity)).
		Add(ubench.MemberFunc("y", identity)).
		Add(ubench.MemberFunc("z", identity))
	runner := ubench.NewRunner().
		SetIterations(7).
		Add(ubench.SingleFunc("single", identity, ubench.Range(0, 5, 1))).
		Add(suite)

	rec := &recorder[uint32]{}
	ubench.Run[struct{}, uint32](runner, metrics.Counter{}, rec)

	assert.Equal(t, 5*7, rec.count("single "))
	assert.Equal(t, 4*3*7, rec.count("member "))
	assert.Equal(t, 4, rec.count("input "))
}

func TestEntriesRunInCallOrder(t *testing.T) {
	runner := ubench.NewRunner().
		Add(ubench.SingleFunc("first", identity, ubench.Values(1))).
		Add(ubench.NewSuite("second", ubench.Values(1)).Add(ubench.MemberFunc("m", identity))).
		Add(ubench.SingleFunc("third", identity, ubench.Values(1)))

	assert.Equal(t, []string{"first", "second", "third"}, slices.Collect(runner.Names()))

	rec := &recorder[uint32]{}
	ubench.Run[struct{}, uint32](runner, metrics.Counter{}, rec)

	var starts []string
	for _, e := range rec.events {
		if strings.HasPrefix(e, "start ") {
			starts = append(starts, e)
		}
	}
	assert.Equal(t, []string{"start single first 1", "start suite second 1 [m]", "start single third 1"}, starts)
}

func TestNamesAreRestartable(t *testing.T) {
	runner := ubench.NewRunner().
		Add(ubench.SingleFunc("a", identity, ubench.Values(1))).
		Add(ubench.SingleFunc("b", identity, ubench.Values(1)))

	first := slices.Collect(runner.Names())
	second := slices.Collect(runner.Names())
	assert.Equal(t, first, second)

	// Stopping early leaves the list intact.
	for range runner.Names() {
		break
	}

	rec := &recorder[uint32]{}
	ubench.Run[struct{}, uint32](runner, metrics.Counter{}, rec)
	assert.Equal(t, "top [a,b]", rec.events[0])
	assert.Equal(t, 2, rec.count("single "))
}

func TestEmptyRunner(t *testing.T) {
	rec := &recorder[uint32]{}
	ubench.Run[struct{}, uint32](ubench.NewRunner(), metrics.Counter{}, rec)

	assert.Equal(t, []string{"top []", "iterations 1", "measuring count", "ended"}, rec.events)
}

func TestZeroRunnerRunsOnce(t *testing.T) {
	var runner ubench.Runner
	assert.Equal(t, 1, runner.Iterations())

	rec := &recorder[uint32]{}
	ubench.Run[struct{}, uint32](runner.Add(ubench.SingleFunc("s", identity, ubench.Values(5))), metrics.Counter{}, rec)
	assert.Equal(t, 1, rec.count("single "))
}

func TestSingleWithoutInputs(t *testing.T) {
	runner := ubench.NewRunner().
		SetIterations(4).
		Add(ubench.SingleFunc("empty", identity, ubench.Values[int]()))

	rec := &recorder[uint32]{}
	ubench.Run[struct{}, uint32](runner, metrics.Counter{}, rec)

	assert.Equal(t, []string{
		"top [empty]", "iterations 4", "measuring count",
		"start single empty 0",
		"end single empty",
		"ended",
	}, rec.events)
}

func TestSuiteWithoutMembers(t *testing.T) {
	runner := ubench.NewRunner().
		SetIterations(2).
		Add(ubench.NewSuite("hollow", ubench.Values(1, 2)))

	rec := &recorder[uint32]{}
	ubench.Run[struct{}, uint32](runner, metrics.Counter{}, rec)

	assert.Equal(t, []string{
		"top [hollow]", "iterations 2", "measuring count",
		"start suite hollow 2 []",
		"input 0 1",
		"input 1 2",
		"end suite hollow",
		"ended",
	}, rec.events)
}

func TestSetIterations(t *testing.T) {
	assert.Equal(t, 1, ubench.NewRunner().Iterations())
	assert.Equal(t, 12, ubench.NewRunner().SetIterations(12).Iterations())

	assert.PanicsWithValue(t, "ubench: iterations must be at least 1, got 0", func() {
		ubench.NewRunner().SetIterations(0)
	})
	assert.Panics(t, func() { ubench.NewRunner().SetIterations(-3) })
}

func TestRunnerIsPersistent(t *testing.T) {
	base := ubench.NewRunner().Add(ubench.SingleFunc("base", identity, ubench.Values(1)))
	left := base.Add(ubench.SingleFunc("left", identity, ubench.Values(1)))
	right := base.SetIterations(5).Add(ubench.SingleFunc("right", identity, ubench.Values(1)))

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 1, base.Iterations())
	assert.Equal(t, []string{"base"}, slices.Collect(base.Names()))
	assert.Equal(t, []string{"base", "left"}, slices.Collect(left.Names()))
	assert.Equal(t, []string{"base", "right"}, slices.Collect(right.Names()))
	assert.Equal(t, 5, right.Iterations())
}

func TestSuiteIsPersistent(t *testing.T) {
	base := ubench.NewSuite("s", ubench.Values(1)).Add(ubench.MemberFunc("a", identity))
	more := base.Add(ubench.MemberFunc("b", identity))

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, more.Len())
	assert.Equal(t, "s", more.Name())
	assert.Equal(t, []string{"a"}, slices.Collect(base.Names()))
	assert.Equal(t, []string{"a", "b"}, slices.Collect(more.Names()))
}

func TestTeardownPanicPropagates(t *testing.T) {
	runner := ubench.NewRunner().
		Add(ubench.Single[uint64]("recursive", fib.Recursive{}, ubench.Values(34, 35, 36)))

	rec := &recorder[uint32]{}
	assert.PanicsWithValue(t, "fib: no known answer for input 36", func() {
		ubench.Run[struct{}, uint32](runner, metrics.Counter{}, rec)
	})

	// Inputs before the failing one were reported; the run never ended.
	assert.Equal(t, 2, rec.count("single "))
	assert.Zero(t, rec.count("ended"))
}

func TestCheckedSuite(t *testing.T) {
	suite := fib.Suite("fibonacci", ubench.Range(0, 36, 7), "recursive", "memoized", "iterative", "closed form")
	runner := ubench.NewRunner().SetIterations(2).Add(suite)

	rec := &recorder[uint32]{}
	require.NotPanics(t, func() {
		ubench.Run[struct{}, uint32](runner, metrics.Counter{}, rec)
	})
	assert.Equal(t, 6*4*2, rec.count("member "))
}

// labeller formats its input and keeps every result Teardown sees.
type labeller struct {
	got *[]string
}

func (labeller) Run(in int) string { return "#" + strconv.Itoa(in) }

func (l labeller) Teardown(_ int, res string) {
	*l.got = append(*l.got, res)
}

func TestSuiteMembersWithDifferentResults(t *testing.T) {
	var labels []string
	suite := ubench.NewSuite("mixed", ubench.Values(10, 20)).
		Add(ubench.Member("fibonacci", fib.Iterative{})).
		Add(ubench.Member("label", labeller{got: &labels})).
		Add(ubench.MemberFunc("halve", func(x int) float64 { return float64(x) / 2 }))
	runner := ubench.NewRunner().SetIterations(2).Add(suite)

	rec := &recorder[uint32]{}
	require.NotPanics(t, func() {
		ubench.Run[struct{}, uint32](runner, metrics.Counter{}, rec)
	})

	assert.Equal(t, 3, suite.Len())
	assert.Equal(t, []string{"fibonacci", "label", "halve"}, slices.Collect(suite.Names()))
	assert.Equal(t, 2*3*2, rec.count("member "))
	assert.Equal(t, []string{"#10", "#10", "#20", "#20"}, labels)
}
