package reporters

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/violenttestpen/ubench"
	"github.com/violenttestpen/ubench/metrics"
	"golang.org/x/tools/benchmark/parse"
)

func TestGoBenchDurations(t *testing.T) {
	suite := ubench.NewSuite("fibonacci comparison", ubench.Values(10, 20)).
		Add(ubench.MemberFunc("closed form", identity)).
		Add(ubench.MemberFunc("iterative", identity))
	runner := ubench.NewRunner().
		SetIterations(2).
		Add(ubench.SingleFunc("warm up", identity, ubench.Values(1))).
		Add(suite)

	clock := metrics.NewReplay[time.Duration]("time", 100, 300)

	var buf bytes.Buffer
	r := NewGoBench[time.Duration](WriterOutput(&buf))
	ubench.Run[struct{}, time.Duration](runner, clock, r)
	require.NoError(t, r.Err())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)

	var names []string
	for _, line := range lines {
		b, err := parse.ParseLine(line)
		require.NoError(t, err, line)
		names = append(names, b.Name)

		assert.Equal(t, 2, b.N)
		assert.NotZero(t, b.Measured&parse.NsPerOp, line)
		assert.Equal(t, 200.0, b.NsPerOp)
	}
	assert.Equal(t, []string{
		"BenchmarkWarm_up/1",
		"BenchmarkFibonacci_comparison/closed_form/10",
		"BenchmarkFibonacci_comparison/iterative/10",
		"BenchmarkFibonacci_comparison/closed_form/20",
		"BenchmarkFibonacci_comparison/iterative/20",
	}, names)
}

func TestGoBenchCustomUnit(t *testing.T) {
	runner := ubench.NewRunner().
		SetIterations(3).
		Add(ubench.SingleFunc("s", identity, ubench.Values(7)))

	var buf bytes.Buffer
	r := NewGoBench[uint64](WriterOutput(&buf))
	ubench.Run[struct{}, uint64](runner, metrics.NewReplay[uint64]("cpu cycles", 4, 5, 6), r)

	assert.Equal(t, "BenchmarkS/7\t3\t5 cpu-cycles/op\n", buf.String())

	b, err := parse.ParseLine(strings.TrimSpace(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, "BenchmarkS/7", b.Name)
	assert.Zero(t, b.Measured&parse.NsPerOp)
}

func TestBenchName(t *testing.T) {
	assert.Equal(t, "BenchmarkRecursive", benchName("recursive"))
	assert.Equal(t, "BenchmarkClosed_form", benchName("closed  form "))
	assert.Equal(t, "Benchmark", benchName(""))
	assert.Equal(t, "BenchmarkÉtude", benchName("étude"))
}
