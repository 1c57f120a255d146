package reporters

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"math"
	"slices"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/violenttestpen/ubench"
)

// SummaryReporter collects one row per (input, benchmark) pair and renders
// a table when the run ends. Statistics are accumulated one pair at a time;
// only the finished rows are kept.
type SummaryReporter[U ubench.Unit] struct {
	ubench.NopReporter[U]

	w          io.Writer
	iterations int
	unit       string
	entry      string
	stats      Stats[U]
	rows       []summaryRow
}

type summaryRow struct {
	entry, member, input string
	mean, stdDev         float64
	cells                []string
}

// NewSummary returns a SummaryReporter rendering to w.
func NewSummary[U ubench.Unit](w io.Writer) *SummaryReporter[U] {
	return &SummaryReporter[U]{w: w, iterations: 1, unit: "unknown"}
}

func (r *SummaryReporter[U]) NumIterations(iterations int) {
	r.iterations = iterations
}

func (r *SummaryReporter[U]) Measuring(unit string) {
	r.unit = unit
}

func (r *SummaryReporter[U]) StartingSingle(name string, _ ubench.SizeHint) {
	r.entry = name
	r.stats.Reset()
}

func (r *SummaryReporter[U]) SingleRun(_ int, input any, iteration int, measurement U) {
	r.stats.Add(measurement)
	if iteration+1 == r.iterations {
		r.finishRow("", input)
	}
}

func (r *SummaryReporter[U]) StartingSuite(name string, _ ubench.SizeHint, _ iter.Seq[string]) {
	r.entry = name
	r.stats.Reset()
}

func (r *SummaryReporter[U]) SuiteRun(_ int, input any, _ int, member string, iteration int, measurement U) {
	r.stats.Add(measurement)
	if iteration+1 == r.iterations {
		r.finishRow(member, input)
	}
}

func (r *SummaryReporter[U]) finishRow(member string, input any) {
	row := summaryRow{
		entry:  r.entry,
		member: member,
		input:  fmt.Sprint(input),
		mean:   r.stats.FloatMean(),
		stdDev: r.stats.StdDev(),
	}
	row.cells = []string{
		row.entry,
		row.member,
		row.input,
		formatMeasurement(r.stats.Mean()),
		formatMeasurement(r.stats.Spread()),
		formatMeasurement(r.stats.Min()),
		formatMeasurement(r.stats.Max()),
		formatStdDev[U](row.stdDev),
	}
	r.rows = append(r.rows, row)
	r.stats.Reset()
}

// Rows returns the table cells collected so far.
func (r *SummaryReporter[U]) Rows() [][]string {
	cells := make([][]string, len(r.rows))
	for i, row := range r.rows {
		cells[i] = row.cells
	}
	return cells
}

func (r *SummaryReporter[U]) Ended() {
	if len(r.rows) == 0 {
		return
	}

	fmt.Fprintf(r.w, "\nSummary (%d iterations each, measuring %s)\n\n", r.iterations, r.unit)

	table := tablewriter.NewWriter(r.w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Benchmark", "Member", "Input", "Mean", "±", "Min", "Max", "σ"})
	table.SetAutoMergeCells(true)
	table.SetRowLine(true)
	table.AppendBulk(r.Rows())
	table.Render()

	r.renderComparisons()
}

// renderComparisons ranks the members of every suite input by mean, the
// fastest first:
//
//	fibonacci comparison, input 20
//	  'iterative' ran
//	    3.10 ± 0.42 times faster than 'memoized'
func (r *SummaryReporter[U]) renderComparisons() {
	for _, group := range r.suiteGroups() {
		slices.SortStableFunc(group, func(a, b summaryRow) int { return cmp.Compare(a.mean, b.mean) })
		fastest := group[0]
		if fastest.mean <= 0 {
			continue
		}

		fmt.Fprintf(r.w, "\n%s, input %s\n", fastest.entry, fastest.input)
		fmt.Fprintf(r.w, "  '%s' ran\n", color.CyanString(fastest.member))
		for _, row := range group[1:] {
			meanMultiplier := row.mean / fastest.mean
			posStdevMultiplier := (row.mean+row.stdDev)/(fastest.mean+fastest.stdDev) - meanMultiplier
			var negStdevMultiplier float64
			if fastest.mean > fastest.stdDev {
				negStdevMultiplier = meanMultiplier - (row.mean-row.stdDev)/(fastest.mean-fastest.stdDev)
			}
			fmt.Fprintf(r.w, "    %s ± %s times faster than '%s'\n",
				color.GreenString("%.2f", meanMultiplier),
				color.GreenString("%.2f", math.Abs(posStdevMultiplier)+math.Abs(negStdevMultiplier)),
				color.RedString(row.member))
		}
	}
}

// suiteGroups returns runs of rows that belong to the same suite input and
// hold at least two members.
func (r *SummaryReporter[U]) suiteGroups() [][]summaryRow {
	var groups [][]summaryRow
	for i := 0; i < len(r.rows); {
		j := i + 1
		for j < len(r.rows) && r.rows[j].member != "" &&
			r.rows[j].entry == r.rows[i].entry && r.rows[j].input == r.rows[i].input {
			j++
		}
		if r.rows[i].member != "" && j-i > 1 {
			groups = append(groups, slices.Clone(r.rows[i:j]))
		}
		i = j
	}
	return groups
}

func formatStdDev[U ubench.Unit](sd float64) string {
	var zero U
	if _, ok := any(zero).(time.Duration); ok {
		return formatDuration(time.Duration(sd))
	}
	return fmt.Sprintf("%.2f", sd)
}
