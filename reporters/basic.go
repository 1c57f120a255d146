package reporters

import (
	"fmt"
	"iter"
	"strings"

	"github.com/fatih/color"
	"github.com/violenttestpen/ubench"
)

// BasicReporter renders results as they arrive, one line per (input,
// benchmark) pair, inside boxes named after each entry.
//
// It keeps the running statistics of a single pair at a time, so memory
// does not grow with the number of inputs or iterations. Callbacks that
// arrive out of order panic with a *ProtocolError.
type BasicReporter[U ubench.Unit] struct {
	ubench.NopReporter[U]

	out        Output
	opts       FormatOptions
	paint      palette
	iterations int
	unit       string
	state      basicState
}

// NewBasic returns a BasicReporter writing to out with the default,
// colored format options.
func NewBasic[U ubench.Unit](out Output) *BasicReporter[U] {
	return NewBasicWithOptions[U](out, DefaultFormatOptions())
}

// NewBasicWithOptions returns a BasicReporter using opts.
func NewBasicWithOptions[U ubench.Unit](out Output, opts FormatOptions) *BasicReporter[U] {
	return &BasicReporter[U]{
		out:        out,
		opts:       opts,
		paint:      newPalette(opts),
		iterations: 1,
		unit:       "unknown",
		state:      idle{},
	}
}

// palette holds the Sprint functions of the text styles in FormatOptions.
// A nil style prints plain text.
type palette struct {
	count, unit, input, member func(a ...any) string
	avg, spread, min, max, dim func(a ...any) string
}

func newPalette(o FormatOptions) palette {
	sprint := func(c *color.Color) func(a ...any) string {
		if c == nil {
			return fmt.Sprint
		}
		return c.SprintFunc()
	}
	return palette{
		count:  sprint(o.IterationCountStyle),
		unit:   sprint(o.UnitStyle),
		input:  sprint(o.InputStyle),
		member: sprint(o.MemberStyle),
		avg:    sprint(o.AvgStyle),
		spread: sprint(o.RangeStyle),
		min:    sprint(o.MinStyle),
		max:    sprint(o.MaxStyle),
		dim:    sprint(o.DimStyle),
	}
}

// ProtocolError reports a callback that is not valid in the reporter's
// current state.
type ProtocolError struct {
	Callback string
	State    string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("reporters: %s called while %s", e.Callback, e.State)
}

// basicState is one of the states below. Exactly one is current.
type basicState interface {
	String() string
}

// idle: between top-level entries.
type idle struct{}

// awaitingSingleInput: inside a single benchmark, before the first
// iteration of the next input.
type awaitingSingleInput struct {
	inputWidth int
}

// accumulatingSingle: iterations of one input of a single benchmark.
type accumulatingSingle[U ubench.Unit] struct {
	inputWidth int
	remaining  int
	stats      Stats[U]
}

type suiteShape struct {
	size       int
	nameWidth  int
	inputWidth int
}

// awaitingSuiteInput: inside a suite, before the next input is announced.
type awaitingSuiteInput struct {
	suiteShape
}

// awaitingMember: an input was announced, members remain to run on it.
type awaitingMember struct {
	suiteShape
	remainingMembers int
}

// accumulatingMember: iterations of one member on the current input.
type accumulatingMember[U ubench.Unit] struct {
	awaitingMember
	remaining int
	stats     Stats[U]
}

func (idle) String() string                  { return "idle" }
func (*awaitingSingleInput) String() string   { return "awaiting single benchmark input" }
func (*accumulatingSingle[U]) String() string { return "accumulating single benchmark" }
func (*awaitingSuiteInput) String() string    { return "awaiting suite input" }
func (*awaitingMember) String() string        { return "awaiting suite member" }
func (*accumulatingMember[U]) String() string { return "accumulating suite member" }

func (r *BasicReporter[U]) violation(callback string) {
	panic(&ProtocolError{Callback: callback, State: r.state.String()})
}

func (r *BasicReporter[U]) NumIterations(iterations int) {
	if iterations < 1 {
		panic(fmt.Sprintf("reporters: iterations must be at least 1, got %d", iterations))
	}
	r.iterations = iterations
}

func (r *BasicReporter[U]) Measuring(unit string) {
	r.unit = unit
}

func (r *BasicReporter[U]) StartingSingle(name string, inputs ubench.SizeHint) {
	if _, ok := r.state.(idle); !ok {
		r.violation("StartingSingle")
	}
	r.state = &awaitingSingleInput{inputWidth: numWidth(inputs.Estimate())}

	drawBoxed(r.out, r.opts.Prefix, r.opts.SingleBox, name, r.opts.SingleBoxStyle, r.opts.NameStyle)
	r.header()
}

func (r *BasicReporter[U]) SingleRun(inputIdx int, input any, iteration int, measurement U) {
	switch st := r.state.(type) {
	case *awaitingSingleInput:
		if iteration != 0 {
			r.violation("SingleRun")
		}
		acc := &accumulatingSingle[U]{inputWidth: st.inputWidth, remaining: r.iterations - 1}
		acc.stats.Add(measurement)
		r.state = acc
	case *accumulatingSingle[U]:
		if st.remaining == 0 || st.remaining+iteration != r.iterations {
			r.violation("SingleRun")
		}
		st.remaining--
		st.stats.Add(measurement)
	default:
		r.violation("SingleRun")
	}

	acc := r.state.(*accumulatingSingle[U])
	if acc.remaining > 0 {
		return
	}

	r.inputLine(acc.inputWidth, inputIdx, input)
	r.out.OutputString(r.opts.Prefix)
	r.out.OutputString(" ")
	r.out.OutputString(strings.Repeat(" ", acc.inputWidth+2))
	r.statsLine(&acc.stats)

	r.state = &awaitingSingleInput{inputWidth: acc.inputWidth}
}

func (r *BasicReporter[U]) EndingSingle(string) {
	if _, ok := r.state.(*awaitingSingleInput); !ok {
		r.violation("EndingSingle")
	}
	r.state = idle{}
	r.footer()
}

func (r *BasicReporter[U]) StartingSuite(name string, inputs ubench.SizeHint, members iter.Seq[string]) {
	if _, ok := r.state.(idle); !ok {
		r.violation("StartingSuite")
	}

	shape := suiteShape{inputWidth: numWidth(inputs.Estimate())}
	for m := range members {
		shape.size++
		shape.nameWidth = max(shape.nameWidth, displayWidth(m))
	}
	r.state = &awaitingSuiteInput{suiteShape: shape}

	drawBoxed(r.out, r.opts.Prefix, r.opts.SuiteBox, name, r.opts.SuiteBoxStyle, r.opts.NameStyle)
	r.header()
}

func (r *BasicReporter[U]) SuiteInput(inputIdx int, input any) {
	st, ok := r.state.(*awaitingSuiteInput)
	if !ok {
		r.violation("SuiteInput")
	}

	r.inputLine(st.inputWidth, inputIdx, input)
	if st.size > 0 {
		r.state = &awaitingMember{suiteShape: st.suiteShape, remainingMembers: st.size}
	}
}

func (r *BasicReporter[U]) SuiteRun(inputIdx int, input any, memberIdx int, member string, iteration int, measurement U) {
	switch st := r.state.(type) {
	case *awaitingMember:
		if iteration != 0 || st.remainingMembers+memberIdx != st.size {
			r.violation("SuiteRun")
		}
		acc := &accumulatingMember[U]{awaitingMember: *st, remaining: r.iterations - 1}
		acc.remainingMembers--
		acc.stats.Add(measurement)
		r.state = acc
	case *accumulatingMember[U]:
		if st.remaining == 0 || st.remaining+iteration != r.iterations {
			r.violation("SuiteRun")
		}
		st.remaining--
		st.stats.Add(measurement)
	default:
		r.violation("SuiteRun")
	}

	acc := r.state.(*accumulatingMember[U])
	if acc.remaining > 0 {
		return
	}

	r.out.OutputString(r.opts.Prefix)
	r.out.OutputString(" ")
	r.out.OutputString(strings.Repeat(" ", acc.inputWidth+2))
	r.out.OutputString(strings.Repeat(" ", max(0, acc.nameWidth-displayWidth(member))))
	r.out.OutputString(r.paint.member(member))
	r.out.OutputString(r.paint.dim(":"))
	r.out.OutputString(" ")
	r.statsLine(&acc.stats)

	if acc.remainingMembers == 0 {
		r.state = &awaitingSuiteInput{suiteShape: acc.suiteShape}
	} else {
		r.state = &awaitingMember{suiteShape: acc.suiteShape, remainingMembers: acc.remainingMembers}
	}
}

func (r *BasicReporter[U]) EndingSuite(string) {
	if _, ok := r.state.(*awaitingSuiteInput); !ok {
		r.violation("EndingSuite")
	}
	r.state = idle{}
	r.footer()
}

func (r *BasicReporter[U]) Ended() {
	if _, ok := r.state.(idle); !ok {
		r.violation("Ended")
	}
	r.out.Flush()
}

// Err returns the first error hit while writing output.
func (r *BasicReporter[U]) Err() error {
	return r.out.Err()
}

func (r *BasicReporter[U]) header() {
	r.out.OutputString(r.opts.Prefix)
	r.out.OutputString("\n")

	r.out.OutputString(r.opts.Prefix)
	r.out.OutputString(r.paint.dim("Inputs ("))
	r.out.OutputString(r.paint.count(r.iterations))
	r.out.OutputString(r.paint.dim(" iterations each, measuring "))
	r.out.OutputString(r.paint.unit(r.unit))
	r.out.OutputString(r.paint.dim("):"))
	r.out.OutputString("\n")
}

func (r *BasicReporter[U]) footer() {
	r.out.OutputString(r.opts.Prefix)
	r.out.OutputString("\n\n")
}

func (r *BasicReporter[U]) inputLine(inputWidth, inputIdx int, input any) {
	r.out.OutputString(r.opts.Prefix)
	r.out.OutputFormat(" %*d", inputWidth, inputIdx+1)
	r.out.OutputString(r.paint.dim("."))
	r.out.OutputString(" ")
	r.out.OutputString(r.paint.dim("`"))
	r.out.OutputString(r.paint.input(fmt.Sprintf("%v", input)))
	r.out.OutputString(r.paint.dim("`"))
	r.out.OutputString("\n")
}

// statsLine writes "avg ± spread (min … max)" and ends the line. s holds
// exactly one measurement per iteration, so its mean is the sum divided by
// the iteration count.
func (r *BasicReporter[U]) statsLine(s *Stats[U]) {
	avg := s.Mean()
	spread := s.Spread()

	r.out.OutputString(r.paint.avg(formatMeasurement(avg)))
	r.out.OutputString(" ± ")
	r.out.OutputString(r.paint.spread(formatMeasurement(spread)))
	r.out.OutputString(" ")
	r.out.OutputString(r.paint.dim("("))
	r.out.OutputString(r.paint.min(formatMeasurement(s.Min())))
	r.out.OutputString(r.paint.dim(" … "))
	r.out.OutputString(r.paint.max(formatMeasurement(s.Max())))
	r.out.OutputString(r.paint.dim(")"))
	r.out.OutputString("\n")
}
