package reporters

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/violenttestpen/ubench"
	"golang.org/x/term"
)

const (
	progressDoneRune    = "█"
	progressPendingRune = "▒"

	defaultTerminalWidth = 80
)

// ProgressReporter draws a progress bar with an ETA for the entry being
// run, on a single terminal line that is cleared when the entry ends.
// Combine it with a result reporter through Tee, writing to another
// stream.
type ProgressReporter[U ubench.Unit] struct {
	ubench.NopReporter[U]

	w          io.Writer
	width      func() int
	now        func() time.Time
	iterations int
	name       string
	total      int
	done       int
	started    time.Time
	estimate   Stats[U]
}

type fder interface {
	Fd() uintptr
}

// NewProgress returns a ProgressReporter drawing on w. When w is a
// terminal, the bar spans its width.
func NewProgress[U ubench.Unit](w io.Writer) *ProgressReporter[U] {
	p := &ProgressReporter[U]{w: w, now: time.Now, iterations: 1}
	p.width = func() int {
		if f, ok := w.(fder); ok && term.IsTerminal(int(f.Fd())) {
			if width, _, err := term.GetSize(int(f.Fd())); err == nil {
				return width
			}
		}
		return defaultTerminalWidth
	}
	return p
}

func (p *ProgressReporter[U]) NumIterations(iterations int) {
	p.iterations = iterations
}

func (p *ProgressReporter[U]) StartingSingle(name string, inputs ubench.SizeHint) {
	p.start(name, inputs.Estimate()*p.iterations)
}

func (p *ProgressReporter[U]) SingleRun(_ int, _ any, _ int, measurement U) {
	p.step(measurement)
}

func (p *ProgressReporter[U]) EndingSingle(string) {
	clearCurrentTerminalLine(p.w)
}

func (p *ProgressReporter[U]) StartingSuite(name string, inputs ubench.SizeHint, members iter.Seq[string]) {
	n := 0
	for range members {
		n++
	}
	p.start(name, inputs.Estimate()*n*p.iterations)
}

func (p *ProgressReporter[U]) SuiteRun(_ int, _ any, _ int, _ string, _ int, measurement U) {
	p.step(measurement)
}

func (p *ProgressReporter[U]) EndingSuite(string) {
	clearCurrentTerminalLine(p.w)
}

func (p *ProgressReporter[U]) start(name string, total int) {
	p.name = name
	p.total = total
	p.done = 0
	p.started = p.now()
	p.estimate.Reset()
}

func (p *ProgressReporter[U]) step(measurement U) {
	p.done++
	p.estimate.Add(measurement)

	// Calculate progress and ETA
	progress := 1.0
	var eta time.Duration
	if p.total > p.done {
		progress = float64(p.done) / float64(p.total)
		elapsed := p.now().Sub(p.started)
		eta = elapsed / time.Duration(p.done) * time.Duration(p.total-p.done)
	}

	clearCurrentTerminalLine(p.w)
	line := fmt.Sprintf("%s: current estimate %s ", p.name,
		color.GreenString("%s", formatMeasurement(p.estimate.Mean())))
	p.printProgressLine(line, progress, eta)
}

func clearCurrentTerminalLine(w io.Writer) {
	io.WriteString(w, "\r\033[K")
}

func (p *ProgressReporter[U]) printProgressLine(line string, progress float64, eta time.Duration) {
	// Calculate progress bar
	width := p.width() - (displayWidth(line) + 2 + 12)
	if width < 0 {
		width = 0
	}
	chunks := min(int(progress*float64(width)), width)
	bar := strings.Repeat(progressDoneRune, chunks) + strings.Repeat(progressPendingRune, width-chunks)

	fmt.Fprintf(p.w, "%s %s ETA %02d:%02d:%02d", line, bar,
		int64(eta.Hours()), int64(eta.Minutes())%60, int64(eta.Seconds())%60)
}
