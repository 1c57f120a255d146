package reporters

import "github.com/fatih/color"

// FormatOptions controls how BasicReporter renders.
type FormatOptions struct {
	// Prefix starts every line except the blank separator after an entry.
	Prefix string

	SingleBox      BoxSpec
	SingleBoxStyle *color.Color
	SuiteBox       BoxSpec
	SuiteBoxStyle  *color.Color

	IterationCountStyle *color.Color
	NameStyle           *color.Color
	InputStyle          *color.Color
	UnitStyle           *color.Color
	AvgStyle            *color.Color
	RangeStyle          *color.Color
	MinStyle            *color.Color
	MaxStyle            *color.Color
	MemberStyle         *color.Color
	DimStyle            *color.Color
}

// DefaultFormatOptions returns colored options. Colors follow
// color.NoColor, so they are dropped automatically when stdout is not a
// terminal.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		Prefix:              "┆ ",
		SingleBox:           SingleLinedBox,
		SingleBoxStyle:      color.New(color.FgBlue),
		SuiteBox:            DoubleLinedBox,
		SuiteBoxStyle:       color.New(color.FgGreen),
		IterationCountStyle: plainStyle(),
		NameStyle:           color.New(color.Bold),
		InputStyle:          color.New(color.FgMagenta),
		UnitStyle:           color.New(color.Bold),
		AvgStyle:            color.New(color.FgGreen, color.Bold),
		RangeStyle:          color.New(color.Faint),
		MinStyle:            color.New(color.FgYellow),
		MaxStyle:            color.New(color.FgRed),
		MemberStyle:         color.New(color.FgCyan, color.Italic),
		DimStyle:            color.New(color.Faint),
	}
}

// Plain returns a copy of o with every style disabled.
func (o FormatOptions) Plain() FormatOptions {
	o.SingleBoxStyle = plainStyle()
	o.SuiteBoxStyle = plainStyle()
	o.IterationCountStyle = plainStyle()
	o.NameStyle = plainStyle()
	o.InputStyle = plainStyle()
	o.UnitStyle = plainStyle()
	o.AvgStyle = plainStyle()
	o.RangeStyle = plainStyle()
	o.MinStyle = plainStyle()
	o.MaxStyle = plainStyle()
	o.MemberStyle = plainStyle()
	o.DimStyle = plainStyle()
	return o
}

func plainStyle() *color.Color {
	c := color.New()
	c.DisableColor()
	return c
}
