package reporters

import (
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/width"
)

// BoxSpec is the set of characters a box is drawn with.
type BoxSpec struct {
	TopLeft    rune
	TopRight   rune
	BotLeft    rune
	BotRight   rune
	Vertical   rune
	Horizontal rune
}

var (
	SingleLinedBox = BoxSpec{'┌', '┐', '└', '┘', '│', '─'}
	DoubleLinedBox = BoxSpec{'╔', '╗', '╚', '╝', '║', '═'}
)

// displayWidth estimates the terminal columns s occupies. East Asian wide
// and fullwidth runes take two columns.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// numWidth returns the number of decimal digits in n, at least 1.
func numWidth(n int) int {
	w := 1
	for n >= 10 {
		n /= 10
		w++
	}
	return w
}

// drawBoxed writes content inside a box, one prefixed output line per line
// of content.
func drawBoxed(out Output, prefix string, spec BoxSpec, content string, boxStyle, contentStyle *color.Color) {
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	w := 0
	for _, l := range lines {
		w = max(w, displayWidth(l))
	}

	horizontal := strings.Repeat(string(spec.Horizontal), w+2)

	out.OutputString(prefix)
	out.OutputString(boxStyle.Sprint(string(spec.TopLeft) + horizontal + string(spec.TopRight)))
	out.OutputString("\n")

	for _, l := range lines {
		out.OutputString(prefix)
		out.OutputString(boxStyle.Sprint(string(spec.Vertical)))
		out.OutputString(" ")
		out.OutputString(contentStyle.Sprint(l))
		out.OutputString(strings.Repeat(" ", w-displayWidth(l)))
		out.OutputString(" ")
		out.OutputString(boxStyle.Sprint(string(spec.Vertical)))
		out.OutputString("\n")
	}

	out.OutputString(prefix)
	out.OutputString(boxStyle.Sprint(string(spec.BotLeft) + horizontal + string(spec.BotRight)))
	out.OutputString("\n")
}
