package ui

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// ProgressBar renders a bar `width` cells wide with the rounded percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	ratio := float64(done) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	t := Current()
	bar := strings.Repeat(t.Bar, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("%s %3d%%", bar, int(math.Round(ratio*100)))
}

// PanelString frames lines in the theme border.
func PanelString(lines []string) string {
	return Style().Box.Render(strings.Join(lines, "\n"))
}

// Panel writes a framed box.
func Panel(w io.Writer, lines []string) {
	fmt.Fprintln(w, PanelString(lines))
}

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, Style().Success.Render(Current().SymDone+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, Style().Error.Render(Current().SymFail+" "+msg))
}
