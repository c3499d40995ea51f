package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/ui"
)

// cardDelegate renders a fixed-height multi-line card per item.
type cardDelegate struct {
	lines  int
	render func(list.Item) []string
}

func (d cardDelegate) Height() int                         { return d.lines }
func (d cardDelegate) Spacing() int                        { return 1 }
func (d cardDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	lines := d.render(item)
	for len(lines) < d.lines {
		lines = append(lines, "")
	}
	lines = lines[:d.lines]

	selected := index == m.Index()
	out := make([]string, len(lines))
	for i, ln := range lines {
		prefix := "  "
		if selected {
			prefix = ui.Style().Accent.Render("│ ")
			if i == 0 {
				prefix = ui.Style().Selected.Render(">") + " "
			}
		}
		out[i] = prefix + ln
	}
	fmt.Fprint(w, strings.Join(out, "\n"))
}

// rowDelegate renders single-line todo rows.
type rowDelegate struct{}

func (d rowDelegate) Height() int                         { return 1 }
func (d rowDelegate) Spacing() int                        { return 0 }
func (d rowDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(todoItem)
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Style().Selected.Render("> ")
	}
	fmt.Fprint(w, prefix+ui.TodoRow(it.todo, it.leaving))
}
