package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.TerminalColor
	BoxUnchecked, BoxChecked                      string
	Border                                        lipgloss.Border
	SymDone, SymPending, SymFail                  string
	Bar, BarEmpty                                 string
}

// Styles are derived from the current theme.
type Styles struct {
	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Leaving, Help, Badge, Avatar  lipgloss.Style
	Box                                           lipgloss.Style
}

var (
	current Theme
	styles  Styles
)

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:  "neon",
			Title: lipgloss.Color("13"), Muted: lipgloss.Color("8"), Accent: lipgloss.Color("14"),
			Success: lipgloss.Color("10"), Error: lipgloss.Color("9"), Pending: lipgloss.Color("11"),
			BoxUnchecked: "◻", BoxChecked: "◼",
			Border:  lipgloss.RoundedBorder(),
			SymDone: "✔", SymPending: "•", SymFail: "✖",
			Bar: "█", BarEmpty: "░",
		}
	case "mono":
		current = Theme{
			Name:  "mono",
			Title: lipgloss.NoColor{}, Muted: lipgloss.NoColor{}, Accent: lipgloss.NoColor{},
			Success: lipgloss.NoColor{}, Error: lipgloss.NoColor{}, Pending: lipgloss.NoColor{},
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			Border:  lipgloss.NormalBorder(),
			SymDone: "x", SymPending: "-", SymFail: "!",
			Bar: "#", BarEmpty: ".",
		}
	default: // classic
		current = Theme{
			Name:  "classic",
			Title: lipgloss.Color("12"), Muted: lipgloss.Color("8"), Accent: lipgloss.Color("12"),
			Success: lipgloss.Color("42"), Error: lipgloss.Color("9"), Pending: lipgloss.Color("214"),
			BoxUnchecked: "☐", BoxChecked: "☑",
			Border:  lipgloss.RoundedBorder(),
			SymDone: "✔", SymPending: "•", SymFail: "✖",
			Bar: "█", BarEmpty: "░",
		}
	}
	styles = buildStyles(current)
}

// Expose what renderers need
func Current() Theme { return current }

func Style() Styles { return styles }

func buildStyles(t Theme) Styles {
	mono := t.Name == "mono"
	s := Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(t.Title),
		Muted:    lipgloss.NewStyle().Foreground(t.Muted).Faint(!mono),
		Accent:   lipgloss.NewStyle().Foreground(t.Accent),
		Success:  lipgloss.NewStyle().Foreground(t.Success),
		Error:    lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		Pending:  lipgloss.NewStyle().Foreground(t.Pending),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(!mono),
		Done:     lipgloss.NewStyle().Faint(!mono).Strikethrough(!mono),
		Leaving:  lipgloss.NewStyle().Faint(true).Italic(true),
		Help:     lipgloss.NewStyle().Faint(!mono),
		Badge:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(t.Error).Padding(0, 1),
		Avatar:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(t.Accent).Padding(0, 1),
		Box:      lipgloss.NewStyle().Border(t.Border).BorderForeground(t.Muted).Padding(0, 1),
	}
	if mono {
		s.Badge = lipgloss.NewStyle()
		s.Avatar = lipgloss.NewStyle()
	}
	return s
}
