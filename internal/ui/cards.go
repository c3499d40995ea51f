package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Makepad-fr/tada/internal/board"
	"github.com/Makepad-fr/tada/internal/catalog"
	"github.com/Makepad-fr/tada/internal/model"
)

// Fallback replaces a missing field.
const Fallback = "—"

// Card heights in lines, used by the list delegates.
const (
	UserLinesHeight    = 4
	ProductLinesHeight = 5
)

// NoThumbnail stands in for a product without an image.
const NoThumbnail = "📦"

func orFallback(s string) string {
	if strings.TrimSpace(s) == "" {
		return Fallback
	}
	return s
}

// Initial is the avatar letter: the first character of the name.
func Initial(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return "?"
	}
	return string(r)
}

func label(s string) string { return Style().Muted.Render(s) }

// UserLines is the body of a user card.
func UserLines(u model.User) []string {
	s := Style()
	return []string{
		s.Avatar.Render(Initial(u.Name)) + " " + s.Title.Render(orFallback(u.Name)),
		fmt.Sprintf("    %s @%s  %s %s", label("Usuario:"), orFallback(u.Username), label("Email:"), orFallback(u.Email)),
		fmt.Sprintf("    %s %s  %s %s", label("Teléfono:"), orFallback(u.Phone), label("Ciudad:"), orFallback(u.Address.City)),
		fmt.Sprintf("    %s %s", label("Empresa:"), orFallback(u.Company.Name)),
	}
}

func UserCard(u model.User) string { return PanelString(UserLines(u)) }

// TodoRow renders one todo on a single line.
func TodoRow(t model.Todo, leaving bool) string {
	s := Style()
	box := s.Muted.Render(Current().BoxUnchecked)
	text := t.Title
	if t.Completed {
		box = s.Success.Render(Current().BoxChecked)
		text = s.Done.Render(text)
	}
	line := fmt.Sprintf("%s %s %s", box, text, s.Muted.Render(fmt.Sprintf("#%d", t.ID)))
	if leaving {
		line = s.Leaving.Render(fmt.Sprintf("%s %s #%d  ↦", Current().BoxUnchecked, t.Title, t.ID))
	}
	return line
}

// StatsLine is the progress summary of the todo list, two lines tall.
func StatsLine(st board.Stats, width int) []string {
	s := Style()
	pct, ok := st.Percent()
	pctText := Fallback
	if ok {
		pctText = fmt.Sprintf("%d%%", pct)
	}
	head := fmt.Sprintf("%s %d de %d tareas completadas (%s)",
		s.Title.Render("📊 Progreso:"), st.Completed, st.Total, pctText)
	bar := ProgressBar(st.Completed, st.Total, width)
	if !ok {
		bar = strings.Repeat(Current().BarEmpty, max(width, 5)) + " " + Fallback
	}
	return []string{head, s.Muted.Render(bar)}
}

// FilterTabs renders the filter buttons with the active one highlighted.
func FilterTabs(active board.Filter) string {
	s := Style()
	tabs := make([]string, 0, len(board.Filters))
	for i, f := range board.Filters {
		text := fmt.Sprintf(" %d %s ", i+1, f.Label())
		if f == active {
			tabs = append(tabs, s.Selected.Render(text))
		} else {
			tabs = append(tabs, s.Muted.Render(text))
		}
	}
	return strings.Join(tabs, " ")
}

// ProductsHeader is the title above the product grid.
func ProductsHeader(n int) string {
	return Style().Accent.Bold(true).Render(fmt.Sprintf("💻 %d Productos disponibles", n))
}

// ProductLines is the body of a product card.
func ProductLines(p model.Product) []string {
	s := Style()
	title := s.Title.Render(orFallback(p.Title))
	if d, ok := catalog.Discount(p); ok {
		title += " " + s.Badge.Render(fmt.Sprintf("-%d%%", d))
	}
	category := catalog.CategoryLabel(p.Category)
	return []string{
		title,
		fmt.Sprintf("%s  %s", s.Success.Bold(true).Render(fmt.Sprintf("$%.2f", p.Price)), s.Accent.Render(orFallback(category))),
		fmt.Sprintf("%s %.1f / 5", catalog.Stars(p.Rating), p.Rating),
		s.Muted.Render(fmt.Sprintf("✓ %d en stock", p.Stock)),
		Thumbnail(p),
	}
}

// Thumbnail is the image line of a product card: the URL, or a box when
// there is none.
func Thumbnail(p model.Product) string {
	if strings.TrimSpace(p.Thumbnail) == "" {
		return NoThumbnail
	}
	return Style().Muted.Render("🖼  " + p.Thumbnail)
}

func ProductCard(p model.Product) string { return PanelString(ProductLines(p)) }

// ErrorLines is the failure message with the technical detail below it.
func ErrorLines(message string, err error, retry bool) []string {
	s := Style()
	detail := "unknown error"
	if err != nil {
		detail = err.Error()
	}
	lines := []string{
		s.Error.Render("❌ " + message),
		"",
		s.Muted.Render("Detalle técnico: " + detail),
	}
	if retry {
		lines = append(lines, "", s.Accent.Render("[r] Reintentar"))
	}
	return lines
}
