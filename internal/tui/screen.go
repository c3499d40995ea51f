// Package tui is the interactive container for the pages: a Bubble Tea
// program per page, rendered with the shared ui styles.
package tui

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/ui"
)

type status int

const (
	statusLoading status = iota
	statusFailed
	statusReady
)

// screen is the container state shared by the views. Loads run in a command
// goroutine while key handlers run on the event loop, so every access goes
// through mu.
type screen struct {
	mu      sync.Mutex
	status  status
	message string
	err     error
	retry   func()
	version int
}

func (s *screen) Loading(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status, s.message, s.err, s.retry = statusLoading, message, nil, nil
	s.version++
}

func (s *screen) Failed(message string, err error, retry func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status, s.message, s.err, s.retry = statusFailed, message, err, retry
	s.version++
}

type screenState struct {
	status  status
	message string
	err     error
	retry   func()
}

func (s *screen) state() screenState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return screenState{status: s.status, message: s.message, err: s.err, retry: s.retry}
}

// loadedMsg tells the model a load (or retry) finished and the view changed.
type loadedMsg struct{}

func loadCmd(ctx context.Context, load func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		_ = load(ctx)
		return loadedMsg{}
	}
}

// frame holds what every page model has: spinner while loading, a list for
// the cards and a help line.
type frame struct {
	ctx     context.Context
	title   string
	spinner spinner.Model
	list    list.Model
	help    help.Model
	width   int
	height  int
	synced  int
}

func newFrame(ctx context.Context, title string, delegate list.ItemDelegate) frame {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.Style().Accent

	l := list.New(nil, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.Styles.PaginationStyle = ui.Style().Help
	l.KeyMap.Quit.SetEnabled(false)

	f := frame{
		ctx:     ctx,
		title:   title,
		spinner: sp,
		list:    l,
		help:    help.New(),
		synced:  -1,
	}
	f.resize(80, 24, 0)
	return f
}

// resize gives the list whatever is left after `reserved` lines of chrome.
func (f *frame) resize(width, height, reserved int) {
	f.width, f.height = width, height
	h := height - reserved - 4
	if h < 3 {
		h = 3
	}
	w := width - 4
	if w < 20 {
		w = 20
	}
	f.list.SetSize(w, h)
	f.help.Width = w
}

func (f frame) header() string {
	return ui.Style().Title.Render(f.title)
}

// body renders the loading and error branches; ready is used otherwise.
func (f frame) body(st screenState, ready func() string) string {
	switch st.status {
	case statusLoading:
		msg := st.message
		if msg == "" {
			msg = "Cargando"
		}
		return f.spinner.View() + " " + ui.Style().Muted.Render(msg+"…")
	case statusFailed:
		return ui.PanelString(ui.ErrorLines(st.message, st.err, st.retry != nil))
	}
	return ready()
}

func (f frame) layout(parts ...string) string {
	return lipgloss.NewStyle().Padding(1, 2, 0, 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Run starts a page program on the alternate screen.
func Run(ctx context.Context, m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
