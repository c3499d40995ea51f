package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/board"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/page"
	"github.com/Makepad-fr/tada/internal/ui"
)

type todoRow struct {
	todo    model.Todo
	hidden  bool
	leaving bool
}

type confirmation struct {
	prompt string
	yes    func()
}

// dismissedMsg arrives once the slide-out of a deleted todo is over.
type dismissedMsg struct{ after func() }

type todosView struct {
	screen
	rows    []todoRow
	stats   board.Stats
	filter  board.Filter
	confirm *confirmation
	pending []tea.Cmd
}

func (v *todosView) ShowTodos(todos []model.Todo) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rows = make([]todoRow, 0, len(todos))
	for _, t := range todos {
		v.rows = append(v.rows, todoRow{todo: t})
	}
	v.status = statusReady
	v.version++
}

func (v *todosView) ShowStats(stats board.Stats) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.stats = stats
	v.version++
}

func (v *todosView) MarkCompleted(id int, completed bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.rows {
		if v.rows[i].todo.ID == id {
			v.rows[i].todo.Completed = completed
		}
	}
	v.version++
}

func (v *todosView) ApplyFilter(f board.Filter, visible func(model.Todo) bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter = f
	for i := range v.rows {
		v.rows[i].hidden = !visible(v.rows[i].todo)
	}
	v.version++
}

func (v *todosView) Confirm(prompt string, yes func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.confirm = &confirmation{prompt: prompt, yes: yes}
}

func (v *todosView) Dismiss(id int, d time.Duration, after func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.rows {
		if v.rows[i].todo.ID == id {
			v.rows[i].leaving = true
		}
	}
	v.pending = append(v.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return dismissedMsg{after: after}
	}))
	v.version++
}

func (v *todosView) RemoveTodo(id int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.rows {
		if v.rows[i].todo.ID == id {
			v.rows = append(v.rows[:i], v.rows[i+1:]...)
			break
		}
	}
	v.version++
}

// answer takes the open confirmation, if any.
func (v *todosView) answer() *confirmation {
	v.mu.Lock()
	defer v.mu.Unlock()
	c := v.confirm
	v.confirm = nil
	return c
}

func (v *todosView) prompt() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.confirm == nil {
		return ""
	}
	return v.confirm.prompt
}

func (v *todosView) takePending() tea.Cmd {
	v.mu.Lock()
	defer v.mu.Unlock()
	cmds := v.pending
	v.pending = nil
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

type todosSnapshot struct {
	visible []todoRow
	stats   board.Stats
	filter  board.Filter
	version int
}

func (v *todosView) snapshot() todosSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := todosSnapshot{stats: v.stats, filter: v.filter, version: v.version}
	for _, r := range v.rows {
		if !r.hidden {
			s.visible = append(s.visible, r)
		}
	}
	return s
}

type todoItem struct {
	todo    model.Todo
	leaving bool
}

func (i todoItem) FilterValue() string { return i.todo.Title }

type TodosModel struct {
	frame
	keys keyMap
	view *todosView
	page *page.Todos
	// loading stays set until the load command has returned; the page
	// state is not touched from the event loop before that.
	loading bool
}

func NewTodos(ctx context.Context, source page.TodoSource, limit int, initial board.Filter, log *slog.Logger) TodosModel {
	v := &todosView{filter: initial}
	p := page.NewTodos(source, v, limit, log)
	p.SetFilter(initial)

	keys := defaultKeys()
	keys.short = []key.Binding{keys.Up, keys.Down, keys.Toggle, keys.Delete, keys.Filter, keys.Quit}
	return TodosModel{
		frame:   newFrame(ctx, "📝 Tareas", rowDelegate{}),
		keys:    keys,
		view:    v,
		page:    p,
		loading: true,
	}
}

func (m TodosModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCmd(m.ctx, m.page.Load))
}

func (m TodosModel) reserved() int {
	r := 5
	if m.view.prompt() != "" {
		r += 3
	}
	return r
}

func (m TodosModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height, m.reserved())
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.sync()
		return m, cmd
	case loadedMsg:
		m.loading = false
		m.sync()
		return m, nil
	case dismissedMsg:
		msg.after()
		m.sync()
		return m, nil
	case tea.KeyMsg:
		if m.view.prompt() != "" {
			return m.updateConfirm(msg)
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if !m.loading && m.view.state().status == statusReady {
			if handled, cmd := m.handleKey(msg); handled {
				m.sync()
				return m, cmd
			}
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *TodosModel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.selected(); ok && !it.leaving {
			m.page.Toggle(it.todo.ID)
		}
		return true, nil
	case key.Matches(msg, m.keys.Delete):
		if it, ok := m.selected(); ok && !it.leaving {
			m.page.Delete(it.todo.ID)
			m.resize(m.width, m.height, m.reserved())
		}
		return true, nil
	case key.Matches(msg, m.keys.Filter):
		m.page.SetFilter(m.page.Board().Filter().Next())
		return true, nil
	case key.Matches(msg, m.keys.All):
		m.page.SetFilter(board.All)
		return true, nil
	case key.Matches(msg, m.keys.Done):
		m.page.SetFilter(board.Completed)
		return true, nil
	case key.Matches(msg, m.keys.Todo):
		m.page.SetFilter(board.Pending)
		return true, nil
	}
	return false, nil
}

func (m TodosModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		if c := m.view.answer(); c != nil {
			c.yes()
		}
	case key.Matches(msg, m.keys.No):
		m.view.answer()
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	default:
		return m, nil
	}
	m.resize(m.width, m.height, m.reserved())
	m.sync()
	return m, m.view.takePending()
}

func (m TodosModel) selected() (todoItem, bool) {
	it, ok := m.list.SelectedItem().(todoItem)
	return it, ok
}

func (m *TodosModel) sync() {
	s := m.view.snapshot()
	if s.version == m.synced {
		return
	}
	m.synced = s.version
	items := make([]list.Item, 0, len(s.visible))
	for _, r := range s.visible {
		items = append(items, todoItem{todo: r.todo, leaving: r.leaving})
	}
	m.list.SetItems(items)
}

func (m TodosModel) View() string {
	st := m.view.state()
	s := m.view.snapshot()

	parts := []string{m.header()}
	if st.status == statusReady {
		lines := ui.StatsLine(s.stats, 28)
		parts = append(parts, lines[0], lines[1], ui.FilterTabs(s.filter))
	}
	parts = append(parts, "", m.body(st, func() string {
		if len(m.list.Items()) == 0 {
			return ui.Style().Muted.Render("(ninguna)")
		}
		return m.list.View()
	}))
	if p := m.view.prompt(); p != "" {
		parts = append(parts, ui.PanelString([]string{
			ui.Style().Pending.Render(p) + "  " + ui.Style().Muted.Render("[y/n]"),
		}))
	}
	parts = append(parts, "", m.help.View(m.keys))
	return m.layout(parts...)
}
