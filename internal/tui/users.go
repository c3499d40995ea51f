package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/page"
	"github.com/Makepad-fr/tada/internal/ui"
)

type usersView struct {
	screen
	users []model.User
}

func (v *usersView) ShowUsers(users []model.User) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.users = append([]model.User(nil), users...)
	v.status = statusReady
	v.version++
}

func (v *usersView) snapshot() ([]model.User, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.users, v.version
}

type userItem struct{ model.User }

func (i userItem) FilterValue() string { return i.Name }

type UsersModel struct {
	frame
	keys keyMap
	view *usersView
	page *page.Users
}

func NewUsers(ctx context.Context, source page.UserSource, log *slog.Logger) UsersModel {
	v := &usersView{}
	d := cardDelegate{lines: ui.UserLinesHeight, render: func(it list.Item) []string {
		return ui.UserLines(it.(userItem).User)
	}}
	keys := defaultKeys()
	keys.short = []key.Binding{keys.Up, keys.Down, keys.Quit}
	return UsersModel{
		frame: newFrame(ctx, "👥 Usuarios", d),
		keys:  keys,
		view:  v,
		page:  page.NewUsers(source, v, log),
	}
}

func (m UsersModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCmd(m.ctx, m.page.Load))
}

func (m UsersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height, 2)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.sync()
		return m, cmd
	case loadedMsg:
		m.sync()
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *UsersModel) sync() {
	users, version := m.view.snapshot()
	if version == m.synced {
		return
	}
	m.synced = version
	items := make([]list.Item, 0, len(users))
	for _, u := range users {
		items = append(items, userItem{u})
	}
	m.list.SetItems(items)
}

func (m UsersModel) View() string {
	st := m.view.state()
	body := m.body(st, func() string {
		if len(m.list.Items()) == 0 {
			return ui.Style().Muted.Render("(sin usuarios)")
		}
		return m.list.View()
	})
	return m.layout(m.header(), "", body, "", m.help.View(m.keys))
}
