package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Delete key.Binding
	Filter key.Binding
	All    key.Binding
	Done   key.Binding
	Todo   key.Binding
	Open   key.Binding
	Close  key.Binding
	Retry  key.Binding
	Yes    key.Binding
	No     key.Binding
	Quit   key.Binding

	short []key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return k.short }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.short} }

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "enter", "x"), key.WithHelp("space", "toggle")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Filter: key.NewBinding(key.WithKeys("f", "tab"), key.WithHelp("f", "filter")),
		All:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "todas")),
		Done:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "completadas")),
		Todo:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "pendientes")),
		Open:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "details")),
		Close:  key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("esc", "close")),
		Retry:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Yes:    key.NewBinding(key.WithKeys("y", "s", "enter"), key.WithHelp("y", "yes")),
		No:     key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
