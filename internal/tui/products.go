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

type productsView struct {
	screen
	products []model.Product
	alert    string
}

func (v *productsView) ShowProducts(products []model.Product) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.products = append([]model.Product(nil), products...)
	v.status = statusReady
	v.version++
}

func (v *productsView) Alert(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.alert = text
}

func (v *productsView) dismissAlert() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.alert = ""
}

func (v *productsView) alertText() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.alert
}

func (v *productsView) snapshot() ([]model.Product, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.products, v.version
}

type productItem struct{ model.Product }

func (i productItem) FilterValue() string { return i.Title }

type ProductsModel struct {
	frame
	keys keyMap
	view *productsView
	page *page.Products
}

func NewProducts(ctx context.Context, source page.ProductSource, limit int, log *slog.Logger) ProductsModel {
	v := &productsView{}
	d := cardDelegate{lines: ui.ProductLinesHeight, render: func(it list.Item) []string {
		return ui.ProductLines(it.(productItem).Product)
	}}
	keys := defaultKeys()
	keys.short = []key.Binding{keys.Up, keys.Down, keys.Open, keys.Retry, keys.Quit}
	return ProductsModel{
		frame: newFrame(ctx, "🛍️ Productos", d),
		keys:  keys,
		view:  v,
		page:  page.NewProducts(source, v, limit, log),
	}
}

func (m ProductsModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadCmd(m.ctx, m.page.Load))
}

func (m ProductsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height, 3)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.sync()
		return m, cmd
	case loadedMsg:
		m.sync()
		return m, nil
	case tea.KeyMsg:
		if m.view.alertText() != "" {
			if key.Matches(msg, m.keys.Close) {
				m.view.dismissAlert()
			} else if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		st := m.view.state()
		switch {
		case st.status == statusFailed && key.Matches(msg, m.keys.Retry):
			if st.retry == nil {
				return m, nil
			}
			return m, func() tea.Msg {
				st.retry()
				return loadedMsg{}
			}
		case st.status == statusReady && key.Matches(msg, m.keys.Open):
			m.page.Select(m.list.Index())
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *ProductsModel) sync() {
	products, version := m.view.snapshot()
	if version == m.synced {
		return
	}
	m.synced = version
	items := make([]list.Item, 0, len(products))
	for _, p := range products {
		items = append(items, productItem{p})
	}
	m.list.SetItems(items)
}

func (m ProductsModel) View() string {
	if a := m.view.alertText(); a != "" {
		return m.layout(m.header(), "", ui.PanelString([]string{a}), "", ui.Style().Help.Render("enter/esc: cerrar"))
	}
	st := m.view.state()
	parts := []string{m.header()}
	if st.status == statusReady {
		parts = append(parts, ui.ProductsHeader(len(m.list.Items())))
	}
	parts = append(parts, "", m.body(st, m.list.View), "", m.help.View(m.keys))
	return m.layout(parts...)
}
