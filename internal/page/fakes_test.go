package page

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/Makepad-fr/tada/internal/board"
	"github.com/Makepad-fr/tada/internal/model"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var errNetwork = errors.New("dial tcp: connection refused")

type fakeSource struct {
	users    []model.User
	todos    []model.Todo
	products []model.Product
	err      error

	calls     int
	lastLimit int
}

func (f *fakeSource) Users(context.Context) ([]model.User, error) {
	f.calls++
	return f.users, f.err
}

func (f *fakeSource) Todos(_ context.Context, limit int) ([]model.Todo, error) {
	f.calls++
	f.lastLimit = limit
	return f.todos, f.err
}

func (f *fakeSource) Products(_ context.Context, limit int) ([]model.Product, error) {
	f.calls++
	f.lastLimit = limit
	return f.products, f.err
}

// container records which branch the page ended in.
type container struct {
	branches []string
	loading  string
	message  string
	err      error
	retry    func()
}

func (c *container) Loading(message string) {
	c.branches = append(c.branches, "loading")
	c.loading = message
}

func (c *container) Failed(message string, err error, retry func()) {
	c.branches = append(c.branches, "error")
	c.message, c.err, c.retry = message, err, retry
}

func (c *container) last() string {
	if len(c.branches) == 0 {
		return ""
	}
	return c.branches[len(c.branches)-1]
}

type fakeUsersView struct {
	container
	cards []model.User
}

func (v *fakeUsersView) ShowUsers(users []model.User) {
	v.branches = append(v.branches, "success")
	v.cards = append([]model.User(nil), users...)
}

type fakeProductsView struct {
	container
	cards  []model.Product
	alerts []string
}

func (v *fakeProductsView) ShowProducts(products []model.Product) {
	v.branches = append(v.branches, "success")
	v.cards = append([]model.Product(nil), products...)
}

func (v *fakeProductsView) Alert(text string) { v.alerts = append(v.alerts, text) }

type row struct {
	todo   model.Todo
	hidden bool
	gone   bool
}

// fakeTodosView behaves like the rendered list: rows keep their own
// completed flag and hidden state.
type fakeTodosView struct {
	container
	rows    []*row
	stats   board.Stats
	filter  board.Filter
	answer  bool
	prompts []string
	delays  []time.Duration
	pending []func()
}

func (v *fakeTodosView) ShowTodos(todos []model.Todo) {
	v.branches = append(v.branches, "success")
	v.rows = v.rows[:0]
	for _, t := range todos {
		v.rows = append(v.rows, &row{todo: t})
	}
}

func (v *fakeTodosView) ShowStats(s board.Stats) { v.stats = s }

func (v *fakeTodosView) MarkCompleted(id int, completed bool) {
	if r := v.row(id); r != nil {
		r.todo.Completed = completed
	}
}

func (v *fakeTodosView) ApplyFilter(f board.Filter, visible func(model.Todo) bool) {
	v.filter = f
	for _, r := range v.rows {
		r.hidden = !visible(r.todo)
	}
}

func (v *fakeTodosView) Confirm(prompt string, yes func()) {
	v.prompts = append(v.prompts, prompt)
	if v.answer {
		yes()
	}
}

func (v *fakeTodosView) Dismiss(id int, d time.Duration, after func()) {
	v.delays = append(v.delays, d)
	v.pending = append(v.pending, after)
}

func (v *fakeTodosView) RemoveTodo(id int) {
	if r := v.row(id); r != nil {
		r.gone = true
	}
}

// finish runs the transitions that are still playing.
func (v *fakeTodosView) finish() {
	p := v.pending
	v.pending = nil
	for _, f := range p {
		f()
	}
}

func (v *fakeTodosView) row(id int) *row {
	for _, r := range v.rows {
		if r.todo.ID == id && !r.gone {
			return r
		}
	}
	return nil
}

func (v *fakeTodosView) visibleIDs() []int {
	var out []int
	for _, r := range v.rows {
		if !r.hidden && !r.gone {
			out = append(out, r.todo.ID)
		}
	}
	return out
}
