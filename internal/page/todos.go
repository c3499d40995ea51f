package page

import (
	"context"
	"log/slog"

	"github.com/Makepad-fr/tada/internal/board"
)

type Todos struct {
	source TodoSource
	view   TodosView
	limit  int
	log    *slog.Logger

	board *board.Board
}

func NewTodos(source TodoSource, view TodosView, limit int, log *slog.Logger) *Todos {
	return &Todos{
		source: source,
		view:   view,
		limit:  limit,
		log:    loggerOr(log),
		board:  board.New(nil),
	}
}

// Board exposes the page state. Callers must not mutate it while a handler runs.
func (p *Todos) Board() *board.Board { return p.board }

// Load fetches the todos, renders them with the progress line and applies
// the active filter.
func (p *Todos) Load(ctx context.Context) error {
	p.view.Loading(LoadingTodos)

	todos, err := p.source.Todos(ctx, p.limit)
	if err != nil {
		p.log.WarnContext(ctx, "load todos failed", "err", err)
		p.view.Failed(FailedTodos, err, nil)
		return err
	}
	p.log.DebugContext(ctx, "todos loaded", "count", len(todos))

	b := board.New(todos)
	b.SetFilter(p.board.Filter())
	p.board = b
	stats := b.Stats()

	p.view.ShowTodos(b.Todos())
	p.view.ShowStats(stats)
	p.view.ApplyFilter(b.Filter(), b.IsVisible)
	return nil
}

// Toggle flips the todo, refreshes the progress line and re-applies the
// current filter.
func (p *Todos) Toggle(id int) bool {
	t, ok := p.board.Toggle(id)
	if !ok {
		return false
	}
	p.view.MarkCompleted(id, t.Completed)
	p.view.ShowStats(p.board.Stats())
	p.view.ApplyFilter(p.board.Filter(), p.board.IsVisible)
	return true
}

// Delete asks for confirmation, then drops the todo from the list and lets
// the view animate it out before the progress line is recomputed.
func (p *Todos) Delete(id int) {
	if _, ok := p.board.Get(id); !ok {
		return
	}
	p.view.Confirm(ConfirmDelete, func() {
		if !p.board.Delete(id) {
			return
		}
		p.log.Debug("todo deleted", "id", id)
		p.view.Dismiss(id, DismissDelay, func() {
			p.view.RemoveTodo(id)
			p.view.ShowStats(p.board.Stats())
		})
	})
}

// SetFilter changes which rendered todos are visible. Nothing is refetched.
func (p *Todos) SetFilter(f board.Filter) {
	p.board.SetFilter(f)
	p.view.ApplyFilter(f, p.board.IsVisible)
}
