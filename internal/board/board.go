// Package board keeps the in-memory todo list of the todos page together
// with its active filter.
package board

import (
	"fmt"
	"math"

	"github.com/Makepad-fr/tada/internal/model"
)

type Filter string

const (
	All       Filter = "all"
	Completed Filter = "completed"
	Pending   Filter = "pending"
)

// Filters lists the filters in the order the UI cycles through them.
var Filters = []Filter{All, Completed, Pending}

// ParseFilter accepts the English names and the Spanish labels.
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "all", "todas", "":
		return All, nil
	case "completed", "completadas", "done":
		return Completed, nil
	case "pending", "pendientes":
		return Pending, nil
	}
	return "", fmt.Errorf("unknown filter %q", s)
}

// Label is the text on the filter button.
func (f Filter) Label() string {
	switch f {
	case Completed:
		return "Completadas"
	case Pending:
		return "Pendientes"
	}
	return "Todas"
}

// Next cycles all -> completed -> pending -> all.
func (f Filter) Next() Filter {
	for i, x := range Filters {
		if x == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return All
}

// Match reports whether a todo is shown under this filter.
func (f Filter) Match(t model.Todo) bool {
	switch f {
	case Completed:
		return t.Completed
	case Pending:
		return !t.Completed
	}
	return true
}

// Stats aggregates the list for the progress line.
type Stats struct {
	Completed int
	Total     int
}

// Percent is round(100*Completed/Total). ok is false for an empty list.
func (s Stats) Percent() (pct int, ok bool) {
	if s.Total <= 0 {
		return 0, false
	}
	return int(math.Round(float64(s.Completed) / float64(s.Total) * 100)), true
}

// Board is not safe for concurrent use; the page that owns it mutates it
// from a single event loop.
type Board struct {
	todos  []model.Todo
	filter Filter
}

func New(todos []model.Todo) *Board {
	cp := make([]model.Todo, len(todos))
	copy(cp, todos)
	return &Board{todos: cp, filter: All}
}

// Todos returns a copy of the list in order.
func (b *Board) Todos() []model.Todo {
	out := make([]model.Todo, len(b.todos))
	copy(out, b.todos)
	return out
}

func (b *Board) Len() int { return len(b.todos) }

func (b *Board) Get(id int) (model.Todo, bool) {
	if i := b.index(id); i >= 0 {
		return b.todos[i], true
	}
	return model.Todo{}, false
}

// Toggle flips the completed flag of the todo with the given id.
func (b *Board) Toggle(id int) (model.Todo, bool) {
	i := b.index(id)
	if i < 0 {
		return model.Todo{}, false
	}
	b.todos[i].Completed = !b.todos[i].Completed
	return b.todos[i], true
}

// Delete removes the todo with the given id and nothing else.
func (b *Board) Delete(id int) bool {
	i := b.index(id)
	if i < 0 {
		return false
	}
	b.todos = append(b.todos[:i], b.todos[i+1:]...)
	return true
}

func (b *Board) Filter() Filter { return b.filter }

func (b *Board) SetFilter(f Filter) { b.filter = f }

// IsVisible reports whether t passes the active filter.
func (b *Board) IsVisible(t model.Todo) bool { return b.filter.Match(t) }

func (b *Board) Stats() Stats {
	s := Stats{Total: len(b.todos)}
	for _, t := range b.todos {
		if t.Completed {
			s.Completed++
		}
	}
	return s
}

func (b *Board) index(id int) int {
	for i, t := range b.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}
