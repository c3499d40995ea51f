// Package page holds the three page controllers. A controller owns the page
// state and talks to its container only through a view interface, so the
// same controller drives the interactive terminal UI, the plain printer and
// the tests.
package page

import (
	"context"
	"log/slog"
	"time"

	"github.com/Makepad-fr/tada/internal/board"
	"github.com/Makepad-fr/tada/internal/model"
)

// User-facing texts.
const (
	LoadingUsers    = "Cargando usuarios"
	LoadingTodos    = "Cargando tareas"
	LoadingProducts = "Cargando productos"

	FailedUsers    = "No se pudieron cargar los datos. Intenta más tarde."
	FailedTodos    = "No se pudieron cargar las tareas. Intenta más tarde."
	FailedProducts = "No se pudieron cargar los productos. Intenta más tarde."

	ConfirmDelete = "¿Eliminar esta tarea?"
)

// DismissDelay is how long a deleted todo stays on screen while it slides out.
const DismissDelay = 300 * time.Millisecond

// Container is the area a page clears and repopulates.
type Container interface {
	Loading(message string)
	// Failed replaces the content with message and err as technical detail.
	// retry is nil when the page offers no manual retry.
	Failed(message string, err error, retry func())
}

type UsersView interface {
	Container
	ShowUsers(users []model.User)
}

type TodosView interface {
	Container
	ShowTodos(todos []model.Todo)
	ShowStats(stats board.Stats)
	MarkCompleted(id int, completed bool)
	// ApplyFilter hides every rendered todo for which visible returns false.
	ApplyFilter(f board.Filter, visible func(model.Todo) bool)
	// Confirm asks prompt and calls yes only when the user accepts.
	Confirm(prompt string, yes func())
	// Dismiss plays the removal transition for id and calls after once it ends.
	Dismiss(id int, d time.Duration, after func())
	RemoveTodo(id int)
}

type ProductsView interface {
	Container
	ShowProducts(products []model.Product)
	Alert(text string)
}

type UserSource interface {
	Users(ctx context.Context) ([]model.User, error)
}

type TodoSource interface {
	Todos(ctx context.Context, limit int) ([]model.Todo, error)
}

type ProductSource interface {
	Products(ctx context.Context, limit int) ([]model.Product, error)
}

func loggerOr(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
