package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/Makepad-fr/tada/internal/board"
	"github.com/Makepad-fr/tada/internal/model"
)

type Format string

const (
	FormatCards Format = "cards"
	FormatTable Format = "table"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCards, "":
		return FormatCards, nil
	case FormatTable:
		return FormatTable, nil
	}
	return "", fmt.Errorf("unknown format %q (want cards or table)", s)
}

type printedTodo struct {
	todo   model.Todo
	hidden bool
}

// Printer is the non-interactive container: it writes every render to Out
// and progress messages to Status. It never confirms a deletion.
type Printer struct {
	Out    io.Writer
	Status io.Writer
	Format Format
	Width  int

	todos  []printedTodo
	loaded bool
	failed bool
}

func NewPrinter(out, status io.Writer, format Format) *Printer {
	return &Printer{Out: out, Status: status, Format: format, Width: 28}
}

// HasFailed reports whether the last load ended in the error branch.
func (p *Printer) HasFailed() bool { return p.failed }

func (p *Printer) Loading(message string) {
	p.loaded, p.failed = false, false
	fmt.Fprintln(p.Status, Style().Muted.Render(message+"…"))
}

func (p *Printer) Failed(message string, err error, retry func()) {
	p.failed = true
	Panel(p.Out, ErrorLines(message, err, false))
	if retry != nil {
		fmt.Fprintln(p.Status, Style().Muted.Render("Reintentar: vuelve a ejecutar el comando."))
	}
}

func (p *Printer) ShowUsers(users []model.User) {
	p.loaded = true
	if p.Format == FormatTable {
		UsersTable(p.Out, users)
		return
	}
	for _, u := range users {
		fmt.Fprintln(p.Out, UserCard(u))
	}
}

func (p *Printer) ShowProducts(products []model.Product) {
	p.loaded = true
	fmt.Fprintln(p.Out, ProductsHeader(len(products)))
	fmt.Fprintln(p.Out)
	if p.Format == FormatTable {
		ProductsTable(p.Out, products)
		return
	}
	for _, pr := range products {
		fmt.Fprintln(p.Out, ProductCard(pr))
	}
}

func (p *Printer) Alert(text string) { Panel(p.Out, []string{text}) }

// ShowTodos only records the rows; they are printed once the filter applies.
func (p *Printer) ShowTodos(todos []model.Todo) {
	p.loaded = true
	p.todos = p.todos[:0]
	for _, t := range todos {
		p.todos = append(p.todos, printedTodo{todo: t})
	}
}

func (p *Printer) ShowStats(stats board.Stats) {
	if !p.loaded {
		return
	}
	for _, l := range StatsLine(stats, p.Width) {
		fmt.Fprintln(p.Out, l)
	}
}

func (p *Printer) MarkCompleted(id int, completed bool) {
	for i := range p.todos {
		if p.todos[i].todo.ID == id {
			p.todos[i].todo.Completed = completed
		}
	}
}

func (p *Printer) ApplyFilter(f board.Filter, visible func(model.Todo) bool) {
	if !p.loaded {
		return
	}
	fmt.Fprintln(p.Out, FilterTabs(f))
	shown := 0
	for i := range p.todos {
		p.todos[i].hidden = !visible(p.todos[i].todo)
		if p.todos[i].hidden {
			continue
		}
		shown++
		fmt.Fprintln(p.Out, TodoRow(p.todos[i].todo, false))
	}
	if shown == 0 {
		fmt.Fprintln(p.Out, Style().Muted.Render("(ninguna)"))
	}
}

func (p *Printer) Confirm(string, func()) {}

func (p *Printer) Dismiss(_ int, _ time.Duration, after func()) { after() }

func (p *Printer) RemoveTodo(id int) {
	for i := range p.todos {
		if p.todos[i].todo.ID == id {
			p.todos = append(p.todos[:i], p.todos[i+1:]...)
			return
		}
	}
}
