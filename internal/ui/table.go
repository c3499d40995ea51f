package ui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Makepad-fr/tada/internal/catalog"
	"github.com/Makepad-fr/tada/internal/model"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	if Current().Name == "mono" {
		t.SetStyle(table.StyleDefault)
	} else {
		t.SetStyle(table.StyleRounded)
	}
	t.SetOutputMirror(w)
	return t
}

// UsersTable prints one row per user, in order.
func UsersTable(w io.Writer, users []model.User) {
	t := newTable(w)
	t.AppendHeader(table.Row{"", "Nombre", "Usuario", "Email", "Teléfono", "Ciudad", "Empresa"})
	for _, u := range users {
		t.AppendRow(table.Row{
			Initial(u.Name),
			orFallback(u.Name),
			"@" + orFallback(u.Username),
			orFallback(u.Email),
			orFallback(u.Phone),
			orFallback(u.Address.City),
			orFallback(u.Company.Name),
		})
	}
	t.Render()
}

// ProductsTable prints one row per product, in order.
func ProductsTable(w io.Writer, products []model.Product) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Producto", "Precio", "Categoría", "Rating", "Stock", "Descuento"})
	for _, p := range products {
		discount := ""
		if d, ok := catalog.Discount(p); ok {
			discount = fmt.Sprintf("-%d%%", d)
		}
		t.AppendRow(table.Row{
			orFallback(p.Title),
			fmt.Sprintf("$%.2f", p.Price),
			orFallback(catalog.CategoryLabel(p.Category)),
			fmt.Sprintf("%s %.1f", catalog.Stars(p.Rating), p.Rating),
			p.Stock,
			discount,
		})
	}
	t.Render()
}
