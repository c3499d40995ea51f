package page

import (
	"context"
	"log/slog"

	"github.com/Makepad-fr/tada/internal/catalog"
	"github.com/Makepad-fr/tada/internal/model"
)

type Products struct {
	source ProductSource
	view   ProductsView
	limit  int
	log    *slog.Logger

	shown []model.Product
}

func NewProducts(source ProductSource, view ProductsView, limit int, log *slog.Logger) *Products {
	return &Products{source: source, view: view, limit: limit, log: loggerOr(log)}
}

// Load fetches the catalog, keeps the tech products and renders them. On
// failure the container offers a retry that runs Load again.
func (p *Products) Load(ctx context.Context) error {
	p.view.Loading(LoadingProducts)

	all, err := p.source.Products(ctx, p.limit)
	if err != nil {
		p.log.ErrorContext(ctx, "load products failed", "err", err)
		p.view.Failed(FailedProducts, err, func() { _ = p.Load(ctx) })
		return err
	}

	p.shown = catalog.FilterTech(all)
	p.log.DebugContext(ctx, "products loaded", "fetched", len(all), "shown", len(p.shown))
	p.view.ShowProducts(p.shown)
	return nil
}

// Shown returns the products currently rendered.
func (p *Products) Shown() []model.Product { return p.shown }

// Select opens the detail alert of the i-th rendered product.
func (p *Products) Select(i int) bool {
	if i < 0 || i >= len(p.shown) {
		return false
	}
	p.view.Alert(catalog.Detail(p.shown[i]))
	return true
}
