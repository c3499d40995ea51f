// Package catalog holds the product-side decisions: which products count as
// tech, how categories are labelled, and how ratings and discounts display.
package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Makepad-fr/tada/internal/model"
)

// TechKeywords are matched as substrings of the lower-cased category, title
// and description.
var TechKeywords = []string{
	"lap", "smart", "phone", "tablet", "mobile", "accessory", "camera",
	"headphone", "speaker", "monitor", "tv", "electronics", "console",
}

var categoryLabels = map[string]string{
	"laptops":            "💻 Laptops",
	"smartphones":        "📱 Smartphones",
	"tablets":            "📱 Tablets",
	"mobile-accessories": "🔌 Accesorios",
	"automotive":         "🚗 Automotriz",
}

// IsTech reports whether any keyword occurs in the product's category, title
// or description.
func IsTech(p model.Product) bool {
	fields := [...]string{p.Category, p.Title, p.Description}
	for _, f := range fields {
		f = strings.ToLower(f)
		for _, k := range TechKeywords {
			if strings.Contains(f, k) {
				return true
			}
		}
	}
	return false
}

// FilterTech keeps the tech products in input order. When none match, the
// input is returned unchanged.
func FilterTech(products []model.Product) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if IsTech(p) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return products
	}
	return out
}

// CategoryLabel translates known categories and falls back to the raw value.
func CategoryLabel(category string) string {
	if l, ok := categoryLabels[category]; ok {
		return l
	}
	return category
}

// Stars renders the rating as round(rating) star characters, at most five.
func Stars(rating float64) string {
	n := int(math.Round(rating))
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("⭐", n)
}

// Discount returns the rounded discount percentage, and false when there is none.
func Discount(p model.Product) (int, bool) {
	if p.DiscountPercentage <= 0 {
		return 0, false
	}
	return int(math.Round(p.DiscountPercentage)), true
}

// Detail is the text shown when a product card is opened.
func Detail(p model.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🛒 %s\n\n", p.Title)
	fmt.Fprintf(&b, "💰 Precio: $%s\n", strconv.FormatFloat(p.Price, 'f', -1, 64))
	fmt.Fprintf(&b, "⭐ Rating: %s / 5\n", strconv.FormatFloat(p.Rating, 'f', -1, 64))
	fmt.Fprintf(&b, "📦 Stock: %d unidades\n", p.Stock)
	fmt.Fprintf(&b, "🏷️ Categoría: %s\n", CategoryLabel(p.Category))
	if d, ok := Discount(p); ok {
		fmt.Fprintf(&b, "\n🎉 ¡%d%% de descuento!\n", d)
	}
	fmt.Fprintf(&b, "\n📝 Descripción: %s", p.Description)
	return b.String()
}
