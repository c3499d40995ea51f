package catalog

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/tada/internal/model"
)

func TestFilterTech(t *testing.T) {
	phone := model.Product{ID: 1, Title: "iPhone 9", Category: "smartphones"}
	mascara := model.Product{ID: 2, Title: "Essence Mascara", Category: "beauty"}
	stand := model.Product{ID: 3, Title: "Laptop Stand", Category: "home-decoration"}
	speaker := model.Product{ID: 4, Title: "Bookshelf", Category: "furniture", Description: "Comes with a SPEAKER dock"}
	car := model.Product{ID: 5, Title: "Sedan", Category: "vehicle", Description: "Plain car"}

	tests := []struct {
		name string
		in   []model.Product
		want []model.Product
	}{
		{
			name: "category match",
			in:   []model.Product{mascara, phone},
			want: []model.Product{phone},
		},
		{
			name: "title substring match keeps order",
			in:   []model.Product{stand, mascara, phone},
			want: []model.Product{stand, phone},
		},
		{
			name: "description match is case-insensitive",
			in:   []model.Product{speaker, car},
			want: []model.Product{speaker},
		},
		{
			name: "no match falls back to input",
			in:   []model.Product{mascara, car},
			want: []model.Product{mascara, car},
		},
		{
			name: "empty input",
			in:   []model.Product{},
			want: []model.Product{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTech(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("FilterTech mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterTechFallbackIsIdentity(t *testing.T) {
	in := []model.Product{{ID: 7, Title: "Apple", Category: "groceries"}}
	got := FilterTech(in)
	require.Len(t, got, 1)
	assert.Same(t, &in[0], &got[0])
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "💻 Laptops", CategoryLabel("laptops"))
	assert.Equal(t, "🔌 Accesorios", CategoryLabel("mobile-accessories"))
	assert.Equal(t, "groceries", CategoryLabel("groceries"))
	assert.Equal(t, "", CategoryLabel(""))
}

func TestStars(t *testing.T) {
	assert.Equal(t, "", Stars(0))
	assert.Equal(t, "⭐⭐⭐⭐⭐", Stars(4.69))
	assert.Equal(t, "⭐⭐⭐⭐", Stars(4.44))
	assert.Equal(t, "⭐⭐⭐", Stars(2.5))
	assert.Equal(t, "⭐⭐⭐⭐⭐", Stars(9))
	assert.Equal(t, "", Stars(-1))
}

func TestDiscount(t *testing.T) {
	d, ok := Discount(model.Product{DiscountPercentage: 12.96})
	require.True(t, ok)
	assert.Equal(t, 13, d)

	_, ok = Discount(model.Product{})
	assert.False(t, ok)
}

func TestDetail(t *testing.T) {
	p := model.Product{
		Title: "iPhone 9", Price: 549, Rating: 4.69, Stock: 94,
		Category: "smartphones", DiscountPercentage: 12.96,
		Description: "An apple mobile",
	}
	got := Detail(p)
	assert.True(t, strings.HasPrefix(got, "🛒 iPhone 9\n"))
	assert.Contains(t, got, "💰 Precio: $549\n")
	assert.Contains(t, got, "⭐ Rating: 4.69 / 5")
	assert.Contains(t, got, "📦 Stock: 94 unidades")
	assert.Contains(t, got, "🏷️ Categoría: 📱 Smartphones")
	assert.Contains(t, got, "🎉 ¡13% de descuento!")
	assert.True(t, strings.HasSuffix(got, "📝 Descripción: An apple mobile"))

	p.DiscountPercentage = 0
	assert.NotContains(t, Detail(p), "descuento")
}
