package filter

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fitin/storefront/catalog/pkg/response"
)

func catalogFixture() []response.Product {
	return []response.Product{
		{
			Name:     "Oversized Hoodie",
			Price:    decimal.NewFromInt(100),
			Category: "A",
			Sizes:    []string{"S"},
		},
		{
			Name:     "Sweat Shirt",
			Price:    decimal.NewFromInt(50),
			Category: "B",
			Sizes:    []string{"M"},
		},
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		products []response.Product
		params   Params
		expected []string
	}{
		{
			name:     "given category A should keep only category A products",
			products: catalogFixture(),
			params:   Params{Category: "A", Size: AnySize},
			expected: []string{"Oversized Hoodie"},
		},
		{
			name:     "given size M should keep only products carrying size M",
			products: catalogFixture(),
			params:   Params{Category: AllCategories, Size: "M"},
			expected: []string{"Sweat Shirt"},
		},
		{
			name:     "given all-categories sentinel should keep everything",
			products: catalogFixture(),
			params:   Params{Category: AllCategories, Size: AnySize},
			expected: []string{"Oversized Hoodie", "Sweat Shirt"},
		},
		{
			name:     "given price-asc sort should order cheapest first",
			products: catalogFixture(),
			params:   Params{Sort: SortPriceAsc},
			expected: []string{"Sweat Shirt", "Oversized Hoodie"},
		},
		{
			name:     "given price-desc sort should order most expensive first",
			products: catalogFixture(),
			params:   Params{Sort: SortPriceDesc},
			expected: []string{"Oversized Hoodie", "Sweat Shirt"},
		},
		{
			name:     "given lowercase query should match product name case-insensitively",
			products: catalogFixture(),
			params:   Params{Query: "shirt"},
			expected: []string{"Sweat Shirt"},
		},
		{
			name:     "given whitespace-only query should apply no text filter",
			products: catalogFixture(),
			params:   Params{Query: "   "},
			expected: []string{"Oversized Hoodie", "Sweat Shirt"},
		},
		{
			name:     "given query with no matches should return empty result",
			products: catalogFixture(),
			params:   Params{Query: "denim"},
			expected: []string{},
		},
		{
			name:     "given empty product list should return empty result",
			products: []response.Product{},
			params:   Params{Query: "shirt", Category: "A", Size: "M", Sort: SortPriceAsc},
			expected: []string{},
		},
		{
			name:     "given nil product list should return empty result",
			products: nil,
			params:   Params{Category: "A"},
			expected: []string{},
		},
		{
			name:     "given combined filters should intersect them",
			products: catalogFixture(),
			params:   Params{Category: "B", Size: "M", Query: "sweat"},
			expected: []string{"Sweat Shirt"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := Apply(tt.products, tt.params)
			names := make([]string, 0, len(filtered))
			for _, p := range filtered {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestApplySortIsStable(t *testing.T) {
	products := []response.Product{
		{Name: "First", Price: decimal.NewFromInt(100), Category: "A"},
		{Name: "Second", Price: decimal.NewFromInt(100), Category: "A"},
		{Name: "Third", Price: decimal.NewFromInt(100), Category: "A"},
	}
	filtered := Apply(products, Params{Sort: SortPriceAsc})
	assert.Equal(t, "First", filtered[0].Name)
	assert.Equal(t, "Second", filtered[1].Name)
	assert.Equal(t, "Third", filtered[2].Name)
}

func TestApplyPreservesCatalogOrderWithoutSort(t *testing.T) {
	products := []response.Product{
		{Name: "Expensive", Price: decimal.NewFromInt(900), Category: "A"},
		{Name: "Cheap", Price: decimal.NewFromInt(10), Category: "A"},
	}
	filtered := Apply(products, Params{Category: "A", Sort: SortRelevance})
	assert.Equal(t, "Expensive", filtered[0].Name)
	assert.Equal(t, "Cheap", filtered[1].Name)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := catalogFixture()
	Apply(products, Params{Sort: SortPriceAsc})
	assert.Equal(t, "Oversized Hoodie", products[0].Name)
}
