// Package filter is the pure catalog filter and sort pipeline applied to
// an in-memory product list before display.
package filter

import (
	"sort"
	"strings"

	"github.com/fitin/storefront/catalog/pkg/response"
)

// Sentinel selections meaning "no filter applied".
const (
	AllCategories = "All Categories"
	AnySize       = "Any Size"
)

const (
	SortRelevance = "relevance"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

type Params struct {
	Query    string
	Category string
	Size     string
	Sort     string
}

// Apply filters by category, then size, then a case-insensitive substring
// match on the product name, and finally sorts by price when requested.
// Filtering preserves catalog order; sorting is stable. The input slice is
// never mutated.
func Apply(products []response.Product, params Params) []response.Product {
	items := make([]response.Product, 0, len(products))
	items = append(items, products...)

	if params.Category != "" && params.Category != AllCategories {
		items = keep(items, func(p response.Product) bool {
			return p.Category == params.Category
		})
	}

	if params.Size != "" && params.Size != AnySize {
		items = keep(items, func(p response.Product) bool {
			for _, size := range p.Sizes {
				if size == params.Size {
					return true
				}
			}
			return false
		})
	}

	if query := strings.TrimSpace(params.Query); query != "" {
		q := strings.ToLower(query)
		items = keep(items, func(p response.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), q)
		})
	}

	switch params.Sort {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price.LessThan(items[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[j].Price.LessThan(items[i].Price)
		})
	}

	return items
}

func keep(items []response.Product, match func(response.Product) bool) []response.Product {
	kept := items[:0]
	for _, item := range items {
		if match(item) {
			kept = append(kept, item)
		}
	}
	return kept
}
