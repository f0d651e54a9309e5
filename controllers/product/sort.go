package productcontroller

import (
	"sort"
	"strings"

	"github.com/Arobaczewski/eCommerce-sub000/models"
)

// Sort keys offered by the catalog toolbar.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
	SortPopular   = "popular"
)

// SortProducts returns a new slice ordered by the given sort key. Unknown
// keys fall back to newest-first. Equal keys keep their incoming order.
func SortProducts(products []models.Product, key string) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	var less func(a, b models.Product) bool
	switch key {
	case SortPriceLow:
		less = func(a, b models.Product) bool { return a.Price < b.Price }
	case SortPriceHigh:
		less = func(a, b models.Product) bool { return a.Price > b.Price }
	case SortNameAsc:
		less = func(a, b models.Product) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case SortNameDesc:
		less = func(a, b models.Product) bool {
			return strings.ToLower(a.Name) > strings.ToLower(b.Name)
		}
	case SortPopular:
		less = func(a, b models.Product) bool { return a.Popularity > b.Popularity }
	default: // SortNewest
		less = func(a, b models.Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	}

	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}
