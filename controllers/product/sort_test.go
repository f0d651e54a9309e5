package productcontroller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Arobaczewski/eCommerce-sub000/models"
)

func sortFixture() []models.Product {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return []models.Product{
		{ID: 1, Name: "Zephyr Lamp", Price: 10, Popularity: 40, CreatedAt: base},
		{ID: 2, Name: "anvil stand", Price: 5, Popularity: 90, CreatedAt: base.Add(48 * time.Hour)},
		{ID: 3, Name: "Monitor Arm", Price: 25, Popularity: 70, CreatedAt: base.Add(24 * time.Hour)},
	}
}

func prices(ps []models.Product) []float64 {
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = p.Price
	}
	return out
}

func ids(ps []models.Product) []uint {
	out := make([]uint, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestSortProductsPriceLow(t *testing.T) {
	sorted := SortProducts([]models.Product{{Price: 10}, {Price: 5}}, SortPriceLow)
	assert.Equal(t, []float64{5, 10}, prices(sorted))
}

func TestSortProductsPriceHigh(t *testing.T) {
	sorted := SortProducts(sortFixture(), SortPriceHigh)
	assert.Equal(t, []float64{25, 10, 5}, prices(sorted))
}

func TestSortProductsNameIsCaseInsensitive(t *testing.T) {
	sorted := SortProducts(sortFixture(), SortNameAsc)
	assert.Equal(t, []uint{2, 3, 1}, ids(sorted))

	sorted = SortProducts(sortFixture(), SortNameDesc)
	assert.Equal(t, []uint{1, 3, 2}, ids(sorted))
}

func TestSortProductsPopular(t *testing.T) {
	sorted := SortProducts(sortFixture(), SortPopular)
	assert.Equal(t, []uint{2, 3, 1}, ids(sorted))
}

func TestSortProductsNewestIsDefault(t *testing.T) {
	sorted := SortProducts(sortFixture(), SortNewest)
	assert.Equal(t, []uint{2, 3, 1}, ids(sorted))

	// Unknown keys fall back to newest
	fallback := SortProducts(sortFixture(), "bogus-key")
	assert.Equal(t, ids(sorted), ids(fallback))
}

func TestSortProductsStableForEqualKeys(t *testing.T) {
	input := []models.Product{
		{ID: 1, Price: 10},
		{ID: 2, Price: 10},
		{ID: 3, Price: 10},
	}
	sorted := SortProducts(input, SortPriceLow)
	assert.Equal(t, []uint{1, 2, 3}, ids(sorted))
}

func TestSortProductsDoesNotMutateInput(t *testing.T) {
	input := sortFixture()
	_ = SortProducts(input, SortPriceLow)
	assert.Equal(t, []uint{1, 2, 3}, ids(input))
}
