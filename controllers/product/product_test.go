package productcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Arobaczewski/eCommerce-sub000/models"
)

func setupProductTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}))

	tech := models.Category{Name: "Technology", Slug: "technology"}
	home := models.Category{Name: "Home", Slug: "home"}
	require.NoError(t, db.Create(&tech).Error)
	require.NoError(t, db.Create(&home).Error)

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	products := []models.Product{
		{Name: "Aurora Monitor", Slug: "aurora-monitor", Description: "4K desk monitor", Price: 499.99, Image: "/i/a.jpg", CategoryID: tech.ID, Stock: 5, InStock: true, Popularity: 95, CreatedAt: base},
		{Name: "Drift Keyboard", Slug: "drift-keyboard", Description: "mechanical keyboard", Price: 149.99, Image: "/i/b.jpg", CategoryID: tech.ID, Stock: 5, InStock: true, Popularity: 88, CreatedAt: base.Add(time.Hour)},
		{Name: "Ember Skillet", Slug: "ember-skillet", Description: "cast iron", Price: 49.99, Image: "/i/c.jpg", CategoryID: home.ID, Stock: 5, InStock: true, Popularity: 75, CreatedAt: base.Add(2 * time.Hour)},
	}
	require.NoError(t, db.Create(&products).Error)

	r := gin.New()
	r.GET("/products", GetProducts(db))
	r.GET("/products/:slug", GetProductBySlug(db))
	r.GET("/categories", GetAllCategories(db))
	return r
}

type listResponse struct {
	Products []models.Product `json:"products"`
	Count    int              `json:"count"`
	Sort     string           `json:"sort"`
}

func getList(t *testing.T, r *gin.Engine, path string) (int, listResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var res listResponse
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	return w.Code, res
}

func TestGetProductsSortedByPriceLow(t *testing.T) {
	r := setupProductTest(t)

	code, res := getList(t, r, "/products?sort=price-low")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 3, res.Count)
	assert.Equal(t, "ember-skillet", res.Products[0].Slug)
	assert.Equal(t, "aurora-monitor", res.Products[2].Slug)
}

func TestGetProductsFiltersByCategory(t *testing.T) {
	r := setupProductTest(t)

	code, res := getList(t, r, "/products?category=home")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "ember-skillet", res.Products[0].Slug)
}

func TestGetProductsUnknownCategory(t *testing.T) {
	r := setupProductTest(t)

	code, _ := getList(t, r, "/products?category=nope")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestGetProductsSearchMatchesNameAndDescription(t *testing.T) {
	r := setupProductTest(t)

	code, res := getList(t, r, "/products?search=keyboard")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "drift-keyboard", res.Products[0].Slug)

	code, res = getList(t, r, "/products?search=CAST+IRON")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, res.Count)
}

func TestGetProductsDefaultSortIsNewest(t *testing.T) {
	r := setupProductTest(t)

	code, res := getList(t, r, "/products")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, SortNewest, res.Sort)
	assert.Equal(t, "ember-skillet", res.Products[0].Slug)
}

func TestGetProductBySlugNotFound(t *testing.T) {
	r := setupProductTest(t)

	req := httptest.NewRequest(http.MethodGet, "/products/no-such-product", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not-found")
}

func TestGetProductBySlug(t *testing.T) {
	r := setupProductTest(t)

	req := httptest.NewRequest(http.MethodGet, "/products/aurora-monitor", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var product models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, "Aurora Monitor", product.Name)
	assert.Equal(t, "Technology", product.Category.Name)
}

func TestGetAllCategoriesIncludesCounts(t *testing.T) {
	r := setupProductTest(t)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var categories []struct {
		Name         string `json:"name"`
		ProductCount int64  `json:"product_count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 2)
	assert.Equal(t, int64(2), categories[0].ProductCount) // Technology
	assert.Equal(t, int64(1), categories[1].ProductCount) // Home
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "aurora-27-4k-monitor", slugify("Aurora 27\" 4K Monitor"))
	assert.Equal(t, "drift-keyboard", slugify("  Drift   Keyboard  "))
}
