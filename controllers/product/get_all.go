package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Arobaczewski/eCommerce-sub000/models"
)

func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1️⃣ Filtering & sorting params
		search := c.Query("search")
		categorySlug := c.Query("category")
		sortKey := c.DefaultQuery("sort", SortNewest)

		// 2️⃣ Build base query
		query := db.Model(&models.Product{}).Preload("Category")

		// 3️⃣ Apply search filter
		if search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where(
				"LOWER(name) LIKE ? OR LOWER(description) LIKE ?",
				likePattern, likePattern,
			)
		}

		// 4️⃣ Apply category filter
		if categorySlug != "" {
			var category models.Category
			if err := db.Where("slug = ?", categorySlug).First(&category).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
				} else {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
				}
				return
			}
			query = query.Where("category_id = ?", category.ID)
		}

		// 5️⃣ Fetch, then order in memory so every sort key behaves the same
		// regardless of database collation
		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		products = SortProducts(products, sortKey)

		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"count":    len(products),
			"sort":     sortKey,
		})
	}
}
