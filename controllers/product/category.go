package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Arobaczewski/eCommerce-sub000/models"
)

type categoryWithCount struct {
	models.Category
	ProductCount int64 `json:"product_count"`
}

// GetAllCategories returns the fixed category set with per-category product
// counts for the navigation menu.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("id asc").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		result := make([]categoryWithCount, 0, len(categories))
		for _, cat := range categories {
			var count int64
			if err := db.Model(&models.Product{}).Where("category_id = ?", cat.ID).Count(&count).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
				return
			}
			result = append(result, categoryWithCount{Category: cat, ProductCount: count})
		}

		c.JSON(http.StatusOK, result)
	}
}
