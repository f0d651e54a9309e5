package favoritesControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Arobaczewski/eCommerce-sub000/models"
)

func sessionID(c *gin.Context) (string, bool) {
	sessionIDVal, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, _ := sessionIDVal.(string)
	return id, true
}

// POST /favorites/:product_id
//
// Toggles membership: a favorited product is removed, an unfavorited one is
// added. Toggling twice lands back in the original state.
func ToggleFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("product_id")).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusNotFound
				errMsg = "Product not found"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		var favorite models.Favorite
		err := db.Where("session_id = ? AND product_id = ?", sid, product.ID).First(&favorite).Error
		if err == nil {
			if err := db.Delete(&favorite).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"product_id": product.ID, "favorited": false})
			return
		}
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorite"})
			return
		}

		favorite = models.Favorite{SessionID: sid, ProductID: product.ID}
		if err := db.Create(&favorite).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product_id": product.ID, "favorited": true})
	}
}

// GET /favorites
func GetFavorites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		var favorites []models.Favorite
		if err := db.Preload("Product").Preload("Product.Category").
			Where("session_id = ?", sid).
			Order("created_at desc").
			Find(&favorites).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"favorites": favorites,
			"count":     len(favorites),
		})
	}
}
