package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Arobaczewski/eCommerce-sub000/models"
)

type AddCartItemInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

// cartResponse is the GetCart payload: the item list plus the derived badge
// count and totals. Mutations return the affected line only, teacher-style;
// the client refetches when it needs fresh totals.
func cartResponse(items []models.CartItem) gin.H {
	total := models.CartTotal(items)
	return gin.H{
		"items":       items,
		"count":       models.CartCount(items),
		"total":       total,
		"total_label": models.FormatPrice(total),
	}
}

func sessionCart(c *gin.Context, db *gorm.DB) (*models.Cart, bool) {
	sessionIDVal, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	sessionID, _ := sessionIDVal.(string)

	var cart models.Cart
	if err := db.Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session cart not found"})
		return nil, false
	}
	return &cart, true
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := sessionCart(c, db)
		if !ok {
			return
		}

		var items []models.CartItem
		if err := db.Where("cart_id = ?", cart.CartID).Order("added_at asc").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(items))
	}
}

// POST /cart
//
// Adds a product+variant to the cart. When the same product+variant line
// already exists its quantity is incremented instead of creating a duplicate
// line; the result is clamped to the quantity range the picker offers.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := sessionCart(c, db)
		if !ok {
			return
		}

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}
		if !product.InStock {
			c.JSON(http.StatusConflict, gin.H{"error": "Product is out of stock"})
			return
		}

		var item models.CartItem
		err := db.Where("cart_id = ? AND product_id = ? AND color = ? AND size = ?",
			cart.CartID, input.ProductID, input.Color, input.Size).First(&item).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
				return
			}
			newItem := models.CartItem{
				CartID:       cart.CartID,
				ProductID:    product.ID,
				ProductName:  product.Name,
				ProductSlug:  product.Slug,
				ProductImage: product.Image,
				ProductPrice: product.Price,
				Color:        input.Color,
				Size:         input.Size,
				Quantity:     models.ClampQuantity(input.Quantity),
				AddedAt:      time.Now(),
			}
			if err := db.Create(&newItem).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
			c.JSON(http.StatusCreated, newItem)
			return
		}

		// Same product+variant already in the cart: increment, don't
		// duplicate. AddedAt stays put so the line keeps its spot in the
		// cart listing.
		item.Quantity = models.ClampQuantity(item.Quantity + input.Quantity)
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// PUT /cart/:item_id
func UpdateCartItemQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := sessionCart(c, db)
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		if err := db.Where("cart_id = ? AND id = ?", cart.CartID, c.Param("item_id")).First(&item).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			}
			return
		}

		item.Quantity = models.ClampQuantity(input.Quantity)
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// DELETE /cart/:item_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := sessionCart(c, db)
		if !ok {
			return
		}

		result := db.Where("cart_id = ? AND id = ?", cart.CartID, c.Param("item_id")).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := sessionCart(c, db)
		if !ok {
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
