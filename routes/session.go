package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Arobaczewski/eCommerce-sub000/controllers/cart"
	checkoutControllers "github.com/Arobaczewski/eCommerce-sub000/controllers/checkout"
	favoritesControllers "github.com/Arobaczewski/eCommerce-sub000/controllers/favorites"
	"github.com/Arobaczewski/eCommerce-sub000/middleware"
)

// SetupSessionRoutes registers the cart, favorites and checkout endpoints.
// Requires the session-token middleware.
func SetupSessionRoutes(r *gin.Engine, db *gorm.DB) {
	sessionGroup := r.Group("/")
	sessionGroup.Use(middleware.ValidateSession)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := sessionGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(db))                        // GET /cart
			cartGroup.POST("", cartControllers.AddCartItem(db))                   // POST /cart
			cartGroup.PUT("/:item_id", cartControllers.UpdateCartItemQuantity(db)) // PUT /cart/:item_id
			cartGroup.DELETE("/:item_id", cartControllers.DeleteCartItem(db))     // DELETE /cart/:item_id
			cartGroup.DELETE("", cartControllers.ClearCart(db))                   // DELETE /cart
		}

		// ──────────────── Favorites ────────────────
		favGroup := sessionGroup.Group("/favorites")
		{
			favGroup.GET("", favoritesControllers.GetFavorites(db))
			favGroup.POST("/:product_id", favoritesControllers.ToggleFavorite(db))
		}

		// ──────────────── Checkout Wizard ────────────────
		checkoutGroup := sessionGroup.Group("/checkout")
		{
			checkoutGroup.POST("/validate", checkoutControllers.ValidateCheckoutStep())
			checkoutGroup.POST("", checkoutControllers.PlaceOrder(db))
			checkoutGroup.GET("/orders/:ref", checkoutControllers.GetOrderByRef(db))
		}
	}
}
