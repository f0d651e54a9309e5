package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	checkoutControllers "github.com/Arobaczewski/eCommerce-sub000/controllers/checkout"
	productcontroller "github.com/Arobaczewski/eCommerce-sub000/controllers/product"
	"github.com/Arobaczewski/eCommerce-sub000/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key
// middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Catalog Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Orders ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", checkoutControllers.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:orderID/status", checkoutControllers.UpdateOrderStatusHandler(db))

			// websocket endpoint for real-time order updates
			orderAdmin.GET("/feed", checkoutControllers.OrderFeedHandler)
		}
	}
}
