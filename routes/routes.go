package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	pagesController "github.com/Arobaczewski/eCommerce-sub000/controllers/pages"
)

// SetupRoutes is the single entry-point that wires up the storefront, session,
// checkout, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// 1️⃣ Public session + catalog + pages routes (no middleware)
	SetupPublicRoutes(r, db)

	// 2️⃣ Session routes (cart, favorites, checkout — session-token protected)
	SetupSessionRoutes(r, db)

	// 3️⃣ Admin routes (API-key protected)
	SetupAdminRoutes(r, db)

	// Unknown path → the not-found page
	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, pagesController.NotFoundPayload())
	})
}
