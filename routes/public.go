package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Arobaczewski/eCommerce-sub000/auth"
	pagesController "github.com/Arobaczewski/eCommerce-sub000/controllers/pages"
	productcontroller "github.com/Arobaczewski/eCommerce-sub000/controllers/product"
)

// SetupPublicRoutes registers everything reachable without a session token:
// session creation, the catalog, and the informational pages.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	// ─────────── Session ───────────
	r.POST("/session", auth.CreateSession(db))

	// ─────────── Catalog ───────────
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:slug", productcontroller.GetProductBySlug(db))
	r.GET("/categories", productcontroller.GetAllCategories(db))

	// ─────────── Informational Pages ───────────
	r.GET("/pages", pagesController.GetPages())
	r.GET("/pages/:slug", pagesController.GetPageBySlug())
	r.POST("/contact", pagesController.SubmitContact())
}
