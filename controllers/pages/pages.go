package pagesController

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Static informational content. The storefront's about/shipping/FAQ pages
// are fixed copy; the client renders whatever this returns.

type Page struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

var pages = []Page{
	{
		Slug:  "about",
		Title: "About",
		Content: "This storefront is a portfolio demo. Every product on the shelf is " +
			"something on my own wishlist. No real orders ship, no cards are charged.",
	},
	{
		Slug:  "shipping-returns",
		Title: "Shipping & Returns",
		Content: "Orders ship within 2 business days. Standard shipping is free over $50. " +
			"Returns are accepted within 30 days in original condition.",
	},
	{
		Slug:  "faq",
		Title: "FAQ",
		Content: "Q: Is this a real store?\nA: No — it's a demo. The checkout simulates " +
			"processing and sends confirmation emails, but nothing is charged.\n\n" +
			"Q: Do you restock sold-out items?\nA: The catalog resets when the demo restarts.",
	},
}

// GET /pages
func GetPages() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, pages)
	}
}

// GET /pages/:slug
func GetPageBySlug() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		for _, p := range pages {
			if p.Slug == slug {
				c.JSON(http.StatusOK, p)
				return
			}
		}
		c.JSON(http.StatusNotFound, NotFoundPayload())
	}
}

// NotFoundPayload is the shared not-found page body, used for unknown routes
// and unknown slugs alike.
func NotFoundPayload() gin.H {
	return gin.H{
		"error": "Page not found",
		"page":  "not-found",
	}
}
