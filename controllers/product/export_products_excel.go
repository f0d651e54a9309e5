package productcontroller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Arobaczewski/eCommerce-sub000/models"
)

// ExportProductsToExcel streams the full catalog as an .xlsx workbook
// (admin only).
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Category").Order("id asc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Catalog")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sheet"})
			return
		}

		header := sheet.AddRow()
		for _, title := range []string{"ID", "Name", "Slug", "Category", "Price", "Stock", "In Stock", "Popularity", "Created"} {
			header.AddCell().SetString(title)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetInt(int(p.ID))
			row.AddCell().SetString(p.Name)
			row.AddCell().SetString(p.Slug)
			row.AddCell().SetString(p.Category.Name)
			row.AddCell().SetFloat(p.Price)
			row.AddCell().SetInt(p.Stock)
			row.AddCell().SetBool(p.InStock)
			row.AddCell().SetInt(p.Popularity)
			row.AddCell().SetString(p.CreatedAt.Format("2006-01-02"))
		}

		filename := fmt.Sprintf("catalog_%s.xlsx", time.Now().Format("20060102_150405"))
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write workbook"})
			return
		}
	}
}
