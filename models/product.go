package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"uniqueIndex;not null" json:"slug"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Image       string  `gorm:"not null" json:"image"`
	// Extra gallery images, pipe-separated. Empty for single-image products.
	GalleryImages string         `json:"gallery_images,omitempty"`
	CategoryID    uint           `gorm:"index" json:"category_id"`
	Category      Category       `json:"category"`
	InStock       bool           `gorm:"default:true" json:"in_stock"`
	Stock         int            `json:"stock"`
	Popularity    int            `json:"popularity"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"-"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// PriceLabel renders the catalog price as a display string, e.g. "$499.99".
func (p Product) PriceLabel() string {
	return FormatPrice(p.Price)
}
