package models

import "time"

// Quantity bounds offered by the storefront quantity picker.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	SessionID string     `gorm:"uniqueIndex" json:"session_id"` // one cart per browser session
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one cart line. Lines are unique per product+variant: the same
// product in a different color or size is a separate line.
type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"index" json:"-"`
	ProductID    uint      `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductSlug  string    `json:"product_slug"`
	ProductImage string    `json:"product_image"`
	ProductPrice float64   `json:"product_price"`
	Color        string    `json:"color,omitempty"`
	Size         string    `json:"size,omitempty"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}

// MatchesVariant reports whether the line holds the given product+variant
// combination, the uniqueness key for cart lines.
func (i CartItem) MatchesVariant(productID uint, color, size string) bool {
	return i.ProductID == productID && i.Color == color && i.Size == size
}

// ClampQuantity forces q into the range the quantity picker offers.
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}
