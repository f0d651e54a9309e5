package models

import "time"

// Favorite is a membership-only saved product: one row per
// (session, product), no quantity.
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"uniqueIndex:idx_session_product" json:"-"`
	ProductID uint      `gorm:"uniqueIndex:idx_session_product" json:"product_id"`
	Product   Product   `json:"product"`
	CreatedAt time.Time `json:"created_at"`
}
