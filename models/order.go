package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, simulated processing running
	OrderStatusConfirmed OrderStatus = "confirmed" // processing finished, emails dispatched
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Ref         string      `gorm:"uniqueIndex;not null" json:"ref"`
	SessionID   string      `gorm:"index" json:"-"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`

	// Shipping snapshot from the checkout form.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`

	// Payment summary only. The raw card number, expiry and CVV are
	// validated, reduced to last-4, and discarded.
	CardLast4 string `gorm:"type:VARCHAR(4)" json:"card_last4"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"-"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	ProductPrice float64 `json:"product_price"`
	Color        string  `json:"color,omitempty"`
	Size         string  `json:"size,omitempty"`
	Quantity     int     `json:"quantity"`
}
