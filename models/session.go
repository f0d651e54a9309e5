package models

import "time"

// Session is an anonymous browser session. Cart and favorite rows hang off
// its ID; there are no user accounts.
type Session struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
