package model

import "time"

// Branch is a physical business location owning its own inventory,
// customers and sales.
type Branch struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"not null"`
	Address   *string
	CreatedAt time.Time
}
