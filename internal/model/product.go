package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry shared by all branches; stock levels live in
// per-branch Inventory rows.
type Product struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"index;not null"`
	Description *string
	Category    *string
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
