package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory tracks the stock of one product at one branch.
// The row is low-stock iff Quantity <= MinThreshold.
type Inventory struct {
	ID           int             `gorm:"primaryKey;autoIncrement"`
	BranchID     int             `gorm:"index;not null"`
	ProductID    int             `gorm:"index;not null"`
	Quantity     decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	MinThreshold decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	UpdatedAt    time.Time
}

// LowStock reports whether the row is at or below its configured minimum.
func (i Inventory) LowStock() bool {
	return i.Quantity.Cmp(i.MinThreshold) <= 0
}
