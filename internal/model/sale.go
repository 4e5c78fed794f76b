package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is immutable once created. TotalPrice is always computed by the sale
// service as unit_price * quantity at sale time — never trusted from input.
type Sale struct {
	ID         int `gorm:"primaryKey;autoIncrement"`
	BranchID   int `gorm:"index;not null"`
	ProductID  int `gorm:"index;not null"`
	CustomerID *int
	Quantity   decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SaleDate   time.Time       `gorm:"type:date;not null"`
	StaffID    int             `gorm:"not null"`
	CreatedAt  time.Time
}
