package dto

import "github.com/shopspring/decimal"

type CreateInventoryRequest struct {
	BranchID     int             `json:"branch_id"     validate:"required,min=1"`
	ProductID    int             `json:"product_id"    validate:"required,min=1"`
	Quantity     decimal.Decimal `json:"quantity"      validate:"min=0"`
	MinThreshold decimal.Decimal `json:"min_threshold" validate:"min=0"`
}

type UpdateInventoryRequest struct {
	Quantity     *decimal.Decimal `json:"quantity"      validate:"omitempty,min=0"`
	MinThreshold *decimal.Decimal `json:"min_threshold" validate:"omitempty,min=0"`
}

type InventoryResponse struct {
	ID           int             `json:"id"`
	BranchID     int             `json:"branch_id"`
	ProductID    int             `json:"product_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	MinThreshold decimal.Decimal `json:"min_threshold"`
	LowStock     bool            `json:"low_stock"`
	UpdatedAt    string          `json:"updated_at"`
}
