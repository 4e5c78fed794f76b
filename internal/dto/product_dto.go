package dto

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name        string          `json:"name"        validate:"required,min=1,max=200"`
	Description *string         `json:"description" validate:"omitempty,max=500"`
	Category    *string         `json:"category"    validate:"omitempty,max=100"`
	UnitPrice   decimal.Decimal `json:"unit_price"  validate:"min=0"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"        validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Category    *string          `json:"category"    validate:"omitempty,max=100"`
	UnitPrice   *decimal.Decimal `json:"unit_price"  validate:"omitempty,min=0"`
}

type ProductResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Category    *string         `json:"category,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CreatedAt   string          `json:"created_at"`
}
