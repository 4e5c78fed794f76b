package dto

import "github.com/shopspring/decimal"

// CreateSaleRequest deliberately carries no price: total_price is computed
// from the product's current unit price at sale time.
type CreateSaleRequest struct {
	BranchID   int             `json:"branch_id"   validate:"required,min=1"`
	ProductID  int             `json:"product_id"  validate:"required,min=1"`
	CustomerID *int            `json:"customer_id" validate:"omitempty,min=1"`
	Quantity   decimal.Decimal `json:"quantity"    validate:"gt=0"`
}

type SaleResponse struct {
	ID         int             `json:"id"`
	BranchID   int             `json:"branch_id"`
	ProductID  int             `json:"product_id"`
	CustomerID *int            `json:"customer_id,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	SaleDate   string          `json:"sale_date"` // YYYY-MM-DD
	StaffID    int             `json:"staff_id"`
	CreatedAt  string          `json:"created_at"`
}
