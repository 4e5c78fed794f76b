package dto

import "github.com/shopspring/decimal"

// SalesReportRow is one line of the sales report (and of the PDF export).
type SalesReportRow struct {
	SaleID   int             `json:"sale_id"`
	Date     string          `json:"date"`
	Product  string          `json:"product"`
	Quantity decimal.Decimal `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

type SalesReportResponse struct {
	Rows       []SalesReportRow `json:"rows"`
	GrandTotal decimal.Decimal  `json:"grand_total"`
}
