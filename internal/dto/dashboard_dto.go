package dto

import "github.com/shopspring/decimal"

// DashboardSummary mirrors what the store currently holds; none of the
// figures apply a date window.
type DashboardSummary struct {
	TotalSales     decimal.Decimal `json:"total_sales"`
	SalesCount     int             `json:"sales_count"`
	TotalProducts  int             `json:"total_products"`
	LowStockItems  int             `json:"low_stock_items"`
	TotalCustomers int             `json:"total_customers"`
	NewCustomers   int             `json:"new_customers"`
}

type TopProduct struct {
	ProductID     int             `json:"product_id"`
	Name          string          `json:"name"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalQuantity decimal.Decimal `json:"total_quantity"`
}

// TrendPoint is one of the most recently recorded sales (insertion order,
// not a calendar-day aggregate).
type TrendPoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Count   int             `json:"count"`
}

type DashboardResponse struct {
	Summary     DashboardSummary `json:"summary"`
	TopProducts []TopProduct     `json:"top_products"`
	RecentSales []TrendPoint     `json:"recent_sales"`
}
