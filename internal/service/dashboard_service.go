package service

// The dashboard aggregates whatever the store currently holds. None of the
// figures apply a date window, "new customers" equals total customers, and
// the trend is the last seven recorded sales in insertion order rather than
// a per-day rollup. These quirks are load-bearing: clients chart the
// response as-is.

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"storehub/internal/dto"
	"storehub/internal/model"
	"storehub/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	dashboardCacheKey = "cache:dashboard"
	dashboardCacheTTL = 60 * time.Second
	topProductsLimit  = 5
	trendLength       = 7
)

type DashboardService interface {
	Get(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	sales       repository.SaleRepository
	products    repository.ProductRepository
	inventories repository.InventoryRepository
	customers   repository.CustomerRepository
	rdb         *redis.Client // nil disables caching
}

func NewDashboardService(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	inventories repository.InventoryRepository,
	customers repository.CustomerRepository,
	rdb *redis.Client,
) DashboardService {
	return &dashboardService{
		sales:       sales,
		products:    products,
		inventories: inventories,
		customers:   customers,
		rdb:         rdb,
	}
}

func (s *dashboardService) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	inventories, err := s.inventories.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		Summary:     BuildSummary(sales, products, inventories, customers),
		TopProducts: TopProducts(sales, products),
		RecentSales: SalesTrend(sales),
	}

	s.toCache(ctx, resp)
	return resp, nil
}

func (s *dashboardService) fromCache(ctx context.Context) *dto.DashboardResponse {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		return nil // miss or Redis down — fall through to the store
	}
	var resp dto.DashboardResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *dashboardService) toCache(ctx context.Context, resp *dto.DashboardResponse) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, dashboardCacheKey, data, dashboardCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("dashboard: cache write failed")
	}
}

// BuildSummary computes the headline figures over the full data set.
// NewCustomers always equals TotalCustomers: customers carry no "since"
// scoping, so "new" degenerates to "all".
func BuildSummary(sales []model.Sale, products []model.Product, inventories []model.Inventory, customers []model.Customer) dto.DashboardSummary {
	total := decimal.Zero
	for _, sale := range sales {
		total = total.Add(sale.TotalPrice)
	}

	lowStock := 0
	for _, inv := range inventories {
		if inv.LowStock() {
			lowStock++
		}
	}

	return dto.DashboardSummary{
		TotalSales:     total,
		SalesCount:     len(sales),
		TotalProducts:  len(products),
		LowStockItems:  lowStock,
		TotalCustomers: len(customers),
		NewCustomers:   len(customers),
	}
}

// TopProducts ranks products by all-time revenue, highest first, capped at
// five. Every product gets an entry, zero-revenue ones included, and the
// sort is stable so revenue ties keep product order.
func TopProducts(sales []model.Sale, products []model.Product) []dto.TopProduct {
	ranked := make([]dto.TopProduct, len(products))
	index := make(map[int]int, len(products))
	for i, p := range products {
		ranked[i] = dto.TopProduct{
			ProductID:     p.ID,
			Name:          p.Name,
			TotalRevenue:  decimal.Zero,
			TotalQuantity: decimal.Zero,
		}
		index[p.ID] = i
	}
	for _, sale := range sales {
		i, ok := index[sale.ProductID]
		if !ok {
			continue // product deleted after the sale
		}
		ranked[i].TotalRevenue = ranked[i].TotalRevenue.Add(sale.TotalPrice)
		ranked[i].TotalQuantity = ranked[i].TotalQuantity.Add(sale.Quantity)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalRevenue.GreaterThan(ranked[j].TotalRevenue)
	})

	if len(ranked) > topProductsLimit {
		ranked = ranked[:topProductsLimit]
	}
	return ranked
}

// SalesTrend returns the last seven recorded sales as individual points,
// oldest of the window first. Each point carries that one sale's date and
// revenue with Count fixed at 1 — it is not a per-day aggregate.
func SalesTrend(sales []model.Sale) []dto.TrendPoint {
	start := 0
	if len(sales) > trendLength {
		start = len(sales) - trendLength
	}
	window := sales[start:]

	points := make([]dto.TrendPoint, len(window))
	for i, sale := range window {
		points[i] = dto.TrendPoint{
			Date:    sale.SaleDate.Format("2006-01-02"),
			Revenue: sale.TotalPrice,
			Count:   1,
		}
	}
	return points
}
