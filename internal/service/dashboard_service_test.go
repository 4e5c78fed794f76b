package service

import (
	"context"
	"testing"
	"time"

	"storehub/internal/memstore"
	"storehub/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestBuildSummary(t *testing.T) {
	sales := []model.Sale{
		{TotalPrice: decimal.NewFromFloat(10.50)},
		{TotalPrice: decimal.NewFromFloat(4.50)},
	}
	products := []model.Product{{ID: 1}, {ID: 2}, {ID: 3}}
	inventories := []model.Inventory{
		{Quantity: d(5), MinThreshold: d(10)},  // low
		{Quantity: d(10), MinThreshold: d(10)}, // at threshold counts as low
		{Quantity: d(50), MinThreshold: d(10)},
	}
	customers := []model.Customer{{ID: 1}, {ID: 2}}

	got := BuildSummary(sales, products, inventories, customers)

	assert.True(t, got.TotalSales.Equal(d(15)), "got %s", got.TotalSales)
	assert.Equal(t, 2, got.SalesCount)
	assert.Equal(t, 3, got.TotalProducts)
	assert.Equal(t, 2, got.LowStockItems)
	assert.Equal(t, 2, got.TotalCustomers)
	// "New" customers carry no time scoping, so the figure equals the total.
	assert.Equal(t, got.TotalCustomers, got.NewCustomers)
}

func TestBuildSummaryEmptyStore(t *testing.T) {
	got := BuildSummary(nil, nil, nil, nil)
	assert.True(t, got.TotalSales.IsZero())
	assert.Zero(t, got.SalesCount)
	assert.Zero(t, got.LowStockItems)
}

func TestTopProductsOrderingAndTruncation(t *testing.T) {
	products := []model.Product{
		{ID: 1, Name: "P1"}, {ID: 2, Name: "P2"}, {ID: 3, Name: "P3"},
		{ID: 4, Name: "P4"}, {ID: 5, Name: "P5"}, {ID: 6, Name: "P6"},
	}
	sales := []model.Sale{
		{ProductID: 2, TotalPrice: d(100), Quantity: d(10)},
		{ProductID: 1, TotalPrice: d(50), Quantity: d(5)},
		{ProductID: 3, TotalPrice: d(50), Quantity: d(2)},
		{ProductID: 6, TotalPrice: d(200), Quantity: d(1)},
	}

	got := TopProducts(sales, products)

	require.Len(t, got, 5)
	assert.Equal(t, 6, got[0].ProductID)
	assert.Equal(t, 2, got[1].ProductID)
	// Revenue tie between products 1 and 3: product-list order decides.
	assert.Equal(t, 1, got[2].ProductID)
	assert.Equal(t, 3, got[3].ProductID)
	// Fifth slot is a zero-revenue product.
	assert.True(t, got[4].TotalRevenue.IsZero())
}

func TestTopProductsAggregatesQuantities(t *testing.T) {
	products := []model.Product{{ID: 1, Name: "Rice"}}
	sales := []model.Sale{
		{ProductID: 1, TotalPrice: d(30), Quantity: d(3)},
		{ProductID: 1, TotalPrice: d(20), Quantity: d(2)},
	}

	got := TopProducts(sales, products)
	require.Len(t, got, 1)
	assert.True(t, got[0].TotalRevenue.Equal(d(50)))
	assert.True(t, got[0].TotalQuantity.Equal(d(5)))
}

func TestSalesTrendTakesLastSevenByPosition(t *testing.T) {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	var sales []model.Sale
	for i := 0; i < 10; i++ {
		sales = append(sales, model.Sale{
			ID:         i + 1,
			TotalPrice: d(int64(i + 1)),
			SaleDate:   day,
		})
	}

	got := SalesTrend(sales)

	require.Len(t, got, 7)
	// Window is sales 4..10 — the 7 most recently created, not a calendar
	// aggregation.
	assert.True(t, got[0].Revenue.Equal(d(4)))
	assert.True(t, got[6].Revenue.Equal(d(10)))
	for _, p := range got {
		assert.Equal(t, 1, p.Count)
		assert.Equal(t, "2026-03-01", p.Date)
	}
}

func TestSalesTrendShortHistory(t *testing.T) {
	sales := []model.Sale{
		{TotalPrice: d(1), SaleDate: time.Now()},
		{TotalPrice: d(2), SaleDate: time.Now()},
	}
	got := SalesTrend(sales)
	require.Len(t, got, 2)
	assert.True(t, got[1].Revenue.Equal(d(2)))
}

func TestDashboardServiceEndToEnd(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	require.NoError(t, memstore.Seed(store))

	svc := NewDashboardService(store.Sales(), store.Products(), store.Inventories(), store.Customers(), nil)
	resp, err := svc.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Summary.SalesCount)
	assert.Equal(t, 2, resp.Summary.TotalProducts)
	assert.Equal(t, 1, resp.Summary.TotalCustomers)
	require.Len(t, resp.RecentSales, 1)
	require.Len(t, resp.TopProducts, 2)
	assert.Equal(t, "Rice 5kg", resp.TopProducts[0].Name)
}
