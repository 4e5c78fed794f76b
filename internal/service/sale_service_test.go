package service

import (
	"context"
	"testing"

	"storehub/internal/apierror"
	"storehub/internal/dto"
	"storehub/internal/memstore"
	"storehub/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSaleFixture(t *testing.T) (*memstore.Store, SaleService) {
	t.Helper()
	s := memstore.New()
	svc := NewSaleService(s.Sales(), s.Products(), s.Inventories(), s.Branches(), nil)
	return s, svc
}

func TestCreateSaleComputesTotalAndDecrementsStock(t *testing.T) {
	ctx := context.Background()
	store, svc := newSaleFixture(t)

	rice := model.Product{Name: "Rice", UnitPrice: decimal.NewFromInt(10)}
	require.NoError(t, store.Products().Create(ctx, &rice))
	inv := model.Inventory{BranchID: 1, ProductID: rice.ID, Quantity: decimal.NewFromInt(5), MinThreshold: decimal.NewFromInt(1)}
	require.NoError(t, store.Inventories().Create(ctx, &inv))

	resp, err := svc.Create(ctx, 7, dto.CreateSaleRequest{
		BranchID:  1,
		ProductID: rice.ID,
		Quantity:  decimal.NewFromInt(3),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, 7, resp.StaffID)
	assert.True(t, resp.TotalPrice.Equal(decimal.NewFromInt(30)), "got %s", resp.TotalPrice)

	got, err := store.Inventories().FindByBranchAndProduct(ctx, 1, rice.ID)
	require.NoError(t, err)
	assert.True(t, got.Quantity.Equal(decimal.NewFromInt(2)), "got %s", got.Quantity)
}

func TestCreateSaleWithoutInventoryRowStillSucceeds(t *testing.T) {
	ctx := context.Background()
	store, svc := newSaleFixture(t)

	milk := model.Product{Name: "Milk", UnitPrice: decimal.NewFromFloat(1.5)}
	require.NoError(t, store.Products().Create(ctx, &milk))

	resp, err := svc.Create(ctx, 1, dto.CreateSaleRequest{
		BranchID:  3, // no stock tracked for this branch
		ProductID: milk.ID,
		Quantity:  decimal.NewFromInt(4),
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalPrice.Equal(decimal.NewFromInt(6)))

	inventories, err := store.Inventories().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, inventories)
}

func TestCreateSaleUnknownProduct(t *testing.T) {
	_, svc := newSaleFixture(t)

	_, err := svc.Create(context.Background(), 1, dto.CreateSaleRequest{
		BranchID:  1,
		ProductID: 99,
		Quantity:  decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestCreateSaleRejectsNonPositiveQuantity(t *testing.T) {
	ctx := context.Background()
	store, svc := newSaleFixture(t)

	p := model.Product{Name: "Bread", UnitPrice: decimal.NewFromInt(2)}
	require.NoError(t, store.Products().Create(ctx, &p))

	for _, qty := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-2)} {
		_, err := svc.Create(ctx, 1, dto.CreateSaleRequest{BranchID: 1, ProductID: p.ID, Quantity: qty})
		var fields apierror.FieldErrors
		require.ErrorAs(t, err, &fields, "quantity %s should fail validation", qty)
	}

	sales, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestListSalesInCreationOrder(t *testing.T) {
	ctx := context.Background()
	store, svc := newSaleFixture(t)

	p := model.Product{Name: "Eggs", UnitPrice: decimal.NewFromInt(3)}
	require.NoError(t, store.Products().Create(ctx, &p))

	for i := 1; i <= 3; i++ {
		_, err := svc.Create(ctx, 1, dto.CreateSaleRequest{
			BranchID:  1,
			ProductID: p.ID,
			Quantity:  decimal.NewFromInt(int64(i)),
		})
		require.NoError(t, err)
	}

	sales, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 3)
	for i, sale := range sales {
		assert.Equal(t, i+1, sale.ID)
	}
}
