package memstore

import (
	"context"
	"testing"

	"storehub/internal/apierror"
	"storehub/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignsMaxPlusOne(t *testing.T) {
	ctx := context.Background()
	s := New()

	b1 := model.Branch{Name: "First"}
	b2 := model.Branch{Name: "Second"}
	require.NoError(t, s.Branches().Create(ctx, &b1))
	require.NoError(t, s.Branches().Create(ctx, &b2))
	assert.Equal(t, 1, b1.ID)
	assert.Equal(t, 2, b2.ID)

	// After deleting the highest id, the next create reuses it: ids come
	// from max(existing)+1, not a monotonic sequence.
	require.NoError(t, s.Branches().Delete(ctx, 2))
	b3 := model.Branch{Name: "Third"}
	require.NoError(t, s.Branches().Create(ctx, &b3))
	assert.Equal(t, 2, b3.ID)

	// Deleting everything resets the sequence to 1.
	require.NoError(t, s.Branches().Delete(ctx, 1))
	require.NoError(t, s.Branches().Delete(ctx, 2))
	b4 := model.Branch{Name: "Fresh"}
	require.NoError(t, s.Branches().Create(ctx, &b4))
	assert.Equal(t, 1, b4.ID)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := New()

	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, s.Products().Create(ctx, &model.Product{Name: name}))
	}
	products, err := s.Products().List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "A", products[0].Name)
	assert.Equal(t, "B", products[1].Name)
	assert.Equal(t, "C", products[2].Name)
}

func TestUpdateMissingIDReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	s := New()

	err := s.Products().Update(ctx, &model.Product{ID: 42, Name: "ghost"})
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := New()

	c := model.Customer{Name: "Jane", BranchID: 1}
	require.NoError(t, s.Customers().Create(ctx, &c))

	require.NoError(t, s.Customers().Delete(ctx, c.ID))
	require.NoError(t, s.Customers().Delete(ctx, c.ID)) // second delete: no error
	require.NoError(t, s.Customers().Delete(ctx, 999))  // never existed: no error

	customers, err := s.Customers().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestDecrementQuantityFloorsAtZero(t *testing.T) {
	s := New()
	inv := model.Inventory{BranchID: 1, ProductID: 1, Quantity: decimal.NewFromInt(5), MinThreshold: decimal.NewFromInt(2)}
	require.NoError(t, s.Inventories().Create(context.Background(), &inv))

	require.NoError(t, s.Inventories().DecrementQuantityTx(nil, 1, 1, decimal.NewFromInt(8)))

	got, err := s.Inventories().FindByID(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.True(t, got.Quantity.IsZero(), "quantity should floor at zero, got %s", got.Quantity)
}

func TestDecrementMissingRowIsNoOp(t *testing.T) {
	s := New()
	inv := model.Inventory{BranchID: 1, ProductID: 1, Quantity: decimal.NewFromInt(5)}
	require.NoError(t, s.Inventories().Create(context.Background(), &inv))

	// No row for (branch 2, product 9): nothing changes, no error.
	require.NoError(t, s.Inventories().DecrementQuantityTx(nil, 2, 9, decimal.NewFromInt(3)))

	got, err := s.Inventories().FindByID(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.True(t, got.Quantity.Equal(decimal.NewFromInt(5)))
}

func TestSeedDataset(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, Seed(s))

	branches, _ := s.Branches().List(ctx)
	products, _ := s.Products().List(ctx)
	inventories, _ := s.Inventories().List(ctx)
	customers, _ := s.Customers().List(ctx)
	sales, _ := s.Sales().List(ctx)

	assert.Len(t, branches, 1)
	assert.Len(t, products, 2)
	assert.Len(t, inventories, 2)
	assert.Len(t, customers, 1)
	assert.Len(t, sales, 1)

	// The seeded sale of 2 rice already decremented its stock row.
	rice, err := s.Inventories().FindByBranchAndProduct(ctx, 1, 1)
	require.NoError(t, err)
	assert.True(t, rice.Quantity.Equal(decimal.NewFromInt(118)), "got %s", rice.Quantity)

	admin, err := s.Users().FindByEmail(ctx, "admin@mail.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
}
