package service

import (
	"context"
	"testing"

	"storehub/internal/apierror"
	"storehub/internal/dto"
	"storehub/internal/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCustomerUpdateMergesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	svc := NewCustomerService(store.Customers())

	created, err := svc.Create(ctx, dto.CreateCustomerRequest{
		Name:     "John Doe",
		Email:    strPtr("john@example.com"),
		Phone:    strPtr("0123456789"),
		BranchID: 1,
	})
	require.NoError(t, err)

	// Patch carries only the phone: everything else must survive.
	updated, err := svc.Update(ctx, created.ID, dto.UpdateCustomerRequest{
		Phone: strPtr("0987654321"),
	})
	require.NoError(t, err)

	assert.Equal(t, "John Doe", updated.Name)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "john@example.com", *updated.Email)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "0987654321", *updated.Phone)
	assert.Equal(t, 1, updated.BranchID)
}

func TestCustomerUpdateMissingID(t *testing.T) {
	store := memstore.New()
	svc := NewCustomerService(store.Customers())

	_, err := svc.Update(context.Background(), 42, dto.UpdateCustomerRequest{Name: strPtr("Ghost")})
	assert.ErrorIs(t, err, apierror.ErrNotFound)
}

func TestCustomerCreateValidation(t *testing.T) {
	store := memstore.New()
	svc := NewCustomerService(store.Customers())

	_, err := svc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:     "", // required
		BranchID: 1,
	})
	var fields apierror.FieldErrors
	assert.ErrorAs(t, err, &fields)
}

func TestCustomerDeleteIdempotentThroughService(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	svc := NewCustomerService(store.Customers())

	created, err := svc.Create(ctx, dto.CreateCustomerRequest{Name: "Jane", BranchID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.NoError(t, svc.Delete(ctx, created.ID))
}
