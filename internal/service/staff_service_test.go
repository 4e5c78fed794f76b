package service

import (
	"context"
	"testing"

	"storehub/internal/dto"
	"storehub/internal/memstore"
	"storehub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestStaffCreateHashesPasswordAtSharedCost(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	svc := NewStaffService(store.Users())

	created, err := svc.Create(ctx, dto.CreateStaffRequest{
		Email:    "clerk@mail.com",
		Password: "clerk-secret",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleStaff, created.Role)

	user, err := store.Users().FindByEmail(ctx, "clerk@mail.com")
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("clerk-secret")))

	cost, err := bcrypt.Cost([]byte(user.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, model.PasswordHashCost, cost)
}

func TestSeedUsersHashAtSharedCost(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	require.NoError(t, memstore.Seed(store))

	for _, email := range []string{"admin@mail.com", "staff@mail.com"} {
		user, err := store.Users().FindByEmail(ctx, email)
		require.NoError(t, err)
		cost, err := bcrypt.Cost([]byte(user.PasswordHash))
		require.NoError(t, err)
		assert.Equal(t, model.PasswordHashCost, cost, email)
	}
}
