package service

import (
	"context"
	"testing"

	"storehub/internal/apierror"
	"storehub/internal/config"
	"storehub/internal/dto"
	"storehub/internal/memstore"
	"storehub/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (AuthService, session.Store) {
	t.Helper()
	store := memstore.New()
	require.NoError(t, memstore.Seed(store))
	sessions := session.NewMemory()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    2,
	}
	return NewAuthService(store.Users(), sessions, cfg), sessions
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@mail.com",
		Password: "admin123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotEqual(t, resp.AccessToken, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, "admin", resp.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@mail.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, apierror.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@mail.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apierror.ErrInvalidCredentials)
}

func TestLoginValidation(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "not-an-email", Password: "x"})
	var fields apierror.FieldErrors
	assert.ErrorAs(t, err, &fields)
}

func TestRefreshRotatesTokens(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	first, err := svc.Login(ctx, dto.LoginRequest{Email: "staff@mail.com", Password: "staff123"})
	require.NoError(t, err)

	second, err := svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.AccessToken, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The old refresh token died with the rotation.
	_, err = svc.Refresh(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, apierror.ErrInvalidCredentials)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	resp, err := svc.Login(ctx, dto.LoginRequest{Email: "staff@mail.com", Password: "staff123"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, apierror.ErrInvalidCredentials)
}

func TestLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	require.NoError(t, memstore.Seed(store))
	sessions := session.NewMemory()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 1, JWTRefreshHours: 2}
	svc := NewAuthService(store.Users(), sessions, cfg)

	resp, err := svc.Login(ctx, dto.LoginRequest{Email: "admin@mail.com", Password: "admin123"})
	require.NoError(t, err)

	// Find the snapshot by trying a refresh first, then log out and verify
	// the refresh path is dead.
	_, err = svc.Refresh(ctx, resp.RefreshToken)
	require.NoError(t, err)

	again, err := svc.Login(ctx, dto.LoginRequest{Email: "admin@mail.com", Password: "admin123"})
	require.NoError(t, err)

	claims, err := svc.(*authService).parseToken(again.AccessToken)
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, claims.ID))

	_, err = sessions.Load(ctx, claims.ID)
	assert.ErrorIs(t, err, session.ErrNoSession)
	_, err = svc.Refresh(ctx, again.RefreshToken)
	assert.ErrorIs(t, err, apierror.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthFixture(t)

	resp, err := svc.Login(ctx, dto.LoginRequest{Email: "staff@mail.com", Password: "staff123"})
	require.NoError(t, err)

	me, err := svc.Me(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "staff@mail.com", me.Email)
	assert.Equal(t, "staff", me.Role)
	require.NotNil(t, me.BranchID)
	assert.Equal(t, 1, *me.BranchID)
}
