//go:build integration

package router_test

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storehub/internal/config"
	"storehub/internal/infra"
	"storehub/internal/model"
	"storehub/internal/repository"
	"storehub/internal/router"
	"storehub/internal/session"
	"storehub/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func setupEnv(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("storehub_test"),
		tcPostgres.WithUsername("storehub"),
		tcPostgres.WithPassword("storehub"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Env:                "test",
		JWTSecret:          "integration-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    2,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		ReportStoragePath:  t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	users := repository.NewUserRepository(db)
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, &model.User{
		Email:        "admin@test.local",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}))

	r := router.New(router.Deps{
		Cfg:         cfg,
		DB:          db,
		RDB:         rdb,
		Sessions:    session.NewRedis(rdb),
		Dispatcher:  worker.NewDispatcher(rdb),
		Branches:    repository.NewBranchRepository(db),
		Users:       users,
		Products:    repository.NewProductRepository(db),
		Inventories: repository.NewInventoryRepository(db),
		Customers:   repository.NewCustomerRepository(db),
		Sales:       repository.NewSaleRepository(db),
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"email": "admin@test.local", "password": "admin123"}), "")
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var login struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &login)
	require.NotEmpty(t, login.AccessToken)

	return srv, login.AccessToken
}

func TestFullSaleCycle(t *testing.T) {
	srv, token := setupEnv(t)

	// Branch
	branchResp := do(t, srv, "POST", "/v1/branches",
		jsonBody(t, map[string]any{"name": "Main"}), token)
	require.Equal(t, http.StatusCreated, branchResp.StatusCode)
	var branch struct {
		ID int `json:"id"`
	}
	decodeJSON(t, branchResp, &branch)

	// Product
	prodResp := do(t, srv, "POST", "/v1/products",
		jsonBody(t, map[string]any{"name": "Rice", "unit_price": "10"}), token)
	require.Equal(t, http.StatusCreated, prodResp.StatusCode)
	var prod struct {
		ID int `json:"id"`
	}
	decodeJSON(t, prodResp, &prod)

	// Stock row
	invResp := do(t, srv, "POST", "/v1/inventory",
		jsonBody(t, map[string]any{
			"branch_id": branch.ID, "product_id": prod.ID,
			"quantity": "5", "min_threshold": "1",
		}), token)
	require.Equal(t, http.StatusCreated, invResp.StatusCode)

	// Sale of 3 — total computed server-side, stock decremented
	saleResp := do(t, srv, "POST", "/v1/sales",
		jsonBody(t, map[string]any{
			"branch_id": branch.ID, "product_id": prod.ID, "quantity": "3",
		}), token)
	require.Equal(t, http.StatusCreated, saleResp.StatusCode)
	var sale struct {
		TotalPrice string `json:"total_price"`
	}
	decodeJSON(t, saleResp, &sale)
	assert.Equal(t, "30", sale.TotalPrice)

	// Inventory reflects the decrement
	listResp := do(t, srv, "GET", "/v1/inventory", nil, token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var rows []struct {
		Quantity string `json:"quantity"`
	}
	decodeJSON(t, listResp, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "2", rows[0].Quantity)

	// Dashboard sees the sale
	dashResp := do(t, srv, "GET", "/v1/dashboard", nil, token)
	require.Equal(t, http.StatusOK, dashResp.StatusCode)
	var dash struct {
		Summary struct {
			SalesCount int `json:"sales_count"`
		} `json:"summary"`
	}
	decodeJSON(t, dashResp, &dash)
	assert.Equal(t, 1, dash.Summary.SalesCount)
}

func TestLogoutRevokesToken(t *testing.T) {
	srv, token := setupEnv(t)

	meResp := do(t, srv, "GET", "/v1/auth/me", nil, token)
	require.Equal(t, http.StatusOK, meResp.StatusCode)
	meResp.Body.Close()

	outResp := do(t, srv, "POST", "/v1/auth/logout", nil, token)
	require.Equal(t, http.StatusNoContent, outResp.StatusCode)
	outResp.Body.Close()

	afterResp := do(t, srv, "GET", "/v1/auth/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, afterResp.StatusCode)
	afterResp.Body.Close()
}
