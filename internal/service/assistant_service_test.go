package service

import (
	"context"
	"strings"
	"testing"

	"storehub/internal/apierror"
	"storehub/internal/dto"
	"storehub/internal/memstore"
	"storehub/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightsFlagLowStock(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	rice := model.Product{Name: "Rice", UnitPrice: decimal.NewFromInt(10)}
	require.NoError(t, store.Products().Create(ctx, &rice))
	require.NoError(t, store.Inventories().Create(ctx, &model.Inventory{
		BranchID: 1, ProductID: rice.ID,
		Quantity: decimal.NewFromInt(2), MinThreshold: decimal.NewFromInt(5),
	}))

	svc := NewAssistantService(store.Inventories(), store.Products())
	resp, err := svc.Insights(ctx)
	require.NoError(t, err)

	assert.True(t, resp.Mock)
	require.NotEmpty(t, resp.Insights)
	assert.True(t, strings.Contains(resp.Insights[0], "Rice"), "first insight should name the low product: %q", resp.Insights[0])
}

func TestInsightsWithHealthyStockStillReturnsTips(t *testing.T) {
	store := memstore.New()
	svc := NewAssistantService(store.Inventories(), store.Products())

	resp, err := svc.Insights(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Mock)
	assert.NotEmpty(t, resp.Insights) // generic tips remain
}

func TestChatAlwaysMock(t *testing.T) {
	store := memstore.New()
	svc := NewAssistantService(store.Inventories(), store.Products())

	resp, err := svc.Chat(context.Background(), dto.ChatRequest{Message: "how are sales?"})
	require.NoError(t, err)
	assert.True(t, resp.Mock)
	assert.NotEmpty(t, resp.Reply)
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	store := memstore.New()
	svc := NewAssistantService(store.Inventories(), store.Products())

	_, err := svc.Chat(context.Background(), dto.ChatRequest{Message: ""})
	var fields apierror.FieldErrors
	assert.ErrorAs(t, err, &fields)
}
