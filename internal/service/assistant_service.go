package service

// The assistant is a placeholder for a future inference backend. Insights
// come from a real scan of the inventory data; chat replies are canned.
// Every response carries mock=true so clients can label it honestly.

import (
	"context"
	"fmt"
	"math/rand"

	"storehub/internal/dto"
	"storehub/internal/repository"
)

var assistantTips = []string{
	"Review products that have not sold in the last month and consider a promotion.",
	"Restock fast-moving items before the weekend rush.",
	"Compare branch performance on the dashboard to spot underperforming locations.",
	"Keep minimum thresholds up to date so low-stock alerts stay meaningful.",
}

var cannedReplies = []string{
	"I can help you track sales and inventory trends. What would you like to know?",
	"Based on your recent activity, your store looks healthy. Check the dashboard for details.",
	"Consider reviewing your low-stock items — restocking early avoids missed sales.",
	"Your top products are driving most of your revenue. The dashboard has the breakdown.",
}

type AssistantService interface {
	Insights(ctx context.Context) (*dto.InsightsResponse, error)
	Chat(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error)
}

type assistantService struct {
	inventories repository.InventoryRepository
	products    repository.ProductRepository
}

func NewAssistantService(inventories repository.InventoryRepository, products repository.ProductRepository) AssistantService {
	return &assistantService{inventories: inventories, products: products}
}

// Insights lists every stock row at or below its threshold, then pads with
// general tips.
func (s *assistantService) Insights(ctx context.Context) (*dto.InsightsResponse, error) {
	inventories, err := s.inventories.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	var insights []string
	for _, inv := range inventories {
		if !inv.LowStock() {
			continue
		}
		name := names[inv.ProductID]
		if name == "" {
			name = fmt.Sprintf("product #%d", inv.ProductID)
		}
		insights = append(insights, fmt.Sprintf(
			"%s is low on stock (%s left, threshold %s) at branch %d.",
			name, inv.Quantity.String(), inv.MinThreshold.String(), inv.BranchID,
		))
	}
	insights = append(insights, assistantTips...)

	return &dto.InsightsResponse{Mock: true, Insights: insights}, nil
}

func (s *assistantService) Chat(_ context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	reply := cannedReplies[rand.Intn(len(cannedReplies))]
	return &dto.ChatResponse{Mock: true, Reply: reply}, nil
}
