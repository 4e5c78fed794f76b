package service

import (
	"context"
	"time"

	"storehub/internal/dto"
	"storehub/internal/model"
	"storehub/internal/repository"
)

type InventoryService interface {
	List(ctx context.Context) ([]dto.InventoryResponse, error)
	Create(ctx context.Context, req dto.CreateInventoryRequest) (*dto.InventoryResponse, error)
	Update(ctx context.Context, id int, req dto.UpdateInventoryRequest) (*dto.InventoryResponse, error)
	Delete(ctx context.Context, id int) error
}

type inventoryService struct {
	repo repository.InventoryRepository
}

func NewInventoryService(repo repository.InventoryRepository) InventoryService {
	return &inventoryService{repo: repo}
}

func (s *inventoryService) List(ctx context.Context) ([]dto.InventoryResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.InventoryResponse, len(rows))
	for i, inv := range rows {
		resp[i] = inventoryToResponse(&inv)
	}
	return resp, nil
}

// Create does not check that branch_id or product_id exist — this layer
// does not enforce referential integrity.
func (s *inventoryService) Create(ctx context.Context, req dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	inv := &model.Inventory{
		BranchID:     req.BranchID,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		MinThreshold: req.MinThreshold,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	resp := inventoryToResponse(inv)
	return &resp, nil
}

func (s *inventoryService) Update(ctx context.Context, id int, req dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Quantity != nil {
		inv.Quantity = *req.Quantity
	}
	if req.MinThreshold != nil {
		inv.MinThreshold = *req.MinThreshold
	}
	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	resp := inventoryToResponse(inv)
	return &resp, nil
}

func (s *inventoryService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func inventoryToResponse(inv *model.Inventory) dto.InventoryResponse {
	return dto.InventoryResponse{
		ID:           inv.ID,
		BranchID:     inv.BranchID,
		ProductID:    inv.ProductID,
		Quantity:     inv.Quantity,
		MinThreshold: inv.MinThreshold,
		LowStock:     inv.LowStock(),
		UpdatedAt:    inv.UpdatedAt.Format(time.RFC3339),
	}
}
