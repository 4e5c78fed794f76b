package service

import (
	"context"
	"time"

	"storehub/internal/dto"
	"storehub/internal/model"
	"storehub/internal/repository"
)

type BranchService interface {
	List(ctx context.Context) ([]dto.BranchResponse, error)
	Create(ctx context.Context, req dto.CreateBranchRequest) (*dto.BranchResponse, error)
	Update(ctx context.Context, id int, req dto.UpdateBranchRequest) (*dto.BranchResponse, error)
	Delete(ctx context.Context, id int) error
}

type branchService struct {
	repo repository.BranchRepository
}

func NewBranchService(repo repository.BranchRepository) BranchService {
	return &branchService{repo: repo}
}

func (s *branchService) List(ctx context.Context) ([]dto.BranchResponse, error) {
	branches, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.BranchResponse, len(branches))
	for i, b := range branches {
		resp[i] = branchToResponse(&b)
	}
	return resp, nil
}

func (s *branchService) Create(ctx context.Context, req dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	b := &model.Branch{Name: req.Name, Address: req.Address}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	resp := branchToResponse(b)
	return &resp, nil
}

// Update applies shallow-merge patch semantics: only fields present in the
// request overwrite the stored record.
func (s *branchService) Update(ctx context.Context, id int, req dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Address != nil {
		b.Address = req.Address
	}
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	resp := branchToResponse(b)
	return &resp, nil
}

// Delete does not cascade: staff, customers and inventory keep their
// branch_id pointing at the removed row.
func (s *branchService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func branchToResponse(b *model.Branch) dto.BranchResponse {
	return dto.BranchResponse{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}
