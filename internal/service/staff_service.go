package service

import (
	"context"

	"storehub/internal/dto"
	"storehub/internal/model"
	"storehub/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// StaffService manages staff accounts (admin-only surface). It always
// creates users with the staff role; admins are bootstrapped via
// cmd/seeduser or the demo seed.
type StaffService interface {
	List(ctx context.Context) ([]dto.UserResponse, error)
	Create(ctx context.Context, req dto.CreateStaffRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, id int, req dto.UpdateStaffRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id int) error
}

type staffService struct {
	repo repository.UserRepository
}

func NewStaffService(repo repository.UserRepository) StaffService {
	return &staffService{repo: repo}
}

func (s *staffService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.ListByRole(ctx, model.RoleStaff)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, len(users))
	for i, u := range users {
		resp[i] = userToResponse(&u)
	}
	return resp, nil
}

func (s *staffService) Create(ctx context.Context, req dto.CreateStaffRequest) (*dto.UserResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), model.PasswordHashCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         model.RoleStaff,
		BranchID:     req.BranchID,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := userToResponse(user)
	return &resp, nil
}

func (s *staffService) Update(ctx context.Context, id int, req dto.UpdateStaffRequest) (*dto.UserResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.BranchID != nil {
		user.BranchID = req.BranchID
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), model.PasswordHashCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := userToResponse(user)
	return &resp, nil
}

func (s *staffService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
