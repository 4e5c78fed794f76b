package repository

import (
	"context"
	"errors"

	"storehub/internal/apierror"
	"storehub/internal/model"

	"gorm.io/gorm"
)

// BranchRepository defines the data access contract for branches.
// Services depend on this interface, not on a concrete implementation —
// the in-memory store (memstore) and the GORM store both satisfy it.
type BranchRepository interface {
	List(ctx context.Context) ([]model.Branch, error)
	FindByID(ctx context.Context, id int) (*model.Branch, error)
	Create(ctx context.Context, b *model.Branch) error
	Update(ctx context.Context, b *model.Branch) error
	Delete(ctx context.Context, id int) error
}

type branchRepo struct{ db *gorm.DB }

func NewBranchRepository(db *gorm.DB) BranchRepository { return &branchRepo{db: db} }

func (r *branchRepo) List(ctx context.Context) ([]model.Branch, error) {
	var branches []model.Branch
	err := r.db.WithContext(ctx).Order("id ASC").Find(&branches).Error
	return branches, err
}

func (r *branchRepo) FindByID(ctx context.Context, id int) (*model.Branch, error) {
	var b model.Branch
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *branchRepo) Create(ctx context.Context, b *model.Branch) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *branchRepo) Update(ctx context.Context, b *model.Branch) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// Delete is idempotent: removing a missing id is a no-op.
func (r *branchRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Branch{}, id).Error
}
