package repository

import (
	"context"
	"errors"

	"storehub/internal/apierror"
	"storehub/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InventoryRepository interface {
	List(ctx context.Context) ([]model.Inventory, error)
	FindByID(ctx context.Context, id int) (*model.Inventory, error)
	// FindByBranchAndProduct returns apierror.ErrNotFound when no row matches.
	FindByBranchAndProduct(ctx context.Context, branchID, productID int) (*model.Inventory, error)
	Create(ctx context.Context, inv *model.Inventory) error
	Update(ctx context.Context, inv *model.Inventory) error
	Delete(ctx context.Context, id int) error

	// DecrementQuantityTx subtracts qty from the matching (branch, product)
	// row, floored at zero. A missing row is a silent no-op — referential
	// integrity between sales and inventory is deliberately not enforced.
	// Called inside a sale transaction; memstore implementations ignore tx.
	DecrementQuantityTx(tx *gorm.DB, branchID, productID int, qty decimal.Decimal) error
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) InventoryRepository { return &inventoryRepo{db: db} }

func (r *inventoryRepo) List(ctx context.Context) ([]model.Inventory, error) {
	var rows []model.Inventory
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *inventoryRepo) FindByID(ctx context.Context, id int) (*model.Inventory, error) {
	var inv model.Inventory
	if err := r.db.WithContext(ctx).First(&inv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *inventoryRepo) FindByBranchAndProduct(ctx context.Context, branchID, productID int) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.db.WithContext(ctx).
		Where("branch_id = ? AND product_id = ?", branchID, productID).
		First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *inventoryRepo) Create(ctx context.Context, inv *model.Inventory) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *inventoryRepo) Update(ctx context.Context, inv *model.Inventory) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

func (r *inventoryRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Inventory{}, id).Error
}

func (r *inventoryRepo) DecrementQuantityTx(tx *gorm.DB, branchID, productID int, qty decimal.Decimal) error {
	return tx.Model(&model.Inventory{}).
		Where("branch_id = ? AND product_id = ?", branchID, productID).
		Update("quantity", gorm.Expr("GREATEST(quantity - ?, 0)", qty)).Error
}
