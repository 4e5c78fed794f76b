package repository

import (
	"context"

	"storehub/internal/model"

	"gorm.io/gorm"
)

// SaleRepository has no Update/Delete: sales are immutable once created.
type SaleRepository interface {
	// List returns sales in creation order — the dashboard trend depends on it.
	List(ctx context.Context) ([]model.Sale, error)
	// Create inserts within tx when tx is non-nil (sale + stock decrement
	// commit together); memstore implementations ignore tx.
	Create(ctx context.Context, tx *gorm.DB, s *model.Sale) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	// Returns nil for the in-memory store.
	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) List(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Order("id ASC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) Create(ctx context.Context, tx *gorm.DB, s *model.Sale) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) DB() *gorm.DB { return r.db }
