package service

import (
	"context"
	"strconv"
	"time"

	"storehub/internal/dto"
	"storehub/internal/metrics"
	"storehub/internal/model"
	"storehub/internal/repository"
	"storehub/internal/worker"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SaleService interface {
	List(ctx context.Context) ([]dto.SaleResponse, error)
	// Create records the sale and decrements matching stock in one step.
	Create(ctx context.Context, staffID int, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
}

type saleService struct {
	sales       repository.SaleRepository
	products    repository.ProductRepository
	inventories repository.InventoryRepository
	branches    repository.BranchRepository
	dispatcher  *worker.Dispatcher
}

func NewSaleService(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	inventories repository.InventoryRepository,
	branches repository.BranchRepository,
	dispatcher *worker.Dispatcher,
) SaleService {
	return &saleService{
		sales:       sales,
		products:    products,
		inventories: inventories,
		branches:    branches,
		dispatcher:  dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (in-memory store).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *saleService) List(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.SaleResponse, len(sales))
	for i, sale := range sales {
		resp[i] = saleToResponse(&sale)
	}
	return resp, nil
}

// Create resolves the product's current unit price, then inserts the sale
// and decrements the matching (branch, product) stock row in one
// transaction. The stock decrement floors at zero and a missing stock row
// is a no-op: a sale is never rejected for lack of inventory. After the
// commit, a low-stock alert job is enqueued if the row crossed its
// threshold.
func (s *saleService) Create(ctx context.Context, staffID int, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	sale := &model.Sale{
		BranchID:   req.BranchID,
		ProductID:  req.ProductID,
		CustomerID: req.CustomerID,
		Quantity:   req.Quantity,
		TotalPrice: product.UnitPrice.Mul(req.Quantity),
		SaleDate:   time.Now().UTC().Truncate(24 * time.Hour),
		StaffID:    staffID,
	}

	err = runTx(ctx, s.sales.DB(), func(tx *gorm.DB) error {
		if err := s.sales.Create(ctx, tx, sale); err != nil {
			return err
		}
		return s.inventories.DecrementQuantityTx(tx, req.BranchID, req.ProductID, req.Quantity)
	})
	if err != nil {
		return nil, err
	}

	metrics.SalesCreatedTotal.WithLabelValues(strconv.Itoa(req.BranchID)).Inc()
	s.maybeAlertLowStock(ctx, req.BranchID, product)

	resp := saleToResponse(sale)
	return &resp, nil
}

// maybeAlertLowStock enqueues an alert when the sold product's stock row
// sits at or below its minimum threshold after the decrement. Failures
// here never fail the sale.
func (s *saleService) maybeAlertLowStock(ctx context.Context, branchID int, product *model.Product) {
	inv, err := s.inventories.FindByBranchAndProduct(ctx, branchID, product.ID)
	if err != nil {
		return // no stock row tracked for this pair
	}
	if !inv.LowStock() {
		return
	}

	branchName := ""
	if branch, err := s.branches.FindByID(ctx, branchID); err == nil {
		branchName = branch.Name
	}

	payload := worker.LowStockAlertPayload{
		BranchID:    branchID,
		BranchName:  branchName,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    inv.Quantity.String(),
		Threshold:   inv.MinThreshold.String(),
	}
	if err := s.dispatcher.EnqueueLowStockAlert(ctx, payload); err != nil {
		log.Warn().Err(err).Int("product_id", product.ID).Msg("sale: failed to enqueue low-stock alert")
		return
	}
	metrics.LowStockAlertsTotal.Inc()
}

func saleToResponse(sale *model.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:         sale.ID,
		BranchID:   sale.BranchID,
		ProductID:  sale.ProductID,
		CustomerID: sale.CustomerID,
		Quantity:   sale.Quantity,
		TotalPrice: sale.TotalPrice,
		SaleDate:   sale.SaleDate.Format("2006-01-02"),
		StaffID:    sale.StaffID,
		CreatedAt:  sale.CreatedAt.Format(time.RFC3339),
	}
}
