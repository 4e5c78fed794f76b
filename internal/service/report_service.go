package service

import (
	"context"

	"storehub/internal/dto"
	"storehub/internal/infra"
	"storehub/internal/repository"

	"github.com/shopspring/decimal"
)

type ReportService interface {
	SalesReport(ctx context.Context) (*dto.SalesReportResponse, error)
	// SalesReportPDF renders the report to a file and returns its path.
	SalesReportPDF(ctx context.Context) (string, error)
}

type reportService struct {
	sales       repository.SaleRepository
	products    repository.ProductRepository
	storagePath string
}

func NewReportService(sales repository.SaleRepository, products repository.ProductRepository, storagePath string) ReportService {
	return &reportService{sales: sales, products: products, storagePath: storagePath}
}

func (s *reportService) SalesReport(ctx context.Context) (*dto.SalesReportResponse, error) {
	sales, err := s.sales.List(ctx)
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

	rows := make([]dto.SalesReportRow, len(sales))
	grandTotal := decimal.Zero
	for i, sale := range sales {
		rows[i] = dto.SalesReportRow{
			SaleID:   sale.ID,
			Date:     sale.SaleDate.Format("2006-01-02"),
			Product:  names[sale.ProductID],
			Quantity: sale.Quantity,
			Total:    sale.TotalPrice,
		}
		grandTotal = grandTotal.Add(sale.TotalPrice)
	}

	return &dto.SalesReportResponse{Rows: rows, GrandTotal: grandTotal}, nil
}

func (s *reportService) SalesReportPDF(ctx context.Context) (string, error) {
	report, err := s.SalesReport(ctx)
	if err != nil {
		return "", err
	}
	return infra.GenerateSalesReportPDF(report, s.storagePath)
}
