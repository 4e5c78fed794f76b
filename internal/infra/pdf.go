package infra

// pdf.go — sales report rendering using go-pdf/fpdf.
// A4 portrait report with a header, a table (sale id, date, product,
// quantity, total) and a bold grand total.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"storehub/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateSalesReportPDF writes the report to storagePath (created if
// needed) and returns the absolute path of the generated file.
func GenerateSalesReportPDF(report *dto.SalesReportResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("sales_report_%s.pdf", time.Now().UTC().Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, "StoreHub", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Sales Report", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, time.Now().UTC().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Table header ─────────────────────────────────────────────────────────
	col1 := contentW * 0.10 // sale id
	col2 := contentW * 0.20 // date
	col3 := contentW * 0.40 // product
	col4 := contentW * 0.12 // qty
	col5 := contentW * 0.18 // total

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 7, "#", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Date", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 7, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 7, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col5, 7, "Total", "B", 1, "R", false, 0, "")

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range report.Rows {
		name := row.Product
		if len(name) > 40 {
			name = name[:39] + "…"
		}
		pdf.CellFormat(col1, 6, fmt.Sprintf("%d", row.SaleID), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, row.Date, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 6, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 6, row.Quantity.String(), "", 0, "C", false, 0, "")
		pdf.CellFormat(col5, 6, "$"+row.Total.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Grand total ──────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2+col3+col4, 8, "GRAND TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col5, 8, "$"+report.GrandTotal.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
