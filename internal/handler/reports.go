package handler

import (
	"net/http"

	"storehub/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

func (h *ReportsHandler) Sales(c *gin.Context) {
	resp, err := h.svc.SalesReport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SalesPDF renders the report to a file and streams it back.
func (h *ReportsHandler) SalesPDF(c *gin.Context) {
	path, err := h.svc.SalesReportPDF(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, "sales_report.pdf")
}
