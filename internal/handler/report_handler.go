package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstbill/internal/service"
)

// ReportHandler handles reporting endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Periods handles GET /api/v1/reports/periods?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *ReportHandler) Periods(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")

	periods, err := h.reportService.Periods(c.Request.Context(), from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, periods)
}

// InvoiceHSN handles GET /api/v1/reports/invoices/:id/hsn
func (h *ReportHandler) InvoiceHSN(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid invoice id")
		return
	}

	breakdown, err := h.reportService.InvoiceHSN(c.Request.Context(), invoiceID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, breakdown)
}

// ExportPeriods handles GET /api/v1/reports/periods/export and returns a
// presigned download link for the generated CSV.
func (h *ReportHandler) ExportPeriods(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")

	result, err := h.reportService.ExportPeriodsCSV(c.Request.Context(), from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
