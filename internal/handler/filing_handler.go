package handler

import (
	"github.com/gin-gonic/gin"

	"gstbill/internal/service"
)

// FilingHandler handles GST return filing lookup endpoints.
type FilingHandler struct {
	filingService service.FilingService
}

// NewFilingHandler creates a new FilingHandler.
func NewFilingHandler(filingService service.FilingService) *FilingHandler {
	return &FilingHandler{filingService: filingService}
}

// Returns handles GET /api/v1/filings/:gstin
func (h *FilingHandler) Returns(c *gin.Context) {
	entries, err := h.filingService.Returns(c.Request.Context(), c.Param("gstin"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, entries)
}
