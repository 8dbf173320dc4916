package service

import (
	"context"
	"fmt"
	"strings"

	"gstbill/internal/domain"
	"gstbill/internal/gst"
	"gstbill/internal/port"
)

// FilingEntry pairs a registry return with its normalized status, keeping
// the registry's raw text alongside the display classification.
type FilingEntry struct {
	ReturnType   string           `json:"return_type"`
	TaxPeriod    string           `json:"tax_period"`
	FilingYear   string           `json:"filing_year"`
	DateOfFiling string           `json:"date_of_filing"`
	RawStatus    string           `json:"raw_status"`
	Status       gst.FilingStatus `json:"status"`
}

// FilingService defines the GST return filing lookup contract.
type FilingService interface {
	Returns(ctx context.Context, gstin string) ([]FilingEntry, error)
}

type filingService struct {
	registry port.FilingRegistry
}

// NewFilingService creates a new FilingService implementation.
func NewFilingService(registry port.FilingRegistry) FilingService {
	return &filingService{registry: registry}
}

func (s *filingService) Returns(ctx context.Context, gstin string) ([]FilingEntry, error) {
	gstin = strings.ToUpper(strings.TrimSpace(gstin))
	if len(gstin) != 15 {
		return nil, domain.ErrInvalidGSTIN
	}

	records, err := s.registry.ReturnsByGSTIN(ctx, gstin)
	if err != nil {
		return nil, fmt.Errorf("filing.Returns: %w", err)
	}

	entries := make([]FilingEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, FilingEntry{
			ReturnType:   r.ReturnType,
			TaxPeriod:    r.TaxPeriod,
			FilingYear:   r.FilingYear,
			DateOfFiling: r.DateOfFiling,
			RawStatus:    r.Status,
			Status:       gst.NormalizeFilingStatus(r.Status),
		})
	}
	return entries, nil
}
