package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gstbill/internal/csvexport"
	"gstbill/internal/domain"
	"gstbill/internal/gst"
	"gstbill/internal/port"
)

// ExportResult is the outcome of a report export: where the file landed
// and a time-limited download link.
type ExportResult struct {
	Key         string `json:"key"`
	DownloadURL string `json:"download_url"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ReportService defines the reporting contract.
type ReportService interface {
	Periods(ctx context.Context, from, to string) ([]gst.PeriodSummary, error)
	InvoiceHSN(ctx context.Context, invoiceID uuid.UUID) (*gst.HSNBreakdown, error)
	ExportPeriodsCSV(ctx context.Context, from, to string) (*ExportResult, error)
}

type reportService struct {
	invoiceRepo   port.InvoiceRepository
	catalogRepo   port.CatalogRepository
	customerRepo  port.CustomerRepository
	profileRepo   port.ProfileRepository
	storage       port.ObjectStorage
	bucket        string
	presignExpiry int64
}

// NewReportService creates a new ReportService implementation.
func NewReportService(
	invoiceRepo port.InvoiceRepository,
	catalogRepo port.CatalogRepository,
	customerRepo port.CustomerRepository,
	profileRepo port.ProfileRepository,
	storage port.ObjectStorage,
	bucket string,
	presignExpiry int64,
) ReportService {
	return &reportService{
		invoiceRepo:   invoiceRepo,
		catalogRepo:   catalogRepo,
		customerRepo:  customerRepo,
		profileRepo:   profileRepo,
		storage:       storage,
		bucket:        bucket,
		presignExpiry: presignExpiry,
	}
}

// Periods aggregates invoices into per-month GST summaries, most recent
// month first. A missing business profile degrades to a blank seller
// state rather than failing the report.
func (s *reportService) Periods(ctx context.Context, from, to string) ([]gst.PeriodSummary, error) {
	invoices, err := s.invoiceRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.Periods: %w", err)
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	customers, err := s.customerRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("report.Periods: %w", err)
	}
	byID := make(map[uuid.UUID]*domain.Customer, len(customers))
	for i := range customers {
		byID[customers[i].ID] = &customers[i]
	}

	sellerState := ""
	if p, err := s.profileRepo.Get(ctx); err == nil {
		sellerState = p.State
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("report.Periods: %w", err)
	}

	lookup := func(id uuid.UUID) *domain.Customer { return byID[id] }
	return gst.AggregateByPeriod(invoices, catalog, sellerState, lookup), nil
}

// InvoiceHSN computes the HSN/SAC tax table for one invoice.
func (s *reportService) InvoiceHSN(ctx context.Context, invoiceID uuid.UUID) (*gst.HSNBreakdown, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	sellerState := ""
	if p, err := s.profileRepo.Get(ctx); err == nil {
		sellerState = p.State
	}
	buyerState := ""
	if c, err := s.customerRepo.GetByID(ctx, invoice.CustomerID); err == nil {
		buyerState = c.State
	}

	breakdown := gst.ComputeBreakdown(invoice.LineItems, catalog, sellerState, buyerState)
	return &breakdown, nil
}

// ExportPeriodsCSV writes the period report to object storage and returns
// a presigned download link.
func (s *reportService) ExportPeriodsCSV(ctx context.Context, from, to string) (*ExportResult, error) {
	periods, err := s.Periods(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := csvexport.WritePeriodSummaries(&buf, periods); err != nil {
		return nil, fmt.Errorf("report.ExportPeriodsCSV: %w", err)
	}

	key := fmt.Sprintf("exports/periods-%s.csv", time.Now().UTC().Format("20060102-150405"))
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.bucket,
		Key:         key,
		Body:        &buf,
		ContentType: "text/csv",
	})
	if err != nil {
		return nil, fmt.Errorf("report.ExportPeriodsCSV: %w: %v", domain.ErrExportFailed, err)
	}

	url, err := s.storage.GetPresignedURL(ctx, s.bucket, key, s.presignExpiry)
	if err != nil {
		return nil, fmt.Errorf("report.ExportPeriodsCSV: %w: %v", domain.ErrExportFailed, err)
	}

	return &ExportResult{Key: key, DownloadURL: url, ExpiresIn: s.presignExpiry}, nil
}

func (s *reportService) loadCatalog(ctx context.Context) (gst.Catalog, error) {
	items, err := s.catalogRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("report.loadCatalog: %w", err)
	}
	catalog := make(gst.Catalog, len(items))
	for i := range items {
		catalog[items[i].ID] = &items[i]
	}
	return catalog, nil
}
