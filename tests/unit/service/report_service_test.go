package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
	"gstbill/internal/port"
	"gstbill/internal/service"
	"gstbill/mocks"
)

func TestReportService_Periods_Success(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	catalogRepo := new(mocks.MockCatalogRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	profileRepo := new(mocks.MockProfileRepo)
	svc := service.NewReportService(invoiceRepo, catalogRepo, customerRepo, profileRepo,
		new(mocks.MockObjectStorage), "gstbill-exports", 3600)

	customerID := uuid.New()
	itemID := uuid.New()
	invoices := []domain.Invoice{
		{
			ID: uuid.New(), CustomerID: customerID, InvoiceDate: "2024-04-10",
			LineItems: []domain.InvoiceLineItem{{CatalogItemID: itemID, Quantity: 1, UnitPrice: 1000}},
		},
		{
			ID: uuid.New(), CustomerID: customerID, InvoiceDate: "2024-04-22",
			LineItems: []domain.InvoiceLineItem{{CatalogItemID: itemID, Quantity: 2, UnitPrice: 1000}},
		},
	}

	invoiceRepo.On("ListByDateRange", mock.Anything, "2024-04-01", "2024-04-30").Return(invoices, nil)
	catalogRepo.On("LoadAll", mock.Anything).Return([]domain.CatalogItem{
		{ID: itemID, HSNSAC: "7214", GSTRate: 18},
	}, nil)
	customerRepo.On("LoadAll", mock.Anything).Return([]domain.Customer{
		{ID: customerID, State: "Karnataka"},
	}, nil)
	profileRepo.On("Get", mock.Anything).Return(&domain.BusinessProfile{State: "Karnataka"}, nil)

	periods, err := svc.Periods(context.Background(), "2024-04-01", "2024-04-30")

	assert.NoError(t, err)
	assert.Len(t, periods, 1)
	assert.Equal(t, "2024", periods[0].Year)
	assert.Equal(t, "04", periods[0].Month)
	assert.Equal(t, 2, periods[0].InvoiceCount)
	assert.InDelta(t, 3000.0, periods[0].TaxableValue, 1e-9)
	assert.InDelta(t, 540.0, periods[0].TotalGST, 1e-9)
}

func TestReportService_Periods_NoProfile(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	catalogRepo := new(mocks.MockCatalogRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	profileRepo := new(mocks.MockProfileRepo)
	svc := service.NewReportService(invoiceRepo, catalogRepo, customerRepo, profileRepo,
		new(mocks.MockObjectStorage), "gstbill-exports", 3600)

	invoiceRepo.On("ListByDateRange", mock.Anything, "", "").Return([]domain.Invoice{}, nil)
	catalogRepo.On("LoadAll", mock.Anything).Return([]domain.CatalogItem{}, nil)
	customerRepo.On("LoadAll", mock.Anything).Return([]domain.Customer{}, nil)
	profileRepo.On("Get", mock.Anything).Return(nil, domain.ErrNotFound)

	periods, err := svc.Periods(context.Background(), "", "")

	assert.NoError(t, err)
	assert.Empty(t, periods)
}

func TestReportService_InvoiceHSN_Success(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	catalogRepo := new(mocks.MockCatalogRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	profileRepo := new(mocks.MockProfileRepo)
	svc := service.NewReportService(invoiceRepo, catalogRepo, customerRepo, profileRepo,
		new(mocks.MockObjectStorage), "gstbill-exports", 3600)

	invoiceID := uuid.New()
	customerID := uuid.New()
	itemID := uuid.New()

	invoiceRepo.On("GetByID", mock.Anything, invoiceID).Return(&domain.Invoice{
		ID:         invoiceID,
		CustomerID: customerID,
		LineItems: []domain.InvoiceLineItem{
			{CatalogItemID: itemID, Quantity: 2, UnitPrice: 500},
		},
	}, nil)
	catalogRepo.On("LoadAll", mock.Anything).Return([]domain.CatalogItem{
		{ID: itemID, HSNSAC: "7214", GSTRate: 18},
	}, nil)
	profileRepo.On("Get", mock.Anything).Return(&domain.BusinessProfile{State: "Karnataka"}, nil)
	customerRepo.On("GetByID", mock.Anything, customerID).Return(&domain.Customer{
		ID: customerID, State: "Maharashtra",
	}, nil)

	breakdown, err := svc.InvoiceHSN(context.Background(), invoiceID)

	assert.NoError(t, err)
	assert.True(t, breakdown.Totals.IsInterState)
	assert.Len(t, breakdown.Rows, 1)
	assert.InDelta(t, 180.0, breakdown.Rows[0].IGSTAmount, 1e-9)
}

func TestReportService_ExportPeriodsCSV_Success(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	catalogRepo := new(mocks.MockCatalogRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	profileRepo := new(mocks.MockProfileRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewReportService(invoiceRepo, catalogRepo, customerRepo, profileRepo,
		storage, "gstbill-exports", 3600)

	invoiceRepo.On("ListByDateRange", mock.Anything, "", "").Return([]domain.Invoice{}, nil)
	catalogRepo.On("LoadAll", mock.Anything).Return([]domain.CatalogItem{}, nil)
	customerRepo.On("LoadAll", mock.Anything).Return([]domain.Customer{}, nil)
	profileRepo.On("Get", mock.Anything).Return(nil, domain.ErrNotFound)
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{Location: "s3://gstbill-exports/exports/x.csv"}, nil)
	storage.On("GetPresignedURL", mock.Anything, "gstbill-exports", mock.AnythingOfType("string"), int64(3600)).
		Return("https://example.com/download", nil)

	result, err := svc.ExportPeriodsCSV(context.Background(), "", "")

	assert.NoError(t, err)
	assert.Equal(t, "https://example.com/download", result.DownloadURL)
	assert.Contains(t, result.Key, "exports/periods-")
	assert.Equal(t, int64(3600), result.ExpiresIn)
	storage.AssertExpectations(t)
}

func TestReportService_ExportPeriodsCSV_UploadFails(t *testing.T) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	catalogRepo := new(mocks.MockCatalogRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	profileRepo := new(mocks.MockProfileRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewReportService(invoiceRepo, catalogRepo, customerRepo, profileRepo,
		storage, "gstbill-exports", 3600)

	invoiceRepo.On("ListByDateRange", mock.Anything, "", "").Return([]domain.Invoice{}, nil)
	catalogRepo.On("LoadAll", mock.Anything).Return([]domain.CatalogItem{}, nil)
	customerRepo.On("LoadAll", mock.Anything).Return([]domain.Customer{}, nil)
	profileRepo.On("Get", mock.Anything).Return(nil, domain.ErrNotFound)
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(nil, errors.New("bucket unreachable"))

	result, err := svc.ExportPeriodsCSV(context.Background(), "", "")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrExportFailed)
}
