package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
	"gstbill/internal/gst"
	"gstbill/internal/service"
	"gstbill/mocks"
)

func TestFilingService_Returns_Success(t *testing.T) {
	registry := new(mocks.MockFilingRegistry)
	svc := service.NewFilingService(registry)

	records := []domain.FilingRecord{
		{ReturnType: "GSTR1", TaxPeriod: "042024", FilingYear: "2024-25", DateOfFiling: "2024-05-10", Status: "Filed"},
		{ReturnType: "GSTR3B", TaxPeriod: "042024", FilingYear: "2024-25", Status: "Not Filed"},
		{ReturnType: "GSTR9", TaxPeriod: "2024", FilingYear: "2024-25", Status: "Under Review"},
	}
	registry.On("ReturnsByGSTIN", mock.Anything, "29ABCDE1234F1Z5").Return(records, nil)

	entries, err := svc.Returns(context.Background(), "29abcde1234f1z5")

	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, gst.FilingVariantFiled, entries[0].Status.Variant)
	assert.Equal(t, gst.FilingVariantNotFiled, entries[1].Status.Variant)
	assert.Equal(t, gst.FilingVariantUnknown, entries[2].Status.Variant)
	assert.Equal(t, "Under Review", entries[2].Status.Label)
	assert.Equal(t, "Under Review", entries[2].RawStatus)
	registry.AssertExpectations(t)
}

func TestFilingService_Returns_InvalidGSTIN(t *testing.T) {
	registry := new(mocks.MockFilingRegistry)
	svc := service.NewFilingService(registry)

	entries, err := svc.Returns(context.Background(), "TOO-SHORT")

	assert.Nil(t, entries)
	assert.ErrorIs(t, err, domain.ErrInvalidGSTIN)
	registry.AssertNotCalled(t, "ReturnsByGSTIN", mock.Anything, mock.Anything)
}

func TestFilingService_Returns_RegistryError(t *testing.T) {
	registry := new(mocks.MockFilingRegistry)
	svc := service.NewFilingService(registry)

	registry.On("ReturnsByGSTIN", mock.Anything, "29ABCDE1234F1Z5").
		Return(nil, domain.ErrRegistryUnavailable)

	entries, err := svc.Returns(context.Background(), "29ABCDE1234F1Z5")

	assert.Nil(t, entries)
	assert.ErrorIs(t, err, domain.ErrRegistryUnavailable)
}
