package gst_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
	"gstbill/internal/gst"
)

func TestAggregateByPeriod_SameMonth(t *testing.T) {
	catalog, goodsID, serviceID := testCatalog()
	customerID := uuid.New()
	lookup := func(id uuid.UUID) *domain.Customer {
		return &domain.Customer{ID: id, State: "Karnataka"}
	}

	invoices := []domain.Invoice{
		{
			CustomerID: customerID, InvoiceDate: "2024-04-15",
			LineItems: []domain.InvoiceLineItem{
				// taxable 1000, gst 180
				{CatalogItemID: goodsID, Quantity: 2, UnitPrice: 500},
			},
		},
		{
			CustomerID: customerID, InvoiceDate: "2024-04-30",
			LineItems: []domain.InvoiceLineItem{
				// taxable 2000, gst 360
				{CatalogItemID: goodsID, Quantity: 4, UnitPrice: 500},
			},
		},
	}
	_ = serviceID

	summaries := gst.AggregateByPeriod(invoices, catalog, "Karnataka", lookup)
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "2024", s.Year)
	assert.Equal(t, "04", s.Month)
	assert.Equal(t, 2, s.InvoiceCount)
	assert.InDelta(t, 3000.0, s.TaxableValue, 1e-9)
	assert.InDelta(t, 540.0, s.TotalGST, 1e-9)
	assert.InDelta(t, 3540.0, s.GrandTotal, 1e-9)
}

func TestAggregateByPeriod_MostRecentFirst(t *testing.T) {
	catalog, goodsID, _ := testCatalog()
	line := []domain.InvoiceLineItem{{CatalogItemID: goodsID, Quantity: 1, UnitPrice: 100}}

	invoices := []domain.Invoice{
		{InvoiceDate: "2023-11-01", LineItems: line},
		{InvoiceDate: "2024-04-01", LineItems: line},
		{InvoiceDate: "2024-01-20", LineItems: line},
	}

	summaries := gst.AggregateByPeriod(invoices, catalog, "Karnataka", nil)
	require.Len(t, summaries, 3)
	assert.Equal(t, "04", summaries[0].Month)
	assert.Equal(t, "01", summaries[1].Month)
	assert.Equal(t, "2023", summaries[2].Year)
}

func TestAggregateByPeriod_BadDateGoesToUnknownBucket(t *testing.T) {
	catalog, goodsID, _ := testCatalog()
	line := []domain.InvoiceLineItem{{CatalogItemID: goodsID, Quantity: 1, UnitPrice: 100}}

	invoices := []domain.Invoice{
		{InvoiceDate: "2024-05-02", LineItems: line},
		{InvoiceDate: "not-a-date", LineItems: line},
		{InvoiceDate: "", LineItems: line},
	}

	summaries := gst.AggregateByPeriod(invoices, catalog, "Karnataka", nil)
	require.Len(t, summaries, 2)

	// The unknown-period bucket sorts last and collects every bad date.
	unknown := summaries[1]
	assert.Empty(t, unknown.Year)
	assert.Empty(t, unknown.Month)
	assert.Equal(t, 2, unknown.InvoiceCount)
}

func TestAggregateByPeriod_BuyerStatePerInvoice(t *testing.T) {
	catalog, goodsID, _ := testCatalog()
	local, remote := uuid.New(), uuid.New()
	lookup := func(id uuid.UUID) *domain.Customer {
		switch id {
		case local:
			return &domain.Customer{ID: id, State: "Karnataka"}
		case remote:
			return &domain.Customer{ID: id, State: "Gujarat"}
		}
		return nil
	}

	line := []domain.InvoiceLineItem{{CatalogItemID: goodsID, Quantity: 1, UnitPrice: 1000}}
	invoices := []domain.Invoice{
		{CustomerID: local, InvoiceDate: "2024-06-10", LineItems: line},
		{CustomerID: remote, InvoiceDate: "2024-06-12", LineItems: line},
	}

	summaries := gst.AggregateByPeriod(invoices, catalog, "Karnataka", lookup)
	require.Len(t, summaries, 1)

	// One intra-state invoice (90+90) and one inter-state (180).
	assert.InDelta(t, 90.0, summaries[0].CGST, 1e-9)
	assert.InDelta(t, 90.0, summaries[0].SGST, 1e-9)
	assert.InDelta(t, 180.0, summaries[0].IGST, 1e-9)
	assert.InDelta(t, 360.0, summaries[0].TotalGST, 1e-9)
}

func TestAggregateByPeriod_Empty(t *testing.T) {
	catalog, _, _ := testCatalog()
	assert.Empty(t, gst.AggregateByPeriod(nil, catalog, "Karnataka", nil))
}
