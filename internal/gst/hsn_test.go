package gst_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
	"gstbill/internal/gst"
)

func TestComputeBreakdown_MergesLinesByCode(t *testing.T) {
	catalog, goodsID, serviceID := testCatalog()
	items := []domain.InvoiceLineItem{
		{CatalogItemID: goodsID, Quantity: 2, UnitPrice: 500},
		{CatalogItemID: serviceID, Quantity: 1, UnitPrice: 1000},
		{CatalogItemID: goodsID, Quantity: 1, UnitPrice: 500},
	}

	b := gst.ComputeBreakdown(items, catalog, "Karnataka", "Karnataka")
	require.Len(t, b.Rows, 2)

	// First-encounter order, both goods lines merged before tax.
	assert.Equal(t, "7214", b.Rows[0].HSNSAC)
	assert.Equal(t, 1500.0, b.Rows[0].TaxableValue)
	assert.Equal(t, 9.0, b.Rows[0].CGSTRate)
	assert.Equal(t, 135.0, b.Rows[0].CGSTAmount)
	assert.Equal(t, 135.0, b.Rows[0].SGSTAmount)
	assert.Equal(t, 270.0, b.Rows[0].TotalTaxAmount)
	assert.Zero(t, b.Rows[0].IGSTAmount)

	assert.Equal(t, "9954", b.Rows[1].HSNSAC)
	assert.Equal(t, 120.0, b.Rows[1].TotalTaxAmount)
}

func TestComputeBreakdown_InterState(t *testing.T) {
	catalog, goodsID, _ := testCatalog()
	items := []domain.InvoiceLineItem{
		{CatalogItemID: goodsID, Quantity: 2, UnitPrice: 500},
	}

	b := gst.ComputeBreakdown(items, catalog, "Karnataka", "Delhi")
	require.Len(t, b.Rows, 1)
	assert.Equal(t, 18.0, b.Rows[0].IGSTRate)
	assert.Equal(t, 180.0, b.Rows[0].IGSTAmount)
	assert.Zero(t, b.Rows[0].CGSTAmount)
	assert.Zero(t, b.Rows[0].SGSTAmount)
}

func TestComputeBreakdown_UnknownCodeBucket(t *testing.T) {
	catalog, goodsID, _ := testCatalog()
	noCodeID := uuid.New()
	catalog[noCodeID] = &domain.CatalogItem{ID: noCodeID, Name: "Misc", GSTRate: 5}

	items := []domain.InvoiceLineItem{
		{CatalogItemID: noCodeID, Quantity: 1, UnitPrice: 100},
		{CatalogItemID: uuid.New(), Quantity: 1, UnitPrice: 50}, // dangling
		{CatalogItemID: goodsID, Quantity: 1, UnitPrice: 500},
	}

	b := gst.ComputeBreakdown(items, catalog, "Karnataka", "Karnataka")
	require.Len(t, b.Rows, 2)

	// Missing code and dangling reference share the one stable bucket.
	assert.Equal(t, gst.UnknownHSNSAC, b.Rows[0].HSNSAC)
	assert.Equal(t, 150.0, b.Rows[0].TaxableValue)
}

func TestComputeBreakdown_LastSeenRateWins(t *testing.T) {
	a, bID := uuid.New(), uuid.New()
	catalog := gst.Catalog{
		a:   &domain.CatalogItem{ID: a, Name: "A", HSNSAC: "7214", GSTRate: 12},
		bID: &domain.CatalogItem{ID: bID, Name: "B", HSNSAC: "7214", GSTRate: 18},
	}
	items := []domain.InvoiceLineItem{
		{CatalogItemID: a, Quantity: 1, UnitPrice: 100},
		{CatalogItemID: bID, Quantity: 1, UnitPrice: 100},
	}

	b := gst.ComputeBreakdown(items, catalog, "Karnataka", "Delhi")
	require.Len(t, b.Rows, 1)
	assert.Equal(t, 18.0, b.Rows[0].IGSTRate)
	assert.Equal(t, 36.0, b.Rows[0].IGSTAmount) // 200 at last-seen 18%
}

func TestComputeBreakdown_TotalsMatchAggregator(t *testing.T) {
	catalog, goodsID, serviceID := testCatalog()
	items := []domain.InvoiceLineItem{
		{CatalogItemID: goodsID, Quantity: 2, UnitPrice: 500, DiscountPercent: 10},
		{CatalogItemID: serviceID, Quantity: 3, UnitPrice: 1000},
		{CatalogItemID: goodsID, Quantity: 1, UnitPrice: 250},
	}

	for _, buyerState := range []string{"Karnataka", "Tamil Nadu"} {
		b := gst.ComputeBreakdown(items, catalog, "Karnataka", buyerState)
		totals := gst.ComputeTotals(items, catalog, "Karnataka", buyerState)

		var rowTax float64
		for _, row := range b.Rows {
			rowTax += row.TotalTaxAmount
		}
		assert.InDelta(t, totals.TotalGST(), rowTax, 1e-9)
		assert.InDelta(t, totals.TaxableAmount, b.Totals.TaxableAmount, 1e-9)
		assert.InDelta(t, totals.GrandTotal, b.Totals.GrandTotal, 1e-9)
	}
}

func TestComputeBreakdown_Deterministic(t *testing.T) {
	catalog, goodsID, serviceID := testCatalog()
	items := []domain.InvoiceLineItem{
		{CatalogItemID: serviceID, Quantity: 1, UnitPrice: 1000},
		{CatalogItemID: goodsID, Quantity: 1, UnitPrice: 500},
	}

	first := gst.ComputeBreakdown(items, catalog, "Karnataka", "Karnataka")
	second := gst.ComputeBreakdown(items, catalog, "Karnataka", "Karnataka")
	assert.Equal(t, first, second)
	assert.Equal(t, "9954", first.Rows[0].HSNSAC)
}
