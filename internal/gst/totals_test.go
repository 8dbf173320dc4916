package gst_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
	"gstbill/internal/gst"
)

func testCatalog() (gst.Catalog, uuid.UUID, uuid.UUID) {
	goodsID := uuid.New()
	serviceID := uuid.New()
	return gst.Catalog{
		goodsID: &domain.CatalogItem{
			ID: goodsID, Name: "Steel Rod", HSNSAC: "7214", GSTRate: 18, UnitPrice: 500,
		},
		serviceID: &domain.CatalogItem{
			ID: serviceID, Name: "Installation", HSNSAC: "9954", GSTRate: 12, UnitPrice: 1000,
		},
	}, goodsID, serviceID
}

func TestIsInterState(t *testing.T) {
	assert.False(t, gst.IsInterState("Karnataka", "Karnataka"))
	assert.True(t, gst.IsInterState("Karnataka", "Maharashtra"))

	t.Run("missing_state_defaults_intra", func(t *testing.T) {
		assert.False(t, gst.IsInterState("", "Karnataka"))
		assert.False(t, gst.IsInterState("Karnataka", ""))
		assert.False(t, gst.IsInterState("", ""))
	})

	t.Run("case_sensitive_exact_match", func(t *testing.T) {
		assert.True(t, gst.IsInterState("Karnataka", "karnataka"))
	})
}

func TestValueLine(t *testing.T) {
	catalog, goodsID, _ := testCatalog()

	t.Run("basic", func(t *testing.T) {
		v := gst.ValueLine(domain.InvoiceLineItem{
			CatalogItemID: goodsID, Quantity: 2, UnitPrice: 500,
		}, catalog)
		assert.Equal(t, 1000.0, v.Amount)
		assert.Equal(t, 1000.0, v.TaxableValue)
		assert.Equal(t, 180.0, v.GSTAmount)
		assert.Equal(t, "7214", v.HSNSAC)
		assert.False(t, v.UnknownItem)
	})

	t.Run("percentage_discount", func(t *testing.T) {
		v := gst.ValueLine(domain.InvoiceLineItem{
			CatalogItemID: goodsID, Quantity: 2, UnitPrice: 500, DiscountPercent: 10,
		}, catalog)
		assert.Equal(t, 1000.0, v.Amount)
		assert.Equal(t, 100.0, v.DiscountAmount)
		assert.Equal(t, 900.0, v.TaxableValue)
		assert.Equal(t, 162.0, v.GSTAmount)
	})

	t.Run("dangling_item_degrades", func(t *testing.T) {
		v := gst.ValueLine(domain.InvoiceLineItem{
			CatalogItemID: uuid.New(), Quantity: 3, UnitPrice: 100,
		}, catalog)
		assert.True(t, v.UnknownItem)
		assert.Equal(t, "Unknown Item", v.Name)
		assert.Equal(t, gst.UnknownHSNSAC, v.HSNSAC)
		assert.Equal(t, 300.0, v.TaxableValue)
		assert.Zero(t, v.GSTAmount)
	})
}

func TestComputeTotals_IntraState(t *testing.T) {
	catalog, goodsID, _ := testCatalog()

	// Seller and buyer both in Karnataka: qty 2 x 500 at 18% splits evenly.
	totals := gst.ComputeTotals([]domain.InvoiceLineItem{
		{CatalogItemID: goodsID, Quantity: 2, UnitPrice: 500},
	}, catalog, "Karnataka", "Karnataka")

	assert.Equal(t, 1000.0, totals.Subtotal)
	assert.Equal(t, 1000.0, totals.TaxableAmount)
	assert.Equal(t, 90.0, totals.CGST)
	assert.Equal(t, 90.0, totals.SGST)
	assert.Zero(t, totals.IGST)
	assert.Equal(t, 1180.0, totals.GrandTotal)
	assert.False(t, totals.IsInterState)
}

func TestComputeTotals_InterState(t *testing.T) {
	catalog, goodsID, serviceID := testCatalog()

	totals := gst.ComputeTotals([]domain.InvoiceLineItem{
		{CatalogItemID: goodsID, Quantity: 2, UnitPrice: 500},
		{CatalogItemID: serviceID, Quantity: 1, UnitPrice: 1000},
	}, catalog, "Karnataka", "Maharashtra")

	assert.True(t, totals.IsInterState)
	assert.Equal(t, 2000.0, totals.Subtotal)
	assert.Equal(t, 300.0, totals.IGST) // 180 + 120
	assert.Zero(t, totals.CGST)
	assert.Zero(t, totals.SGST)
	assert.Equal(t, 2300.0, totals.GrandTotal)
}

func TestComputeTotals_Invariants(t *testing.T) {
	catalog, goodsID, serviceID := testCatalog()
	items := []domain.InvoiceLineItem{
		{CatalogItemID: goodsID, Quantity: 3, UnitPrice: 999.99, DiscountPercent: 5},
		{CatalogItemID: serviceID, Quantity: 1.5, UnitPrice: 1000, DiscountPercent: 12.5},
		{CatalogItemID: uuid.New(), Quantity: 2, UnitPrice: 49.5},
	}

	for _, buyerState := range []string{"Karnataka", "Kerala"} {
		totals := gst.ComputeTotals(items, catalog, "Karnataka", buyerState)

		assert.InDelta(t, totals.Subtotal-totals.TotalDiscount, totals.TaxableAmount, 1e-9)
		assert.InDelta(t, totals.TaxableAmount+totals.CGST+totals.SGST+totals.IGST, totals.GrandTotal, 1e-9)

		// Exactly one split mode is populated.
		if totals.IsInterState {
			assert.Zero(t, totals.CGST)
			assert.Zero(t, totals.SGST)
			assert.Positive(t, totals.IGST)
		} else {
			assert.Zero(t, totals.IGST)
			assert.Equal(t, totals.CGST, totals.SGST)
			assert.Positive(t, totals.CGST)
		}
	}
}

func TestComputeTotals_EmptyInvoice(t *testing.T) {
	catalog, _, _ := testCatalog()
	totals := gst.ComputeTotals(nil, catalog, "Karnataka", "Delhi")
	require.Equal(t, gst.TaxTotals{IsInterState: true}, totals)
}
