package gst

import (
	"github.com/google/uuid"

	"gstbill/internal/domain"
)

// UnknownHSNSAC is the stable bucket key used when a catalog item has no
// HSN/SAC code or the item reference is dangling.
const UnknownHSNSAC = "N/A"

// Catalog resolves catalog items by id for engine calls. Callers load it
// up front; the engine itself never reaches out to the data store.
type Catalog map[uuid.UUID]*domain.CatalogItem

// LineValuation is the computed monetary figures for one invoice line.
type LineValuation struct {
	CatalogItemID   uuid.UUID `json:"catalog_item_id"`
	Name            string    `json:"name"`
	HSNSAC          string    `json:"hsn_sac"`
	Quantity        float64   `json:"quantity"`
	UnitPrice       float64   `json:"unit_price"`
	DiscountPercent float64   `json:"discount_percent"`
	Amount          float64   `json:"amount"`
	DiscountAmount  float64   `json:"discount_amount"`
	TaxableValue    float64   `json:"taxable_value"`
	GSTRate         float64   `json:"gst_rate"`
	GSTAmount       float64   `json:"gst_amount"`
	UnknownItem     bool      `json:"unknown_item"`
}

// ValueLine computes amount, discount, taxable value, and GST for a single
// line item. A dangling catalog reference yields rate 0 and an unknown-item
// marker so invoices stay viewable after an item is deleted.
func ValueLine(item domain.InvoiceLineItem, catalog Catalog) LineValuation {
	v := LineValuation{
		CatalogItemID:   item.CatalogItemID,
		Quantity:        item.Quantity,
		UnitPrice:       item.UnitPrice,
		DiscountPercent: item.DiscountPercent,
		HSNSAC:          UnknownHSNSAC,
	}

	v.Amount = item.Quantity * item.UnitPrice
	v.DiscountAmount = v.Amount * item.DiscountPercent / 100
	v.TaxableValue = v.Amount - v.DiscountAmount

	ci := catalog[item.CatalogItemID]
	if ci == nil {
		v.Name = "Unknown Item"
		v.UnknownItem = true
		return v
	}

	v.Name = ci.Name
	if ci.HSNSAC != "" {
		v.HSNSAC = ci.HSNSAC
	}
	v.GSTRate = ci.GSTRate
	v.GSTAmount = v.TaxableValue * ci.GSTRate / 100
	return v
}

// ValueLines values every line of an invoice in order.
func ValueLines(items []domain.InvoiceLineItem, catalog Catalog) []LineValuation {
	valuations := make([]LineValuation, 0, len(items))
	for _, item := range items {
		valuations = append(valuations, ValueLine(item, catalog))
	}
	return valuations
}
