package gst

import "gstbill/internal/domain"

// TaxTotals is the invoice-level monetary summary. Invariants:
// TaxableAmount = Subtotal − TotalDiscount and GrandTotal = TaxableAmount +
// CGST + SGST + IGST. Exactly one of {CGST+SGST, IGST} is populated;
// intra-state splits the tax evenly so CGST always equals SGST.
type TaxTotals struct {
	Subtotal      float64 `json:"subtotal"`
	TotalDiscount float64 `json:"total_discount"`
	TaxableAmount float64 `json:"taxable_amount"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	IGST          float64 `json:"igst"`
	GrandTotal    float64 `json:"grand_total"`
	IsInterState  bool    `json:"is_inter_state"`
}

// TotalGST returns the combined tax across both split modes.
func (t TaxTotals) TotalGST() float64 {
	return t.CGST + t.SGST + t.IGST
}

// ComputeTotals accumulates line valuations into invoice totals and
// distributes the tax by the party states. The split is resolved once for
// the whole invoice, not per line. No rounding is applied mid-computation;
// presentation layers round for display. An empty line set yields all-zero
// totals; the function never fails.
func ComputeTotals(items []domain.InvoiceLineItem, catalog Catalog, sellerState, buyerState string) TaxTotals {
	totals := TaxTotals{IsInterState: IsInterState(sellerState, buyerState)}

	var totalGST float64
	for _, item := range items {
		v := ValueLine(item, catalog)
		totals.Subtotal += v.Amount
		totals.TotalDiscount += v.DiscountAmount
		totalGST += v.GSTAmount
	}

	totals.TaxableAmount = totals.Subtotal - totals.TotalDiscount
	if totals.IsInterState {
		totals.IGST = totalGST
	} else {
		totals.CGST = totalGST / 2
		totals.SGST = totalGST / 2
	}
	totals.GrandTotal = totals.TaxableAmount + totals.CGST + totals.SGST + totals.IGST
	return totals
}
