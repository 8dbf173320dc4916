package gst

import "gstbill/internal/domain"

// HSNBreakdownRow is one row of the printable tax summary, keyed by
// HSN/SAC code. Lines sharing a code are merged by summing taxable value
// before tax is computed on the merged value, so the reported per-code
// rate stays unambiguous.
type HSNBreakdownRow struct {
	HSNSAC         string  `json:"hsn_sac"`
	TaxableValue   float64 `json:"taxable_value"`
	CGSTRate       float64 `json:"cgst_rate"`
	CGSTAmount     float64 `json:"cgst_amount"`
	SGSTRate       float64 `json:"sgst_rate"`
	SGSTAmount     float64 `json:"sgst_amount"`
	IGSTRate       float64 `json:"igst_rate"`
	IGSTAmount     float64 `json:"igst_amount"`
	TotalTaxAmount float64 `json:"total_tax_amount"`
}

// HSNBreakdown is the per-code tax table plus its totals row.
type HSNBreakdown struct {
	Rows   []HSNBreakdownRow `json:"rows"`
	Totals TaxTotals         `json:"totals"`
}

// ComputeBreakdown groups an invoice's lines by HSN/SAC code. Missing
// codes fall into the single UnknownHSNSAC bucket. Rows appear in
// first-encounter order; sorting is a display concern. If two items share
// a code at different rates the bucket uses the last-seen rate, a
// data-quality condition rather than an engine error.
func ComputeBreakdown(items []domain.InvoiceLineItem, catalog Catalog, sellerState, buyerState string) HSNBreakdown {
	interState := IsInterState(sellerState, buyerState)

	type bucket struct {
		taxableValue float64
		rate         float64
		discount     float64
		amount       float64
	}
	var order []string
	buckets := make(map[string]*bucket)

	for _, item := range items {
		v := ValueLine(item, catalog)
		b := buckets[v.HSNSAC]
		if b == nil {
			b = &bucket{}
			buckets[v.HSNSAC] = b
			order = append(order, v.HSNSAC)
		}
		b.taxableValue += v.TaxableValue
		b.amount += v.Amount
		b.discount += v.DiscountAmount
		b.rate = v.GSTRate
	}

	breakdown := HSNBreakdown{
		Rows:   make([]HSNBreakdownRow, 0, len(order)),
		Totals: TaxTotals{IsInterState: interState},
	}

	for _, code := range order {
		b := buckets[code]
		row := HSNBreakdownRow{HSNSAC: code, TaxableValue: b.taxableValue}
		tax := b.taxableValue * b.rate / 100
		if interState {
			row.IGSTRate = b.rate
			row.IGSTAmount = tax
		} else {
			row.CGSTRate = b.rate / 2
			row.SGSTRate = b.rate / 2
			row.CGSTAmount = tax / 2
			row.SGSTAmount = tax / 2
		}
		row.TotalTaxAmount = row.CGSTAmount + row.SGSTAmount + row.IGSTAmount
		breakdown.Rows = append(breakdown.Rows, row)

		breakdown.Totals.Subtotal += b.amount
		breakdown.Totals.TotalDiscount += b.discount
		breakdown.Totals.CGST += row.CGSTAmount
		breakdown.Totals.SGST += row.SGSTAmount
		breakdown.Totals.IGST += row.IGSTAmount
	}

	breakdown.Totals.TaxableAmount = breakdown.Totals.Subtotal - breakdown.Totals.TotalDiscount
	breakdown.Totals.GrandTotal = breakdown.Totals.TaxableAmount +
		breakdown.Totals.CGST + breakdown.Totals.SGST + breakdown.Totals.IGST
	return breakdown
}
