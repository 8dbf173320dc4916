package gst

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"gstbill/internal/domain"
)

const invoiceDateLayout = "2006-01-02"

// PeriodSummary accumulates invoice totals for one (year, month) pair.
// Year and Month are both empty for invoices whose date fails to parse;
// callers may filter that bucket out before display.
type PeriodSummary struct {
	Year         string  `json:"year"`
	Month        string  `json:"month"`
	InvoiceCount int     `json:"invoice_count"`
	TaxableValue float64 `json:"taxable_value"`
	CGST         float64 `json:"cgst"`
	SGST         float64 `json:"sgst"`
	IGST         float64 `json:"igst"`
	TotalGST     float64 `json:"total_gst"`
	GrandTotal   float64 `json:"grand_total"`
}

// CustomerLookup resolves a customer by id. A nil lookup or nil result
// leaves the buyer state empty, which defaults the split to intra-state.
type CustomerLookup func(customerID uuid.UUID) *domain.Customer

// AggregateByPeriod groups invoices by the calendar month of their date
// and folds each invoice's totals into its period. Output is ordered most
// recent period first; the unknown-period bucket sorts last.
func AggregateByPeriod(invoices []domain.Invoice, catalog Catalog, sellerState string, lookup CustomerLookup) []PeriodSummary {
	summaries := make(map[string]*PeriodSummary)
	var keys []string

	for i := range invoices {
		inv := &invoices[i]

		var year, month string
		if t, err := time.Parse(invoiceDateLayout, inv.InvoiceDate); err == nil {
			year = t.Format("2006")
			month = t.Format("01")
		}

		buyerState := ""
		if lookup != nil {
			if customer := lookup(inv.CustomerID); customer != nil {
				buyerState = customer.State
			}
		}

		totals := ComputeTotals(inv.LineItems, catalog, sellerState, buyerState)

		key := year + "-" + month
		s := summaries[key]
		if s == nil {
			s = &PeriodSummary{Year: year, Month: month}
			summaries[key] = s
			keys = append(keys, key)
		}
		s.InvoiceCount++
		s.TaxableValue += totals.TaxableAmount
		s.CGST += totals.CGST
		s.SGST += totals.SGST
		s.IGST += totals.IGST
		s.TotalGST += totals.TotalGST()
		s.GrandTotal += totals.GrandTotal
	}

	// Most recent first; the "-" key of the unknown bucket sorts below
	// any real "YYYY-MM" key.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	out := make([]PeriodSummary, 0, len(keys))
	for _, key := range keys {
		out = append(out, *summaries[key])
	}
	return out
}
