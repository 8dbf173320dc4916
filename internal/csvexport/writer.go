// Package csvexport renders report data as CSV for download. Files start
// with a UTF-8 BOM so Excel opens them with the right encoding.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"

	"gstbill/internal/gst"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// WritePeriodSummaries writes monthly GST summaries as CSV rows, one row
// per period in the order given.
func WritePeriodSummaries(w io.Writer, periods []gst.PeriodSummary) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("csvexport.WritePeriodSummaries: %w", err)
	}

	cw := csv.NewWriter(w)
	header := []string{
		"Year", "Month", "Invoices", "Taxable Value",
		"CGST", "SGST", "IGST", "Total GST", "Grand Total",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csvexport.WritePeriodSummaries: %w", err)
	}

	for _, p := range periods {
		record := []string{
			p.Year,
			p.Month,
			fmt.Sprintf("%d", p.InvoiceCount),
			money(p.TaxableValue),
			money(p.CGST),
			money(p.SGST),
			money(p.IGST),
			money(p.TotalGST),
			money(p.GrandTotal),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csvexport.WritePeriodSummaries: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteHSNBreakdown writes an invoice's HSN/SAC tax table as CSV,
// finishing with a totals row.
func WriteHSNBreakdown(w io.Writer, breakdown gst.HSNBreakdown) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("csvexport.WriteHSNBreakdown: %w", err)
	}

	cw := csv.NewWriter(w)
	header := []string{
		"HSN/SAC", "Taxable Value",
		"CGST Rate", "CGST Amount", "SGST Rate", "SGST Amount",
		"IGST Rate", "IGST Amount", "Total Tax",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csvexport.WriteHSNBreakdown: %w", err)
	}

	rate := func(v float64) string { return fmt.Sprintf("%g%%", v) }
	for _, row := range breakdown.Rows {
		record := []string{
			row.HSNSAC,
			money(row.TaxableValue),
			rate(row.CGSTRate),
			money(row.CGSTAmount),
			rate(row.SGSTRate),
			money(row.SGSTAmount),
			rate(row.IGSTRate),
			money(row.IGSTAmount),
			money(row.TotalTaxAmount),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csvexport.WriteHSNBreakdown: %w", err)
		}
	}

	totals := breakdown.Totals
	totalRow := []string{
		"Total",
		money(totals.TaxableAmount),
		"",
		money(totals.CGST),
		"",
		money(totals.SGST),
		"",
		money(totals.IGST),
		money(totals.TotalGST()),
	}
	if err := cw.Write(totalRow); err != nil {
		return fmt.Errorf("csvexport.WriteHSNBreakdown: %w", err)
	}

	cw.Flush()
	return cw.Error()
}
