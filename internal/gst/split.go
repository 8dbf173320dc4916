// Package gst computes GST figures for sales invoices: line valuations,
// invoice totals, HSN/SAC breakdowns, period rollups, display invoice
// numbers, and the amount-in-words declaration line. Every function is
// pure and total; missing references degrade to defined defaults instead
// of returning errors.
package gst

// IsInterState reports whether a supply is inter-state, i.e. whether tax
// becomes IGST instead of CGST+SGST. State names compare case-sensitive
// and exact. An empty seller or buyer state means the party is not yet
// loaded; the split defaults to intra-state so no invoice is wrongly
// classified inter-state on incomplete data.
func IsInterState(sellerState, buyerState string) bool {
	if sellerState == "" || buyerState == "" {
		return false
	}
	return sellerState != buyerState
}
