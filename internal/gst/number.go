package gst

import (
	"fmt"
	"strings"

	"gstbill/internal/domain"
)

const (
	defaultInvoicePrefix  = "INV"
	defaultStartingNumber = 1
)

// DisplayNumber resolves an invoice's human-readable identifier. A stored
// invoice number wins verbatim when non-blank after trimming; manual
// overrides and numbers carried over from prior systems always take
// precedence. Otherwise the number is prefix + zero-padded
// (sequentialId + startingNumber − 1), with "INV" and 1 as defaults so
// every invoice has a display number even before a profile exists.
func DisplayNumber(inv domain.Invoice, profile *domain.BusinessProfile) string {
	if stored := strings.TrimSpace(inv.InvoiceNumber); stored != "" {
		return inv.InvoiceNumber
	}

	prefix := defaultInvoicePrefix
	starting := int64(defaultStartingNumber)
	if profile != nil {
		if profile.InvoicePrefix != "" {
			prefix = profile.InvoicePrefix
		}
		if profile.StartingNumber >= 1 {
			starting = profile.StartingNumber
		}
	}

	return fmt.Sprintf("%s%04d", prefix, inv.SequentialID+starting-1)
}
