package noop

import (
	"context"
	"log"

	"gstbill/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendInvoiceEmail(_ context.Context, email port.InvoiceEmail) error {
	log.Printf("[NOOP EMAIL] Invoice %s to %s (%s): Rs. %.2f, %s",
		email.InvoiceNumber, email.ToName, email.ToEmail, email.GrandTotal, email.AmountInWords)
	return nil
}
