package port

import "context"

// InvoiceEmail carries everything the sender needs to render the message.
type InvoiceEmail struct {
	ToEmail       string
	ToName        string
	InvoiceNumber string
	InvoiceDate   string
	GrandTotal    float64
	AmountInWords string
	BusinessName  string
}

// EmailSender defines the contract for sending invoice emails.
type EmailSender interface {
	SendInvoiceEmail(ctx context.Context, email InvoiceEmail) error
}
