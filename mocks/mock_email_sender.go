package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstbill/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendInvoiceEmail(ctx context.Context, email port.InvoiceEmail) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
