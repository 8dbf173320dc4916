package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
)

// MockFilingRegistry is a mock implementation of port.FilingRegistry.
type MockFilingRegistry struct {
	mock.Mock
}

func (m *MockFilingRegistry) ReturnsByGSTIN(ctx context.Context, gstin string) ([]domain.FilingRecord, error) {
	args := m.Called(ctx, gstin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FilingRecord), args.Error(1)
}
