package port

import (
	"context"

	"gstbill/internal/domain"
)

// FilingRegistry defines the contract for the external GST returns
// registry. Implementations return the registry's status text untouched;
// classification happens in the engine so no upstream information is lost.
type FilingRegistry interface {
	ReturnsByGSTIN(ctx context.Context, gstin string) ([]domain.FilingRecord, error)
}
