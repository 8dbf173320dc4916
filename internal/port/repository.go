package port

import (
	"context"

	"github.com/google/uuid"

	"gstbill/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// CatalogRepository defines the contract for catalog item persistence.
type CatalogRepository interface {
	Create(ctx context.Context, item *domain.CatalogItem) error
	GetByID(ctx context.Context, itemID uuid.UUID) (*domain.CatalogItem, error)
	List(ctx context.Context, offset, limit int) ([]domain.CatalogItem, int, error)
	LoadAll(ctx context.Context) ([]domain.CatalogItem, error)
	Update(ctx context.Context, item *domain.CatalogItem) error
	Delete(ctx context.Context, itemID uuid.UUID) error
}

// CustomerRepository defines the contract for customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, offset, limit int) ([]domain.Customer, int, error)
	LoadAll(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, customerID uuid.UUID) error
}

// ProfileRepository defines the contract for the single business profile.
type ProfileRepository interface {
	Get(ctx context.Context) (*domain.BusinessProfile, error)
	Upsert(ctx context.Context, profile *domain.BusinessProfile) error
}

// InvoiceRepository defines the contract for invoice persistence. Create
// and Update write the header and line items transactionally; Create also
// assigns the next sequential id.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, invoiceID uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error)
	ListByDateRange(ctx context.Context, from, to string) ([]domain.Invoice, error)
	Update(ctx context.Context, invoice *domain.Invoice) error
	UpdateStatus(ctx context.Context, invoiceID uuid.UUID, status domain.InvoiceStatus) error
	Delete(ctx context.Context, invoiceID uuid.UUID) error
}
