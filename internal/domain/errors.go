package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserInactive         = errors.New("user is inactive")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrProfileNotConfigured = errors.New("business profile not configured")
	ErrInvoiceHasNoLines    = errors.New("invoice must have at least one line item")
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")
	ErrInvalidInvoiceDate   = errors.New("invalid invoice date")
	ErrInvalidGSTIN         = errors.New("gstin must be 15 characters")
	ErrInvalidGSTRate       = errors.New("gst rate must be between 0 and 100")
	ErrCustomerHasNoEmail   = errors.New("customer has no email address")
	ErrRegistryUnavailable  = errors.New("filing registry unavailable")
	ErrExportFailed         = errors.New("report export failed")
)
