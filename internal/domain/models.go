package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user of the billing account.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// BusinessProfile holds the seller's registration and invoice numbering
// settings. At most one profile exists per deployment.
type BusinessProfile struct {
	ID             uuid.UUID `db:"id" json:"id"`
	BusinessName   string    `db:"business_name" json:"business_name"`
	GSTIN          string    `db:"gstin" json:"gstin"`
	State          string    `db:"state" json:"state"`
	Address        string    `db:"address" json:"address"`
	Phone          string    `db:"phone" json:"phone"`
	Email          string    `db:"email" json:"email"`
	InvoicePrefix  string    `db:"invoice_prefix" json:"invoice_prefix"`
	StartingNumber int64     `db:"starting_number" json:"starting_number"`
	BankName       string    `db:"bank_name" json:"bank_name"`
	BankAccount    string    `db:"bank_account" json:"bank_account"`
	BankIFSC       string    `db:"bank_ifsc" json:"bank_ifsc"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// CatalogItem is a sellable product or service with its tax attributes.
type CatalogItem struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	HSNSAC      string    `db:"hsn_sac" json:"hsn_sac"`
	GSTRate     float64   `db:"gst_rate" json:"gst_rate"`
	UnitPrice   float64   `db:"unit_price" json:"unit_price"`
	Unit        string    `db:"unit" json:"unit"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Customer is a buyer with the state that drives the tax split.
type Customer struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	State     string    `db:"state" json:"state"`
	Address   string    `db:"address" json:"address"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// InvoiceLineItem is one line on an invoice. DiscountPercent is a
// percentage of the line amount in [0,100], not a currency amount.
type InvoiceLineItem struct {
	ID              uuid.UUID `db:"id" json:"id"`
	InvoiceID       uuid.UUID `db:"invoice_id" json:"invoice_id"`
	CatalogItemID   uuid.UUID `db:"catalog_item_id" json:"catalog_item_id"`
	Quantity        float64   `db:"quantity" json:"quantity"`
	UnitPrice       float64   `db:"unit_price" json:"unit_price"`
	DiscountPercent float64   `db:"discount_percent" json:"discount_percent"`
	Position        int       `db:"position" json:"position"`
}

// Invoice is a sales invoice header. InvoiceNumber, when non-blank, is a
// manual override that takes precedence over the computed display number.
type Invoice struct {
	ID            uuid.UUID         `db:"id" json:"id"`
	SequentialID  int64             `db:"sequential_id" json:"sequential_id"`
	InvoiceNumber string            `db:"invoice_number" json:"invoice_number"`
	CustomerID    uuid.UUID         `db:"customer_id" json:"customer_id"`
	InvoiceDate   string            `db:"invoice_date" json:"invoice_date"`
	Status        InvoiceStatus     `db:"status" json:"status"`
	Notes         string            `db:"notes" json:"notes"`
	CreatedBy     uuid.UUID         `db:"created_by" json:"created_by"`
	CreatedAt     time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time         `db:"updated_at" json:"updated_at"`
	LineItems     []InvoiceLineItem `db:"-" json:"line_items"`
}

// FilingRecord is one GST return filing entry from the external registry.
// Status carries the registry's free text untouched.
type FilingRecord struct {
	ReturnType   string `json:"return_type"`
	TaxPeriod    string `json:"tax_period"`
	FilingYear   string `json:"filing_year"`
	DateOfFiling string `json:"date_of_filing"`
	Status       string `json:"status"`
}
