package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, invoice *domain.Invoice) error {
	invoice.ID = uuid.New()
	now := time.Now().UTC()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Next sequential id under the transaction so concurrent creates
	// cannot reuse a number.
	if err := tx.GetContext(ctx, &invoice.SequentialID,
		"SELECT COALESCE(MAX(sequential_id), 0) + 1 FROM invoices"); err != nil {
		return fmt.Errorf("invoiceRepo.Create next sequential id: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO invoices (id, sequential_id, invoice_number, customer_id, invoice_date,
		 status, notes, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		invoice.ID, invoice.SequentialID, invoice.InvoiceNumber, invoice.CustomerID,
		invoice.InvoiceDate, invoice.Status, invoice.Notes, invoice.CreatedBy,
		invoice.CreatedAt, invoice.UpdatedAt)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create header: %w", err)
	}

	if err := insertLineItems(ctx, tx, invoice); err != nil {
		return fmt.Errorf("invoiceRepo.Create lines: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Create commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, invoiceID uuid.UUID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.GetContext(ctx, &invoice,
		"SELECT * FROM invoices WHERE id = $1", invoiceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}

	if err := r.loadLineItems(ctx, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepo) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices"); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices ORDER BY invoice_date DESC, sequential_id DESC OFFSET $1 LIMIT $2",
		offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}

	for i := range invoices {
		if err := r.loadLineItems(ctx, &invoices[i]); err != nil {
			return nil, 0, err
		}
	}
	return invoices, total, nil
}

// ListByDateRange returns invoices with line items for period reports.
// Dates compare as ISO-8601 text; empty bounds are open.
func (r *invoiceRepo) ListByDateRange(ctx context.Context, from, to string) ([]domain.Invoice, error) {
	query := "SELECT * FROM invoices WHERE 1=1"
	args := []interface{}{}
	argN := 1

	if from != "" {
		query += fmt.Sprintf(" AND invoice_date >= $%d", argN)
		args = append(args, from)
		argN++
	}
	if to != "" {
		query += fmt.Sprintf(" AND invoice_date <= $%d", argN)
		args = append(args, to)
	}
	query += " ORDER BY invoice_date DESC, sequential_id DESC"

	var invoices []domain.Invoice
	if err := r.db.SelectContext(ctx, &invoices, query, args...); err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListByDateRange: %w", err)
	}

	for i := range invoices {
		if err := r.loadLineItems(ctx, &invoices[i]); err != nil {
			return nil, err
		}
	}
	return invoices, nil
}

func (r *invoiceRepo) Update(ctx context.Context, invoice *domain.Invoice) error {
	invoice.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx,
		`UPDATE invoices SET invoice_number = $1, customer_id = $2, invoice_date = $3,
		 status = $4, notes = $5, updated_at = $6 WHERE id = $7`,
		invoice.InvoiceNumber, invoice.CustomerID, invoice.InvoiceDate,
		invoice.Status, invoice.Notes, invoice.UpdatedAt, invoice.ID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update header: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM invoice_line_items WHERE invoice_id = $1", invoice.ID); err != nil {
		return fmt.Errorf("invoiceRepo.Update clear lines: %w", err)
	}
	if err := insertLineItems(ctx, tx, invoice); err != nil {
		return fmt.Errorf("invoiceRepo.Update lines: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Update commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) UpdateStatus(ctx context.Context, invoiceID uuid.UUID, status domain.InvoiceStatus) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE invoices SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), invoiceID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.UpdateStatus: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invoiceRepo) Delete(ctx context.Context, invoiceID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM invoices WHERE id = $1", invoiceID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invoiceRepo) loadLineItems(ctx context.Context, invoice *domain.Invoice) error {
	err := r.db.SelectContext(ctx, &invoice.LineItems,
		"SELECT * FROM invoice_line_items WHERE invoice_id = $1 ORDER BY position",
		invoice.ID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.loadLineItems: %w", err)
	}
	return nil
}

func insertLineItems(ctx context.Context, tx *sqlx.Tx, invoice *domain.Invoice) error {
	for i := range invoice.LineItems {
		line := &invoice.LineItems[i]
		line.ID = uuid.New()
		line.InvoiceID = invoice.ID
		line.Position = i

		_, err := tx.ExecContext(ctx,
			`INSERT INTO invoice_line_items (id, invoice_id, catalog_item_id, quantity, unit_price, discount_percent, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			line.ID, line.InvoiceID, line.CatalogItemID,
			line.Quantity, line.UnitPrice, line.DiscountPercent, line.Position)
		if err != nil {
			return err
		}
	}
	return nil
}
