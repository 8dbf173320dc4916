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

type profileRepo struct {
	db *sqlx.DB
}

// NewProfileRepo creates a new PostgreSQL-backed ProfileRepository.
func NewProfileRepo(db *sqlx.DB) port.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Get(ctx context.Context) (*domain.BusinessProfile, error) {
	var profile domain.BusinessProfile
	err := r.db.GetContext(ctx, &profile,
		"SELECT * FROM business_profile ORDER BY created_at LIMIT 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotConfigured
		}
		return nil, fmt.Errorf("profileRepo.Get: %w", err)
	}
	return &profile, nil
}

// Upsert creates the profile on first save and overwrites it afterwards.
// The table holds at most one row.
func (r *profileRepo) Upsert(ctx context.Context, profile *domain.BusinessProfile) error {
	now := time.Now().UTC()
	profile.UpdatedAt = now

	existing, err := r.Get(ctx)
	switch {
	case errors.Is(err, domain.ErrProfileNotConfigured):
		profile.ID = uuid.New()
		profile.CreatedAt = now
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO business_profile (id, business_name, gstin, state, address, phone, email,
			 invoice_prefix, starting_number, bank_name, bank_account, bank_ifsc, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			profile.ID, profile.BusinessName, profile.GSTIN, profile.State,
			profile.Address, profile.Phone, profile.Email,
			profile.InvoicePrefix, profile.StartingNumber,
			profile.BankName, profile.BankAccount, profile.BankIFSC,
			profile.CreatedAt, profile.UpdatedAt)
		if err != nil {
			return fmt.Errorf("profileRepo.Upsert insert: %w", err)
		}
		return nil

	case err != nil:
		return fmt.Errorf("profileRepo.Upsert get: %w", err)
	}

	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	_, err = r.db.ExecContext(ctx,
		`UPDATE business_profile SET business_name = $1, gstin = $2, state = $3, address = $4,
		 phone = $5, email = $6, invoice_prefix = $7, starting_number = $8,
		 bank_name = $9, bank_account = $10, bank_ifsc = $11, updated_at = $12
		 WHERE id = $13`,
		profile.BusinessName, profile.GSTIN, profile.State, profile.Address,
		profile.Phone, profile.Email, profile.InvoicePrefix, profile.StartingNumber,
		profile.BankName, profile.BankAccount, profile.BankIFSC,
		profile.UpdatedAt, profile.ID)
	if err != nil {
		return fmt.Errorf("profileRepo.Upsert update: %w", err)
	}
	return nil
}
