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

type catalogRepo struct {
	db *sqlx.DB
}

// NewCatalogRepo creates a new PostgreSQL-backed CatalogRepository.
func NewCatalogRepo(db *sqlx.DB) port.CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) Create(ctx context.Context, item *domain.CatalogItem) error {
	item.ID = uuid.New()
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO catalog_items (id, name, description, hsn_sac, gst_rate, unit_price, unit, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		item.ID, item.Name, item.Description, item.HSNSAC, item.GSTRate,
		item.UnitPrice, item.Unit, item.IsActive, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("catalogRepo.Create: %w", err)
	}
	return nil
}

func (r *catalogRepo) GetByID(ctx context.Context, itemID uuid.UUID) (*domain.CatalogItem, error) {
	var item domain.CatalogItem
	err := r.db.GetContext(ctx, &item,
		"SELECT * FROM catalog_items WHERE id = $1", itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("catalogRepo.GetByID: %w", err)
	}
	return &item, nil
}

func (r *catalogRepo) List(ctx context.Context, offset, limit int) ([]domain.CatalogItem, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM catalog_items"); err != nil {
		return nil, 0, fmt.Errorf("catalogRepo.List count: %w", err)
	}

	var items []domain.CatalogItem
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM catalog_items ORDER BY name OFFSET $1 LIMIT $2", offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("catalogRepo.List: %w", err)
	}
	return items, total, nil
}

// LoadAll returns every catalog item, deleted references included, for
// building the engine's lookup map before totals are computed.
func (r *catalogRepo) LoadAll(ctx context.Context) ([]domain.CatalogItem, error) {
	var items []domain.CatalogItem
	err := r.db.SelectContext(ctx, &items, "SELECT * FROM catalog_items")
	if err != nil {
		return nil, fmt.Errorf("catalogRepo.LoadAll: %w", err)
	}
	return items, nil
}

func (r *catalogRepo) Update(ctx context.Context, item *domain.CatalogItem) error {
	item.UpdatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx,
		`UPDATE catalog_items SET name = $1, description = $2, hsn_sac = $3, gst_rate = $4,
		 unit_price = $5, unit = $6, is_active = $7, updated_at = $8 WHERE id = $9`,
		item.Name, item.Description, item.HSNSAC, item.GSTRate,
		item.UnitPrice, item.Unit, item.IsActive, item.UpdatedAt, item.ID)
	if err != nil {
		return fmt.Errorf("catalogRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *catalogRepo) Delete(ctx context.Context, itemID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM catalog_items WHERE id = $1", itemID)
	if err != nil {
		return fmt.Errorf("catalogRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
