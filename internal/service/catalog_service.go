package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// CatalogItemInput is the DTO for creating or updating a catalog item.
type CatalogItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	HSNSAC      string  `json:"hsn_sac"`
	GSTRate     float64 `json:"gst_rate"`
	UnitPrice   float64 `json:"unit_price"`
	Unit        string  `json:"unit"`
	IsActive    *bool   `json:"is_active"`
}

// CatalogService defines the catalog management contract.
type CatalogService interface {
	Create(ctx context.Context, input *CatalogItemInput) (*domain.CatalogItem, error)
	GetByID(ctx context.Context, itemID uuid.UUID) (*domain.CatalogItem, error)
	List(ctx context.Context, offset, limit int) ([]domain.CatalogItem, int, error)
	Update(ctx context.Context, itemID uuid.UUID, input *CatalogItemInput) (*domain.CatalogItem, error)
	Delete(ctx context.Context, itemID uuid.UUID) error
}

type catalogService struct {
	catalogRepo port.CatalogRepository
}

// NewCatalogService creates a new CatalogService implementation.
func NewCatalogService(catalogRepo port.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

func validateGSTRate(rate float64) error {
	if rate < 0 || rate > 100 {
		return domain.ErrInvalidGSTRate
	}
	return nil
}

func (s *catalogService) Create(ctx context.Context, input *CatalogItemInput) (*domain.CatalogItem, error) {
	if err := validateGSTRate(input.GSTRate); err != nil {
		return nil, err
	}

	item := &domain.CatalogItem{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		HSNSAC:      strings.TrimSpace(input.HSNSAC),
		GSTRate:     input.GSTRate,
		UnitPrice:   input.UnitPrice,
		Unit:        input.Unit,
		IsActive:    true,
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.catalogRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("catalog.Create: %w", err)
	}
	return item, nil
}

func (s *catalogService) GetByID(ctx context.Context, itemID uuid.UUID) (*domain.CatalogItem, error) {
	return s.catalogRepo.GetByID(ctx, itemID)
}

func (s *catalogService) List(ctx context.Context, offset, limit int) ([]domain.CatalogItem, int, error) {
	return s.catalogRepo.List(ctx, offset, limit)
}

func (s *catalogService) Update(ctx context.Context, itemID uuid.UUID, input *CatalogItemInput) (*domain.CatalogItem, error) {
	if err := validateGSTRate(input.GSTRate); err != nil {
		return nil, err
	}

	item, err := s.catalogRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Description = input.Description
	item.HSNSAC = strings.TrimSpace(input.HSNSAC)
	item.GSTRate = input.GSTRate
	item.UnitPrice = input.UnitPrice
	item.Unit = input.Unit
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.catalogRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("catalog.Update: %w", err)
	}
	return item, nil
}

func (s *catalogService) Delete(ctx context.Context, itemID uuid.UUID) error {
	return s.catalogRepo.Delete(ctx, itemID)
}
