package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// ProfileInput is the DTO for creating or updating the business profile.
type ProfileInput struct {
	BusinessName   string `json:"business_name" binding:"required"`
	GSTIN          string `json:"gstin"`
	State          string `json:"state"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	InvoicePrefix  string `json:"invoice_prefix"`
	StartingNumber int64  `json:"starting_number"`
	BankName       string `json:"bank_name"`
	BankAccount    string `json:"bank_account"`
	BankIFSC       string `json:"bank_ifsc"`
}

// ProfileService defines the business profile contract. A deployment
// holds at most one profile.
type ProfileService interface {
	Get(ctx context.Context) (*domain.BusinessProfile, error)
	Upsert(ctx context.Context, input *ProfileInput) (*domain.BusinessProfile, error)
}

type profileService struct {
	profileRepo port.ProfileRepository
}

// NewProfileService creates a new ProfileService implementation.
func NewProfileService(profileRepo port.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) Get(ctx context.Context) (*domain.BusinessProfile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrProfileNotConfigured
		}
		return nil, fmt.Errorf("profile.Get: %w", err)
	}
	return profile, nil
}

func (s *profileService) Upsert(ctx context.Context, input *ProfileInput) (*domain.BusinessProfile, error) {
	gstin := strings.ToUpper(strings.TrimSpace(input.GSTIN))
	if gstin != "" && len(gstin) != 15 {
		return nil, domain.ErrInvalidGSTIN
	}

	starting := input.StartingNumber
	if starting < 1 {
		starting = 1
	}

	profile := &domain.BusinessProfile{
		ID:             uuid.New(),
		BusinessName:   strings.TrimSpace(input.BusinessName),
		GSTIN:          gstin,
		State:          strings.TrimSpace(input.State),
		Address:        input.Address,
		Phone:          input.Phone,
		Email:          strings.TrimSpace(input.Email),
		InvoicePrefix:  strings.TrimSpace(input.InvoicePrefix),
		StartingNumber: starting,
		BankName:       input.BankName,
		BankAccount:    input.BankAccount,
		BankIFSC:       strings.ToUpper(strings.TrimSpace(input.BankIFSC)),
	}

	if existing, err := s.profileRepo.Get(ctx); err == nil {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("profile.Upsert: %w", err)
	}
	return profile, nil
}
