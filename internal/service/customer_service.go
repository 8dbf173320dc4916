package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// CustomerInput is the DTO for creating or updating a customer.
type CustomerInput struct {
	Name    string `json:"name" binding:"required"`
	GSTIN   string `json:"gstin"`
	State   string `json:"state"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// CustomerService defines the customer management contract.
type CustomerService interface {
	Create(ctx context.Context, input *CustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, offset, limit int) ([]domain.Customer, int, error)
	Update(ctx context.Context, customerID uuid.UUID, input *CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, customerID uuid.UUID) error
}

type customerService struct {
	customerRepo port.CustomerRepository
}

// NewCustomerService creates a new CustomerService implementation.
func NewCustomerService(customerRepo port.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) Create(ctx context.Context, input *CustomerInput) (*domain.Customer, error) {
	gstin := strings.ToUpper(strings.TrimSpace(input.GSTIN))
	if gstin != "" && len(gstin) != 15 {
		return nil, domain.ErrInvalidGSTIN
	}

	customer := &domain.Customer{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(input.Name),
		GSTIN:   gstin,
		State:   strings.TrimSpace(input.State),
		Address: input.Address,
		Phone:   input.Phone,
		Email:   strings.TrimSpace(input.Email),
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("customer.Create: %w", err)
	}
	return customer, nil
}

func (s *customerService) GetByID(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, customerID)
}

func (s *customerService) List(ctx context.Context, offset, limit int) ([]domain.Customer, int, error) {
	return s.customerRepo.List(ctx, offset, limit)
}

func (s *customerService) Update(ctx context.Context, customerID uuid.UUID, input *CustomerInput) (*domain.Customer, error) {
	gstin := strings.ToUpper(strings.TrimSpace(input.GSTIN))
	if gstin != "" && len(gstin) != 15 {
		return nil, domain.ErrInvalidGSTIN
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	customer.Name = strings.TrimSpace(input.Name)
	customer.GSTIN = gstin
	customer.State = strings.TrimSpace(input.State)
	customer.Address = input.Address
	customer.Phone = input.Phone
	customer.Email = strings.TrimSpace(input.Email)

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("customer.Update: %w", err)
	}
	return customer, nil
}

func (s *customerService) Delete(ctx context.Context, customerID uuid.UUID) error {
	return s.customerRepo.Delete(ctx, customerID)
}
