package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/gst"
	"gstbill/internal/port"
)

// InvoiceLineInput is one line in an invoice create/update request.
type InvoiceLineInput struct {
	CatalogItemID   uuid.UUID `json:"catalog_item_id" binding:"required"`
	Quantity        float64   `json:"quantity" binding:"required,gt=0"`
	UnitPrice       float64   `json:"unit_price"`
	DiscountPercent float64   `json:"discount_percent"`
}

// InvoiceInput is the DTO for creating or updating an invoice.
type InvoiceInput struct {
	CustomerID    uuid.UUID          `json:"customer_id" binding:"required"`
	InvoiceDate   string             `json:"invoice_date" binding:"required"`
	InvoiceNumber string             `json:"invoice_number"`
	Status        string             `json:"status"`
	Notes         string             `json:"notes"`
	Lines         []InvoiceLineInput `json:"lines" binding:"required"`
}

// InvoiceView is a fully computed invoice ready for rendering: the stored
// header plus the display number, the valued lines, tax totals, the HSN/SAC
// breakdown, and the grand total in words.
type InvoiceView struct {
	Invoice       *domain.Invoice     `json:"invoice"`
	DisplayNumber string              `json:"display_number"`
	Customer      *domain.Customer    `json:"customer,omitempty"`
	Lines         []gst.LineValuation `json:"lines"`
	Totals        gst.TaxTotals       `json:"totals"`
	Breakdown     gst.HSNBreakdown    `json:"hsn_breakdown"`
	AmountInWords string              `json:"amount_in_words"`
}

// InvoiceService defines the invoice management contract.
type InvoiceService interface {
	Create(ctx context.Context, createdBy uuid.UUID, input *InvoiceInput) (*domain.Invoice, error)
	GetByID(ctx context.Context, invoiceID uuid.UUID) (*domain.Invoice, error)
	View(ctx context.Context, invoiceID uuid.UUID) (*InvoiceView, error)
	List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error)
	Update(ctx context.Context, invoiceID uuid.UUID, input *InvoiceInput) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, invoiceID uuid.UUID, status string) error
	Delete(ctx context.Context, invoiceID uuid.UUID) error
	Email(ctx context.Context, invoiceID uuid.UUID) error
}

type invoiceService struct {
	invoiceRepo  port.InvoiceRepository
	catalogRepo  port.CatalogRepository
	customerRepo port.CustomerRepository
	profileRepo  port.ProfileRepository
	emailSender  port.EmailSender
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invoiceRepo port.InvoiceRepository,
	catalogRepo port.CatalogRepository,
	customerRepo port.CustomerRepository,
	profileRepo port.ProfileRepository,
	emailSender port.EmailSender,
) InvoiceService {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		catalogRepo:  catalogRepo,
		customerRepo: customerRepo,
		profileRepo:  profileRepo,
		emailSender:  emailSender,
	}
}

func (s *invoiceService) validateInput(input *InvoiceInput) (domain.InvoiceStatus, error) {
	if _, err := time.Parse("2006-01-02", input.InvoiceDate); err != nil {
		return "", domain.ErrInvalidInvoiceDate
	}
	if len(input.Lines) == 0 {
		return "", domain.ErrInvoiceHasNoLines
	}

	status := domain.InvoiceStatusDraft
	if input.Status != "" {
		status = domain.InvoiceStatus(input.Status)
		if !domain.ValidInvoiceStatuses[status] {
			return "", domain.ErrInvalidInvoiceStatus
		}
	}
	return status, nil
}

// buildLineItems resolves catalog references and fills unit prices a
// request left at zero from the current catalog price.
func (s *invoiceService) buildLineItems(ctx context.Context, invoiceID uuid.UUID, lines []InvoiceLineInput) ([]domain.InvoiceLineItem, error) {
	items := make([]domain.InvoiceLineItem, 0, len(lines))
	for i, line := range lines {
		item := domain.InvoiceLineItem{
			ID:              uuid.New(),
			InvoiceID:       invoiceID,
			CatalogItemID:   line.CatalogItemID,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			DiscountPercent: line.DiscountPercent,
			Position:        i,
		}
		if item.UnitPrice == 0 {
			ci, err := s.catalogRepo.GetByID(ctx, line.CatalogItemID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return nil, fmt.Errorf("line %d: %w", i+1, domain.ErrNotFound)
				}
				return nil, fmt.Errorf("invoice.buildLineItems: %w", err)
			}
			item.UnitPrice = ci.UnitPrice
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *invoiceService) Create(ctx context.Context, createdBy uuid.UUID, input *InvoiceInput) (*domain.Invoice, error) {
	status, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return nil, err
	}

	invoice := &domain.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: strings.TrimSpace(input.InvoiceNumber),
		CustomerID:    input.CustomerID,
		InvoiceDate:   input.InvoiceDate,
		Status:        status,
		Notes:         input.Notes,
		CreatedBy:     createdBy,
	}

	invoice.LineItems, err = s.buildLineItems(ctx, invoice.ID, input.Lines)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("invoice.Create: %w", err)
	}
	return invoice, nil
}

func (s *invoiceService) GetByID(ctx context.Context, invoiceID uuid.UUID) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, invoiceID)
}

// View assembles the computed invoice. Lookups that fail soft, like a
// deleted customer or an absent business profile, degrade to defaults so
// stored invoices stay viewable.
func (s *invoiceService) View(ctx context.Context, invoiceID uuid.UUID) (*InvoiceView, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	var profile *domain.BusinessProfile
	sellerState := ""
	if p, err := s.profileRepo.Get(ctx); err == nil {
		profile = p
		sellerState = p.State
	}

	var customer *domain.Customer
	buyerState := ""
	if c, err := s.customerRepo.GetByID(ctx, invoice.CustomerID); err == nil {
		customer = c
		buyerState = c.State
	}

	totals := gst.ComputeTotals(invoice.LineItems, catalog, sellerState, buyerState)
	view := &InvoiceView{
		Invoice:       invoice,
		DisplayNumber: gst.DisplayNumber(*invoice, profile),
		Customer:      customer,
		Lines:         gst.ValueLines(invoice.LineItems, catalog),
		Totals:        totals,
		Breakdown:     gst.ComputeBreakdown(invoice.LineItems, catalog, sellerState, buyerState),
		AmountInWords: gst.AmountInWords(totals.GrandTotal),
	}
	return view, nil
}

func (s *invoiceService) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	return s.invoiceRepo.List(ctx, offset, limit)
}

func (s *invoiceService) Update(ctx context.Context, invoiceID uuid.UUID, input *InvoiceInput) (*domain.Invoice, error) {
	status, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	invoice.CustomerID = input.CustomerID
	invoice.InvoiceDate = input.InvoiceDate
	invoice.InvoiceNumber = strings.TrimSpace(input.InvoiceNumber)
	invoice.Status = status
	invoice.Notes = input.Notes

	invoice.LineItems, err = s.buildLineItems(ctx, invoice.ID, input.Lines)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("invoice.Update: %w", err)
	}
	return invoice, nil
}

func (s *invoiceService) UpdateStatus(ctx context.Context, invoiceID uuid.UUID, status string) error {
	st := domain.InvoiceStatus(status)
	if !domain.ValidInvoiceStatuses[st] {
		return domain.ErrInvalidInvoiceStatus
	}
	return s.invoiceRepo.UpdateStatus(ctx, invoiceID, st)
}

func (s *invoiceService) Delete(ctx context.Context, invoiceID uuid.UUID) error {
	return s.invoiceRepo.Delete(ctx, invoiceID)
}

// Email sends the computed invoice to the customer's email address.
func (s *invoiceService) Email(ctx context.Context, invoiceID uuid.UUID) error {
	view, err := s.View(ctx, invoiceID)
	if err != nil {
		return err
	}
	if view.Customer == nil || strings.TrimSpace(view.Customer.Email) == "" {
		return domain.ErrCustomerHasNoEmail
	}

	businessName := ""
	if p, err := s.profileRepo.Get(ctx); err == nil {
		businessName = p.BusinessName
	}

	msg := port.InvoiceEmail{
		ToEmail:       view.Customer.Email,
		ToName:        view.Customer.Name,
		InvoiceNumber: view.DisplayNumber,
		InvoiceDate:   view.Invoice.InvoiceDate,
		GrandTotal:    view.Totals.GrandTotal,
		AmountInWords: view.AmountInWords,
		BusinessName:  businessName,
	}
	if err := s.emailSender.SendInvoiceEmail(ctx, msg); err != nil {
		return fmt.Errorf("invoice.Email: %w", err)
	}
	return nil
}

func (s *invoiceService) loadCatalog(ctx context.Context) (gst.Catalog, error) {
	items, err := s.catalogRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("invoice.loadCatalog: %w", err)
	}
	catalog := make(gst.Catalog, len(items))
	for i := range items {
		catalog[items[i].ID] = &items[i]
	}
	return catalog, nil
}
