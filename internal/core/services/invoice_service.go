package services

import (
	"context"
	"fmt"
	"time"

	"github.com/juruweb/epms_backend/internal/apperrors"
	"github.com/juruweb/epms_backend/internal/core/domain"
	portsrepo "github.com/juruweb/epms_backend/internal/core/ports/repositories"
	portssvc "github.com/juruweb/epms_backend/internal/core/ports/services"
	"github.com/juruweb/epms_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// InvoiceService provides business logic for invoices.
type InvoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	projectRepo portsrepo.ProjectRepositoryFacade
	converter   portssvc.ConverterSvcFacade
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, projectRepo portsrepo.ProjectRepositoryFacade, converter portssvc.ConverterSvcFacade) *InvoiceService {
	return &InvoiceService{invoiceRepo: invoiceRepo, projectRepo: projectRepo, converter: converter}
}

// CreateInvoice issues an invoice against a project. For projects that are
// not lump-sum billed, the cumulative percentOfProject across the project's
// invoices may not exceed 100. This is checked at entry time only; existing
// records are never retroactively re-validated.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorID string) (*domain.Invoice, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: invoice amount must be positive", apperrors.ErrValidation)
	}
	if req.PercentOfProject.IsNegative() || req.PercentOfProject.GreaterThan(hundred) {
		return nil, fmt.Errorf("%w: percentOfProject must be between 0 and 100", apperrors.ErrValidation)
	}

	project, err := s.projectRepo.FindProjectByCode(ctx, req.ProjectCode)
	if err != nil {
		return nil, fmt.Errorf("%w: project %q not found", apperrors.ErrValidation, req.ProjectCode)
	}

	if project.BillingType != domain.BillingLumpSum {
		existing, err := s.invoiceRepo.ListInvoicesByProjectCode(ctx, req.ProjectCode)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing invoices: %w", err)
		}
		cumulative := req.PercentOfProject
		for _, inv := range existing {
			cumulative = cumulative.Add(inv.PercentOfProject)
		}
		if cumulative.GreaterThan(hundred) {
			return nil, fmt.Errorf("%w: cumulative percentOfProject %s would exceed 100", apperrors.ErrValidation, cumulative)
		}
	}

	conversion := s.converter.Convert(ctx, req.Amount, req.CurrencyCode, req.CustomRate)

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:        uuid.NewString(),
		InvoiceNumber:    req.InvoiceNumber,
		ProjectCode:      req.ProjectCode,
		Amount:           req.Amount,
		CurrencyCode:     req.CurrencyCode,
		AmountMYR:        conversion.Converted,
		PercentOfProject: req.PercentOfProject,
		Status:           domain.InvoiceDraft,
		IssueDate:        req.IssueDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", "invoice_number", req.InvoiceNumber)
		return nil, fmt.Errorf("failed to create invoice in service: %w", err)
	}

	return &invoice, nil
}

// GetInvoiceByID retrieves a single invoice.
func (s *InvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice in service: %w", err)
	}
	return invoice, nil
}

// ListInvoices returns all invoices.
func (s *InvoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices in service: %w", err)
	}
	return invoices, nil
}

// UpdateInvoiceStatus moves an invoice along draft -> sent -> paid.
func (s *InvoiceService) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updaterID string) (*domain.Invoice, error) {
	switch status {
	case domain.InvoiceDraft, domain.InvoiceSent, domain.InvoicePaid:
	default:
		return nil, fmt.Errorf("%w: unknown invoice status %q", apperrors.ErrValidation, status)
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice for status update: %w", err)
	}

	invoice.Status = status
	invoice.LastUpdatedAt = time.Now()
	invoice.LastUpdatedBy = updaterID

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "Failed to update invoice status", "invoice_id", invoiceID)
		return nil, fmt.Errorf("failed to update invoice in service: %w", err)
	}

	return invoice, nil
}

// DeleteInvoice removes an invoice.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, invoiceID string) error {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID); err != nil {
		return fmt.Errorf("failed to find invoice for delete: %w", err)
	}
	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID); err != nil {
		return fmt.Errorf("failed to delete invoice in service: %w", err)
	}
	return nil
}
