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

// PurchaseOrderService provides business logic for purchase orders.
// MYR conversion happens once at entry time through the converter; the
// stored figures are never silently re-converted afterwards.
type PurchaseOrderService struct {
	BaseService
	poRepo      portsrepo.PurchaseOrderRepositoryFacade
	projectRepo portsrepo.ProjectRepositoryFacade
	converter   portssvc.ConverterSvcFacade
}

// NewPurchaseOrderService creates a new PurchaseOrderService.
func NewPurchaseOrderService(poRepo portsrepo.PurchaseOrderRepositoryFacade, projectRepo portsrepo.ProjectRepositoryFacade, converter portssvc.ConverterSvcFacade) *PurchaseOrderService {
	return &PurchaseOrderService{poRepo: poRepo, projectRepo: projectRepo, converter: converter}
}

// CreatePurchaseOrder records a received PO against a project.
func (s *PurchaseOrderService) CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest, creatorID string) (*domain.PurchaseOrder, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: PO amount must be positive", apperrors.ErrValidation)
	}

	if _, err := s.projectRepo.FindProjectByCode(ctx, req.ProjectCode); err != nil {
		return nil, fmt.Errorf("%w: project %q not found", apperrors.ErrValidation, req.ProjectCode)
	}

	conversion := s.converter.Convert(ctx, req.Amount, req.CurrencyCode, req.CustomRate)

	now := time.Now()
	po := domain.PurchaseOrder{
		POID:              uuid.NewString(),
		PONumber:          req.PONumber,
		ProjectCode:       req.ProjectCode,
		Amount:            req.Amount,
		CurrencyCode:      req.CurrencyCode,
		ExchangeRate:      conversion.Rate,
		AmountMYR:         conversion.Converted,
		AmountMYRAdjusted: req.AmountMYRAdjusted,
		IsActive:          true,
		ReceivedDate:      req.ReceivedDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.poRepo.SavePurchaseOrder(ctx, po); err != nil {
		s.LogError(ctx, err, "Failed to save purchase order", "po_number", req.PONumber)
		return nil, fmt.Errorf("failed to create purchase order in service: %w", err)
	}

	return &po, nil
}

// GetPurchaseOrderByID retrieves a single PO.
func (s *PurchaseOrderService) GetPurchaseOrderByID(ctx context.Context, poID string) (*domain.PurchaseOrder, error) {
	po, err := s.poRepo.FindPurchaseOrderByID(ctx, poID)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase order in service: %w", err)
	}
	return po, nil
}

// ListPurchaseOrders returns POs, active-only unless includeInactive.
func (s *PurchaseOrderService) ListPurchaseOrders(ctx context.Context, includeInactive bool) ([]domain.PurchaseOrder, error) {
	pos, err := s.poRepo.ListPurchaseOrders(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders in service: %w", err)
	}
	return pos, nil
}

// UpdatePurchaseOrder applies the non-nil fields of req to a PO.
// The original amount and currency are immutable; corrections go through
// AmountMYRAdjusted so the entry-time conversion stays auditable.
func (s *PurchaseOrderService) UpdatePurchaseOrder(ctx context.Context, poID string, req dto.UpdatePurchaseOrderRequest, updaterID string) (*domain.PurchaseOrder, error) {
	po, err := s.poRepo.FindPurchaseOrderByID(ctx, poID)
	if err != nil {
		return nil, fmt.Errorf("failed to find purchase order for update: %w", err)
	}
	if !po.IsActive {
		return nil, fmt.Errorf("%w: purchase order %q is inactive", apperrors.ErrValidation, poID)
	}

	if req.PONumber != nil {
		po.PONumber = *req.PONumber
	}
	if req.AmountMYRAdjusted != nil {
		po.AmountMYRAdjusted = req.AmountMYRAdjusted
	}
	if req.ReceivedDate != nil {
		po.ReceivedDate = *req.ReceivedDate
	}
	po.LastUpdatedAt = time.Now()
	po.LastUpdatedBy = updaterID

	if err := s.poRepo.UpdatePurchaseOrder(ctx, *po); err != nil {
		s.LogError(ctx, err, "Failed to update purchase order", "po_id", poID)
		return nil, fmt.Errorf("failed to update purchase order in service: %w", err)
	}

	return po, nil
}

// DeactivatePurchaseOrder soft-deletes a PO. The record stays for audit but
// drops out of every aggregation.
func (s *PurchaseOrderService) DeactivatePurchaseOrder(ctx context.Context, poID string, updaterID string) error {
	if _, err := s.poRepo.FindPurchaseOrderByID(ctx, poID); err != nil {
		return fmt.Errorf("failed to find purchase order for deactivation: %w", err)
	}

	if err := s.poRepo.DeactivatePurchaseOrder(ctx, poID, updaterID); err != nil {
		s.LogError(ctx, err, "Failed to deactivate purchase order", "po_id", poID)
		return fmt.Errorf("failed to deactivate purchase order in service: %w", err)
	}
	return nil
}
