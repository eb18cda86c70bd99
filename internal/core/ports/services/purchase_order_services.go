package services

import (
	"context"

	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/dto"
)

// PurchaseOrderSvcFacade defines the purchase order service surface.
type PurchaseOrderSvcFacade interface {
	CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest, creatorID string) (*domain.PurchaseOrder, error)
	GetPurchaseOrderByID(ctx context.Context, poID string) (*domain.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, includeInactive bool) ([]domain.PurchaseOrder, error)
	UpdatePurchaseOrder(ctx context.Context, poID string, req dto.UpdatePurchaseOrderRequest, updaterID string) (*domain.PurchaseOrder, error)
	// DeactivatePurchaseOrder soft-deletes; the record stays for audit but
	// drops out of every aggregation.
	DeactivatePurchaseOrder(ctx context.Context, poID string, updaterID string) error
}
