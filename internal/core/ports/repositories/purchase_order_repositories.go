package repositories

import (
	"context"

	"github.com/juruweb/epms_backend/internal/core/domain"
)

// PurchaseOrderReader defines read operations for purchase order data
type PurchaseOrderReader interface {
	FindPurchaseOrderByID(ctx context.Context, poID string) (*domain.PurchaseOrder, error)
	// ListPurchaseOrders returns POs, active-only unless includeInactive.
	ListPurchaseOrders(ctx context.Context, includeInactive bool) ([]domain.PurchaseOrder, error)
	// ListPurchaseOrdersByProjectCode returns active POs for one project code.
	ListPurchaseOrdersByProjectCode(ctx context.Context, projectCode string) ([]domain.PurchaseOrder, error)
}

// PurchaseOrderWriter defines write operations for purchase order data
type PurchaseOrderWriter interface {
	SavePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) error
	UpdatePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) error
	// DeactivatePurchaseOrder soft-deletes a PO by clearing is_active.
	DeactivatePurchaseOrder(ctx context.Context, poID string, updaterID string) error
}

// PurchaseOrderRepositoryFacade combines all PO-related repository interfaces
type PurchaseOrderRepositoryFacade interface {
	PurchaseOrderReader
	PurchaseOrderWriter
}
