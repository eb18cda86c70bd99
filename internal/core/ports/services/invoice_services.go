package services

import (
	"context"

	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/dto"
)

// InvoiceSvcFacade defines the invoice service surface.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorID string) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updaterID string) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string) error
}
