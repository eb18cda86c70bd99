package dto

import (
	"time"

	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the payload for issuing an invoice.
type CreateInvoiceRequest struct {
	InvoiceNumber    string           `json:"invoiceNumber" binding:"required"`
	ProjectCode      string           `json:"projectCode" binding:"required,projectcode"`
	Amount           decimal.Decimal  `json:"amount" binding:"required"`
	CurrencyCode     string           `json:"currencyCode" binding:"required,len=3,uppercase"`
	CustomRate       *decimal.Decimal `json:"customRate,omitempty"`
	PercentOfProject decimal.Decimal  `json:"percentOfProject"`
	IssueDate        time.Time        `json:"issueDate" binding:"required"`
}

// InvoiceResponse defines the structure for API responses containing invoice details.
type InvoiceResponse struct {
	InvoiceID        string          `json:"invoiceID"`
	InvoiceNumber    string          `json:"invoiceNumber"`
	ProjectCode      string          `json:"projectCode"`
	Amount           decimal.Decimal `json:"amount"`
	CurrencyCode     string          `json:"currencyCode"`
	AmountMYR        decimal.Decimal `json:"amountMYR"`
	PercentOfProject decimal.Decimal `json:"percentOfProject"`
	Status           string          `json:"status"`
	IssueDate        time.Time       `json:"issueDate"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToInvoiceResponse converts a domain.Invoice to its response DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:        inv.InvoiceID,
		InvoiceNumber:    inv.InvoiceNumber,
		ProjectCode:      inv.ProjectCode,
		Amount:           inv.Amount,
		CurrencyCode:     inv.CurrencyCode,
		AmountMYR:        inv.AmountMYR,
		PercentOfProject: inv.PercentOfProject,
		Status:           string(inv.Status),
		IssueDate:        inv.IssueDate,
		CreatedAt:        inv.CreatedAt,
	}
}

// ToListInvoiceResponse converts a slice of domain invoices to response DTOs.
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}
