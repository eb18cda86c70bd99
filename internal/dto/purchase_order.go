package dto

import (
	"time"

	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseOrderRequest defines the payload for recording a received PO.
// CustomRate, when present, is used verbatim for the MYR conversion instead
// of the live conversion service.
type CreatePurchaseOrderRequest struct {
	PONumber          string           `json:"poNumber" binding:"required"`
	ProjectCode       string           `json:"projectCode" binding:"required,projectcode"`
	Amount            decimal.Decimal  `json:"amount" binding:"required"`
	CurrencyCode      string           `json:"currencyCode" binding:"required,len=3,uppercase"`
	CustomRate        *decimal.Decimal `json:"customRate,omitempty"`
	AmountMYRAdjusted *decimal.Decimal `json:"amountMYRAdjusted,omitempty"`
	ReceivedDate      time.Time        `json:"receivedDate" binding:"required"`
}

// UpdatePurchaseOrderRequest defines the payload for adjusting a PO.
type UpdatePurchaseOrderRequest struct {
	PONumber          *string          `json:"poNumber,omitempty"`
	AmountMYRAdjusted *decimal.Decimal `json:"amountMYRAdjusted,omitempty"`
	ReceivedDate      *time.Time       `json:"receivedDate,omitempty"`
}

// PurchaseOrderResponse defines the structure for API responses containing PO details.
type PurchaseOrderResponse struct {
	POID              string           `json:"poID"`
	PONumber          string           `json:"poNumber"`
	ProjectCode       string           `json:"projectCode"`
	Amount            decimal.Decimal  `json:"amount"`
	CurrencyCode      string           `json:"currencyCode"`
	ExchangeRate      decimal.Decimal  `json:"exchangeRate"`
	AmountMYR         decimal.Decimal  `json:"amountMYR"`
	AmountMYRAdjusted *decimal.Decimal `json:"amountMYRAdjusted,omitempty"`
	EffectiveMYR      decimal.Decimal  `json:"effectiveMYR"`
	IsActive          bool             `json:"isActive"`
	ReceivedDate      time.Time        `json:"receivedDate"`
	CreatedAt         time.Time        `json:"createdAt"`
}

// ToPurchaseOrderResponse converts a domain.PurchaseOrder to its response DTO
func ToPurchaseOrderResponse(po *domain.PurchaseOrder) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		POID:              po.POID,
		PONumber:          po.PONumber,
		ProjectCode:       po.ProjectCode,
		Amount:            po.Amount,
		CurrencyCode:      po.CurrencyCode,
		ExchangeRate:      po.ExchangeRate,
		AmountMYR:         po.AmountMYR,
		AmountMYRAdjusted: po.AmountMYRAdjusted,
		EffectiveMYR:      po.EffectiveAmountMYR(),
		IsActive:          po.IsActive,
		ReceivedDate:      po.ReceivedDate,
		CreatedAt:         po.CreatedAt,
	}
}

// ToListPurchaseOrderResponse converts a slice of domain POs to response DTOs.
func ToListPurchaseOrderResponse(pos []domain.PurchaseOrder) []PurchaseOrderResponse {
	responses := make([]PurchaseOrderResponse, len(pos))
	for i := range pos {
		responses[i] = ToPurchaseOrderResponse(&pos[i])
	}
	return responses
}
