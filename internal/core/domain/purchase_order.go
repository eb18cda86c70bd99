package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder is a PO received from a client against a project.
// Amounts are kept in the original currency alongside the MYR conversion.
// AmountMYRAdjusted, when present, is a manual correction that overrides the
// computed conversion for all downstream aggregation.
type PurchaseOrder struct {
	POID              string           `json:"poID"`
	PONumber          string           `json:"poNumber"`
	ProjectCode       string           `json:"projectCode"`
	Amount            decimal.Decimal  `json:"amount"`
	CurrencyCode      string           `json:"currencyCode"`
	ExchangeRate      decimal.Decimal  `json:"exchangeRate"`
	AmountMYR         decimal.Decimal  `json:"amountMYR"`
	AmountMYRAdjusted *decimal.Decimal `json:"amountMYRAdjusted,omitempty"`
	IsActive          bool             `json:"isActive"`
	ReceivedDate      time.Time        `json:"receivedDate"`
	AuditFields
}

// EffectiveAmountMYR returns the MYR amount used by the finance layer:
// the manual adjustment when present, otherwise the converted amount.
func (po PurchaseOrder) EffectiveAmountMYR() decimal.Decimal {
	if po.AmountMYRAdjusted != nil {
		return *po.AmountMYRAdjusted
	}
	return po.AmountMYR
}
