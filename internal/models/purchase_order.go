package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder represents a row in the purchase_orders table.
// Soft-deleted rows keep their data with is_active = false.
type PurchaseOrder struct {
	POID              string           `json:"poID"`
	PONumber          string           `json:"poNumber"`
	ProjectCode       string           `json:"projectCode"`
	Amount            decimal.Decimal  `json:"amount"`
	CurrencyCode      string           `json:"currencyCode"`
	ExchangeRate      decimal.Decimal  `json:"exchangeRate"`
	AmountMYR         decimal.Decimal  `json:"amountMYR"`
	AmountMYRAdjusted *decimal.Decimal `json:"amountMYRAdjusted"`
	IsActive          bool             `json:"isActive"`
	ReceivedDate      time.Time        `json:"receivedDate"`
	AuditFields
}
