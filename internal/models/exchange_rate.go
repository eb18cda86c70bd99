package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores the conversion rate between two currencies for a specific date.
// Note: Rate should use a precise decimal type like github.com/shopspring/decimal
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`   // Primary Key (e.g., UUID)
	FromCurrencyCode string          `json:"fromCurrencyCode"` // ISO-4217-like code
	ToCurrencyCode   string          `json:"toCurrencyCode"`   // defaults to MYR
	Rate             decimal.Decimal `json:"rate"`             // NUMERIC(18,6)
	DateEffective    time.Time       `json:"dateEffective"`
	Source           string          `json:"source"` // manual | api
	AuditFields
}
