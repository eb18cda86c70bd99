package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSource records where an exchange rate came from.
type RateSource string

const (
	RateSourceManual RateSource = "manual"
	RateSourceAPI    RateSource = "api"
)

// ExchangeRate stores the conversion rate between two currencies for a
// specific date. Rates are immutable once recorded for a given date.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"` // defaults to MYR
	Rate             decimal.Decimal `json:"rate"`           // NUMERIC(18,6)
	DateEffective    time.Time       `json:"dateEffective"`
	Source           RateSource      `json:"source"`
	AuditFields
}
