package domain

import "github.com/shopspring/decimal"

// BaseCurrencyCode is the currency every amount is normalized into.
const BaseCurrencyCode = "MYR"

var (
	// FixedHourlyRate is the single global labour rate used by the cash
	// overview: RM 3500 per day over an 8 hour day.
	FixedHourlyRate = decimal.RequireFromString("437.5")

	// DefaultHourlyRate is the last-resort rate used by profitability
	// analysis when neither a project override nor a personal rate exists.
	DefaultHourlyRate = decimal.NewFromInt(75)
)

// ConversionSource names where a normalized amount's rate came from, so
// callers can tell "rate really is 1.0" apart from "rate service was
// unreachable".
type ConversionSource string

const (
	ConversionBase     ConversionSource = "base"     // amount already in MYR
	ConversionManual   ConversionSource = "manual"   // caller-supplied rate used verbatim
	ConversionFetched  ConversionSource = "fetched"  // live rate from the conversion service
	ConversionFallback ConversionSource = "fallback" // service unreachable, rate forced to 1.0
)

// ConversionResult is the output of the currency normalizer.
type ConversionResult struct {
	Rate      decimal.Decimal  `json:"rate"`
	Converted decimal.Decimal  `json:"converted"` // MYR equivalent
	Source    ConversionSource `json:"source"`
}

// CurrencyAmount is one original-currency line retained for multi-currency
// display alongside its MYR conversion.
type CurrencyAmount struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	AmountMYR    decimal.Decimal `json:"amountMYR"`
}

// EngineerCost is a derived per-engineer, per-project cost line. It is
// recomputed on every aggregation pass and never persisted.
type EngineerCost struct {
	EngineerID string          `json:"engineerID"`
	Hours      decimal.Decimal `json:"hours"`
	Rate       decimal.Decimal `json:"rate"`
	Cost       decimal.Decimal `json:"cost"`
}

// ProjectFinanceSummary is the one-per-project record produced by the
// finance aggregator. A project with no matching records is a valid zero
// summary, not an error.
type ProjectFinanceSummary struct {
	ProjectID          string           `json:"projectID"`
	ProjectCode        string           `json:"projectCode"`
	ProjectTitle       string           `json:"projectTitle"`
	ClientName         string           `json:"clientName"`
	Status             ProjectStatus    `json:"status"`
	POReceived         decimal.Decimal  `json:"poReceived"`
	Invoiced           decimal.Decimal  `json:"invoiced"`
	Outstanding        decimal.Decimal  `json:"outstanding"` // may be negative (over-invoiced)
	POReceivedOriginal []CurrencyAmount `json:"poReceivedOriginal"`
	InvoicedOriginal   []CurrencyAmount `json:"invoicedOriginal"`
	ManHourCost        decimal.Decimal  `json:"manHourCost"`
	ActualHours        decimal.Decimal  `json:"actualHours"`
	EngineerBreakdown  []EngineerCost   `json:"engineerBreakdown"`
}

// FinanceTotals are the portfolio-wide sums over all project summaries.
// Outstanding is recomputed from the totals rather than summed from the
// per-project outstanding figures; the two are equivalent and tests hold
// both paths to that.
type FinanceTotals struct {
	POReceived           decimal.Decimal            `json:"poReceived"`
	Invoiced             decimal.Decimal            `json:"invoiced"`
	Outstanding          decimal.Decimal            `json:"outstanding"`
	ManHourCost          decimal.Decimal            `json:"manHourCost"`
	POReceivedByCurrency map[string]decimal.Decimal `json:"poReceivedByCurrency"`
	InvoicedByCurrency   map[string]decimal.Decimal `json:"invoicedByCurrency"`
}

// FinanceOverview is the full output of one aggregation pass.
type FinanceOverview struct {
	ProjectSummaries []ProjectFinanceSummary `json:"projectSummaries"`
	Totals           FinanceTotals           `json:"totals"`
}

// ProjectProfitability is the profit-oriented view of a single project,
// costed with per-project/per-engineer custom rates. Deliberately a
// different rate policy from the cash overview.
type ProjectProfitability struct {
	ProjectID         string          `json:"projectID"`
	ProjectCode       string          `json:"projectCode"`
	ProjectTitle      string          `json:"projectTitle"`
	Revenue           decimal.Decimal `json:"revenue"` // invoiced MYR
	LabourCost        decimal.Decimal `json:"labourCost"`
	Profit            decimal.Decimal `json:"profit"`
	MarginPercent     decimal.Decimal `json:"marginPercent"`
	EngineerBreakdown []EngineerCost  `json:"engineerBreakdown"`
}
