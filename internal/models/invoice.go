package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a row in the invoices table.
type Invoice struct {
	InvoiceID        string          `json:"invoiceID"`
	InvoiceNumber    string          `json:"invoiceNumber"`
	ProjectCode      string          `json:"projectCode"`
	Amount           decimal.Decimal `json:"amount"`
	CurrencyCode     string          `json:"currencyCode"`
	AmountMYR        decimal.Decimal `json:"amountMYR"`
	PercentOfProject decimal.Decimal `json:"percentOfProject"`
	Status           string          `json:"status"`
	IssueDate        time.Time       `json:"issueDate"`
	AuditFields
}
