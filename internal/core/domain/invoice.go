package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the billing state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "draft"
	InvoiceSent  InvoiceStatus = "sent"
	InvoicePaid  InvoiceStatus = "paid"
)

// Invoice is a claim issued against a project. PercentOfProject records how
// much of the total project value this invoice represents; for non-lump-sum
// projects the sum across a project's invoices may not exceed 100, enforced
// at entry time only.
type Invoice struct {
	InvoiceID        string          `json:"invoiceID"`
	InvoiceNumber    string          `json:"invoiceNumber"`
	ProjectCode      string          `json:"projectCode"`
	Amount           decimal.Decimal `json:"amount"`
	CurrencyCode     string          `json:"currencyCode"`
	AmountMYR        decimal.Decimal `json:"amountMYR"`
	PercentOfProject decimal.Decimal `json:"percentOfProject"`
	Status           InvoiceStatus   `json:"status"`
	IssueDate        time.Time       `json:"issueDate"`
	AuditFields
}
