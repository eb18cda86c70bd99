package mapping

import (
	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:        d.InvoiceID,
		InvoiceNumber:    d.InvoiceNumber,
		ProjectCode:      d.ProjectCode,
		Amount:           d.Amount,
		CurrencyCode:     d.CurrencyCode,
		AmountMYR:        d.AmountMYR,
		PercentOfProject: d.PercentOfProject,
		Status:           string(d.Status),
		IssueDate:        d.IssueDate,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:        m.InvoiceID,
		InvoiceNumber:    m.InvoiceNumber,
		ProjectCode:      m.ProjectCode,
		Amount:           m.Amount,
		CurrencyCode:     m.CurrencyCode,
		AmountMYR:        m.AmountMYR,
		PercentOfProject: m.PercentOfProject,
		Status:           domain.InvoiceStatus(m.Status),
		IssueDate:        m.IssueDate,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
