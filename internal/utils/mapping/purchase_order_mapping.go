package mapping

import (
	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/models"
)

// ToModelPurchaseOrder converts a domain PurchaseOrder to a model PurchaseOrder
func ToModelPurchaseOrder(d domain.PurchaseOrder) models.PurchaseOrder {
	return models.PurchaseOrder{
		POID:              d.POID,
		PONumber:          d.PONumber,
		ProjectCode:       d.ProjectCode,
		Amount:            d.Amount,
		CurrencyCode:      d.CurrencyCode,
		ExchangeRate:      d.ExchangeRate,
		AmountMYR:         d.AmountMYR,
		AmountMYRAdjusted: d.AmountMYRAdjusted,
		IsActive:          d.IsActive,
		ReceivedDate:      d.ReceivedDate,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchaseOrder converts a model PurchaseOrder to a domain PurchaseOrder
func ToDomainPurchaseOrder(m models.PurchaseOrder) domain.PurchaseOrder {
	return domain.PurchaseOrder{
		POID:              m.POID,
		PONumber:          m.PONumber,
		ProjectCode:       m.ProjectCode,
		Amount:            m.Amount,
		CurrencyCode:      m.CurrencyCode,
		ExchangeRate:      m.ExchangeRate,
		AmountMYR:         m.AmountMYR,
		AmountMYRAdjusted: m.AmountMYRAdjusted,
		IsActive:          m.IsActive,
		ReceivedDate:      m.ReceivedDate,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
