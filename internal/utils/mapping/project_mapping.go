package mapping

import (
	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/models"
)

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:       d.ProjectID,
		ProjectCode:     d.ProjectCode,
		Title:           d.Title,
		ClientName:      d.ClientName,
		Status:          string(d.Status),
		BillingType:     string(d.BillingType),
		ProjectType:     string(d.ProjectType),
		ParentProjectID: d.ParentProjectID,
		PlannedHours:    d.PlannedHours,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:       m.ProjectID,
		ProjectCode:     m.ProjectCode,
		Title:           m.Title,
		ClientName:      m.ClientName,
		Status:          domain.ProjectStatus(m.Status),
		BillingType:     domain.BillingType(m.BillingType),
		ProjectType:     domain.ProjectType(m.ProjectType),
		ParentProjectID: m.ParentProjectID,
		PlannedHours:    m.PlannedHours,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
