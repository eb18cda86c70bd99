package mapping

import (
	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/models"
)

// ToModelTimesheet converts a domain Timesheet to a model Timesheet
func ToModelTimesheet(d domain.Timesheet) models.Timesheet {
	return models.Timesheet{
		TimesheetID: d.TimesheetID,
		EngineerID:  d.EngineerID,
		ProjectID:   d.ProjectID,
		Hours:       d.Hours,
		WorkDate:    d.WorkDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTimesheet converts a model Timesheet to a domain Timesheet
func ToDomainTimesheet(m models.Timesheet) domain.Timesheet {
	return domain.Timesheet{
		TimesheetID: m.TimesheetID,
		EngineerID:  m.EngineerID,
		ProjectID:   m.ProjectID,
		Hours:       m.Hours,
		WorkDate:    m.WorkDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
