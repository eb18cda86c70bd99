package mapping

import (
	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/models"
)

// ToModelTeamMember converts a domain TeamMember to a model TeamMember
func ToModelTeamMember(d domain.TeamMember) models.TeamMember {
	return models.TeamMember{
		TeamMemberID: d.TeamMemberID,
		Name:         d.Name,
		Email:        d.Email,
		Role:         d.Role,
		HourlyRate:   d.HourlyRate,
		PasswordHash: d.PasswordHash,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTeamMember converts a model TeamMember to a domain TeamMember
func ToDomainTeamMember(m models.TeamMember) domain.TeamMember {
	return domain.TeamMember{
		TeamMemberID: m.TeamMemberID,
		Name:         m.Name,
		Email:        m.Email,
		Role:         m.Role,
		HourlyRate:   m.HourlyRate,
		PasswordHash: m.PasswordHash,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProjectRate converts a model ProjectRate to a domain ProjectRate
func ToDomainProjectRate(m models.ProjectRate) domain.ProjectRate {
	return domain.ProjectRate{
		ProjectID:    m.ProjectID,
		TeamMemberID: m.TeamMemberID,
		HourlyRate:   m.HourlyRate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelProjectRate converts a domain ProjectRate to a model ProjectRate
func ToModelProjectRate(d domain.ProjectRate) models.ProjectRate {
	return models.ProjectRate{
		ProjectID:    d.ProjectID,
		TeamMemberID: d.TeamMemberID,
		HourlyRate:   d.HourlyRate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}
