package models

import "github.com/shopspring/decimal"

// TeamMember represents a row in the team_members table.
type TeamMember struct {
	TeamMemberID string           `json:"teamMemberID"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Role         string           `json:"role"`
	HourlyRate   *decimal.Decimal `json:"hourlyRate"`
	PasswordHash string           `json:"-"`
	AuditFields
}

// ProjectRate represents a row in the project_rates table, keyed by
// (project_id, team_member_id).
type ProjectRate struct {
	ProjectID    string          `json:"projectID"`
	TeamMemberID string          `json:"teamMemberID"`
	HourlyRate   decimal.Decimal `json:"hourlyRate"`
	AuditFields
}
