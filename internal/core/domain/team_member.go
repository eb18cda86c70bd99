package domain

import "github.com/shopspring/decimal"

// TeamMember is an engineer or manager in the company.
// HourlyRate is the member's personal rate used by profitability analysis
// when no per-project override exists; nil means no personal rate is set.
type TeamMember struct {
	TeamMemberID string           `json:"teamMemberID"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Role         string           `json:"role"`
	HourlyRate   *decimal.Decimal `json:"hourlyRate,omitempty"`
	PasswordHash string           `json:"-"`
	AuditFields
}

// ProjectRate is a per-project, per-engineer hourly rate override.
// This feeds the profitability view only, never the cash overview.
type ProjectRate struct {
	ProjectID    string          `json:"projectID"`
	TeamMemberID string          `json:"teamMemberID"`
	HourlyRate   decimal.Decimal `json:"hourlyRate"`
	AuditFields
}
