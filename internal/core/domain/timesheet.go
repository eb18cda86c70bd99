package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Timesheet is a single day's logged hours by one engineer on one project.
// The finance layer only ever reads these.
type Timesheet struct {
	TimesheetID string          `json:"timesheetID"`
	EngineerID  string          `json:"engineerID"` // TeamMemberID reference
	ProjectID   string          `json:"projectID"`
	Hours       decimal.Decimal `json:"hours"`
	WorkDate    time.Time       `json:"workDate"`
	AuditFields
}
