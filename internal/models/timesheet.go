package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Timesheet represents a row in the timesheets table.
type Timesheet struct {
	TimesheetID string          `json:"timesheetID"`
	EngineerID  string          `json:"engineerID"`
	ProjectID   string          `json:"projectID"`
	Hours       decimal.Decimal `json:"hours"`
	WorkDate    time.Time       `json:"workDate"`
	AuditFields
}
