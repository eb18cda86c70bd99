package dto

import (
	"time"

	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTimesheetRequest defines the payload for logging hours.
type CreateTimesheetRequest struct {
	EngineerID string          `json:"engineerID" binding:"required"`
	ProjectID  string          `json:"projectID" binding:"required"`
	Hours      decimal.Decimal `json:"hours" binding:"required"`
	WorkDate   time.Time       `json:"workDate" binding:"required"`
}

// TimesheetResponse defines the structure for API responses containing timesheet details.
type TimesheetResponse struct {
	TimesheetID string          `json:"timesheetID"`
	EngineerID  string          `json:"engineerID"`
	ProjectID   string          `json:"projectID"`
	Hours       decimal.Decimal `json:"hours"`
	WorkDate    time.Time       `json:"workDate"`
}

// ToTimesheetResponse converts a domain.Timesheet to its response DTO
func ToTimesheetResponse(ts *domain.Timesheet) TimesheetResponse {
	return TimesheetResponse{
		TimesheetID: ts.TimesheetID,
		EngineerID:  ts.EngineerID,
		ProjectID:   ts.ProjectID,
		Hours:       ts.Hours,
		WorkDate:    ts.WorkDate,
	}
}

// ToListTimesheetResponse converts a slice of domain timesheets to response DTOs.
func ToListTimesheetResponse(timesheets []domain.Timesheet) []TimesheetResponse {
	responses := make([]TimesheetResponse, len(timesheets))
	for i := range timesheets {
		responses[i] = ToTimesheetResponse(&timesheets[i])
	}
	return responses
}
