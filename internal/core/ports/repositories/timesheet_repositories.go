package repositories

import (
	"context"
	"time"

	"github.com/juruweb/epms_backend/internal/core/domain"
)

// TimesheetReader defines read operations for timesheet data
type TimesheetReader interface {
	ListTimesheets(ctx context.Context, from, to *time.Time) ([]domain.Timesheet, error)
	ListTimesheetsByProjectID(ctx context.Context, projectID string) ([]domain.Timesheet, error)
	ListTimesheetsByEngineerID(ctx context.Context, engineerID string) ([]domain.Timesheet, error)
}

// TimesheetWriter defines write operations for timesheet data
type TimesheetWriter interface {
	SaveTimesheet(ctx context.Context, ts domain.Timesheet) error
	DeleteTimesheet(ctx context.Context, timesheetID string) error
}

// TimesheetRepositoryFacade combines all timesheet-related repository interfaces
type TimesheetRepositoryFacade interface {
	TimesheetReader
	TimesheetWriter
}
