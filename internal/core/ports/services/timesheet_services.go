package services

import (
	"context"
	"time"

	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/dto"
)

// TimesheetSvcFacade defines the timesheet service surface.
type TimesheetSvcFacade interface {
	LogTimesheet(ctx context.Context, req dto.CreateTimesheetRequest, creatorID string) (*domain.Timesheet, error)
	ListTimesheets(ctx context.Context, from, to *time.Time) ([]domain.Timesheet, error)
	ListTimesheetsByProject(ctx context.Context, projectID string) ([]domain.Timesheet, error)
	DeleteTimesheet(ctx context.Context, timesheetID string) error
}
