package services

import (
	"context"
	"fmt"
	"time"

	"github.com/juruweb/epms_backend/internal/apperrors"
	"github.com/juruweb/epms_backend/internal/core/domain"
	portsrepo "github.com/juruweb/epms_backend/internal/core/ports/repositories"
	"github.com/juruweb/epms_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxDailyHours caps a single timesheet entry.
var maxDailyHours = decimal.NewFromInt(24)

// TimesheetService provides business logic for logged hours.
type TimesheetService struct {
	BaseService
	timesheetRepo portsrepo.TimesheetRepositoryFacade
	projectRepo   portsrepo.ProjectRepositoryFacade
	teamRepo      portsrepo.TeamMemberRepositoryFacade
}

// NewTimesheetService creates a new TimesheetService.
func NewTimesheetService(timesheetRepo portsrepo.TimesheetRepositoryFacade, projectRepo portsrepo.ProjectRepositoryFacade, teamRepo portsrepo.TeamMemberRepositoryFacade) *TimesheetService {
	return &TimesheetService{timesheetRepo: timesheetRepo, projectRepo: projectRepo, teamRepo: teamRepo}
}

// LogTimesheet records one engineer's hours on one project for one day.
func (s *TimesheetService) LogTimesheet(ctx context.Context, req dto.CreateTimesheetRequest, creatorID string) (*domain.Timesheet, error) {
	if req.Hours.LessThanOrEqual(decimal.Zero) || req.Hours.GreaterThan(maxDailyHours) {
		return nil, fmt.Errorf("%w: hours must be between 0 and 24", apperrors.ErrValidation)
	}

	project, err := s.projectRepo.FindProjectByID(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("%w: project %q not found", apperrors.ErrValidation, req.ProjectID)
	}
	// Containers carry no work of their own; hours go on the children.
	if project.IsContainer() {
		return nil, fmt.Errorf("%w: hours cannot be logged against a structure container", apperrors.ErrValidation)
	}

	if _, err := s.teamRepo.FindTeamMemberByID(ctx, req.EngineerID); err != nil {
		return nil, fmt.Errorf("%w: engineer %q not found", apperrors.ErrValidation, req.EngineerID)
	}

	now := time.Now()
	ts := domain.Timesheet{
		TimesheetID: uuid.NewString(),
		EngineerID:  req.EngineerID,
		ProjectID:   req.ProjectID,
		Hours:       req.Hours,
		WorkDate:    req.WorkDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.timesheetRepo.SaveTimesheet(ctx, ts); err != nil {
		s.LogError(ctx, err, "Failed to save timesheet", "engineer_id", req.EngineerID, "project_id", req.ProjectID)
		return nil, fmt.Errorf("failed to log timesheet in service: %w", err)
	}

	return &ts, nil
}

// ListTimesheets returns timesheets within an optional date window.
func (s *TimesheetService) ListTimesheets(ctx context.Context, from, to *time.Time) ([]domain.Timesheet, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, fmt.Errorf("%w: 'to' date is before 'from' date", apperrors.ErrValidation)
	}

	timesheets, err := s.timesheetRepo.ListTimesheets(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets in service: %w", err)
	}
	return timesheets, nil
}

// ListTimesheetsByProject returns all timesheets logged against a project.
func (s *TimesheetService) ListTimesheetsByProject(ctx context.Context, projectID string) ([]domain.Timesheet, error) {
	timesheets, err := s.timesheetRepo.ListTimesheetsByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project timesheets in service: %w", err)
	}
	return timesheets, nil
}

// DeleteTimesheet removes a timesheet entry.
func (s *TimesheetService) DeleteTimesheet(ctx context.Context, timesheetID string) error {
	if err := s.timesheetRepo.DeleteTimesheet(ctx, timesheetID); err != nil {
		return fmt.Errorf("failed to delete timesheet in service: %w", err)
	}
	return nil
}
