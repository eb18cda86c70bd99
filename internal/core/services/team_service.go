package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/juruweb/epms_backend/internal/apperrors"
	"github.com/juruweb/epms_backend/internal/core/domain"
	portsrepo "github.com/juruweb/epms_backend/internal/core/ports/repositories"
	"github.com/juruweb/epms_backend/internal/dto"
	"github.com/juruweb/epms_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TeamService provides business logic for team members and the per-project
// hourly rate overrides used by profitability analysis.
type TeamService struct {
	BaseService
	teamRepo        portsrepo.TeamMemberRepositoryFacade
	projectRateRepo portsrepo.ProjectRateRepositoryFacade
	projectRepo     portsrepo.ProjectRepositoryFacade
}

// NewTeamService creates a new TeamService.
func NewTeamService(teamRepo portsrepo.TeamMemberRepositoryFacade, projectRateRepo portsrepo.ProjectRateRepositoryFacade, projectRepo portsrepo.ProjectRepositoryFacade) *TeamService {
	return &TeamService{teamRepo: teamRepo, projectRateRepo: projectRateRepo, projectRepo: projectRepo}
}

// CreateTeamMember adds a new member with a hashed password.
func (s *TeamService) CreateTeamMember(ctx context.Context, req dto.CreateTeamMemberRequest, creatorID string) (*domain.TeamMember, error) {
	if req.HourlyRate != nil && req.HourlyRate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: hourly rate must be positive", apperrors.ErrValidation)
	}

	existing, err := s.teamRepo.FindTeamMemberByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing member: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email %q is already registered", apperrors.ErrDuplicate, req.Email)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	member := domain.TeamMember{
		TeamMemberID: uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		HourlyRate:   req.HourlyRate,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.teamRepo.SaveTeamMember(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to save team member", "email", req.Email)
		return nil, fmt.Errorf("failed to create team member in service: %w", err)
	}

	return &member, nil
}

// GetTeamMemberByID retrieves a single member.
func (s *TeamService) GetTeamMemberByID(ctx context.Context, teamMemberID string) (*domain.TeamMember, error) {
	member, err := s.teamRepo.FindTeamMemberByID(ctx, teamMemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team member in service: %w", err)
	}
	return member, nil
}

// ListTeamMembers returns all members.
func (s *TeamService) ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	members, err := s.teamRepo.ListTeamMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members in service: %w", err)
	}
	return members, nil
}

// UpdateTeamMember applies the non-nil fields of req to a member.
func (s *TeamService) UpdateTeamMember(ctx context.Context, teamMemberID string, req dto.UpdateTeamMemberRequest, updaterID string) (*domain.TeamMember, error) {
	member, err := s.teamRepo.FindTeamMemberByID(ctx, teamMemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to find team member for update: %w", err)
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Role != nil {
		member.Role = *req.Role
	}
	if req.HourlyRate != nil {
		if req.HourlyRate.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: hourly rate must be positive", apperrors.ErrValidation)
		}
		member.HourlyRate = req.HourlyRate
	}
	member.LastUpdatedAt = time.Now()
	member.LastUpdatedBy = updaterID

	if err := s.teamRepo.UpdateTeamMember(ctx, *member); err != nil {
		s.LogError(ctx, err, "Failed to update team member", "team_member_id", teamMemberID)
		return nil, fmt.Errorf("failed to update team member in service: %w", err)
	}

	return member, nil
}

// ListProjectRates returns the rate overrides for a project.
func (s *TeamService) ListProjectRates(ctx context.Context, projectID string) ([]domain.ProjectRate, error) {
	rates, err := s.projectRateRepo.ListProjectRates(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project rates in service: %w", err)
	}
	return rates, nil
}

// SetProjectRate upserts a per-project, per-engineer hourly rate override.
func (s *TeamService) SetProjectRate(ctx context.Context, req dto.SetProjectRateRequest, updaterID string) (*domain.ProjectRate, error) {
	if req.HourlyRate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: hourly rate must be positive", apperrors.ErrValidation)
	}
	if _, err := s.projectRepo.FindProjectByID(ctx, req.ProjectID); err != nil {
		return nil, fmt.Errorf("%w: project %q not found", apperrors.ErrValidation, req.ProjectID)
	}
	if _, err := s.teamRepo.FindTeamMemberByID(ctx, req.TeamMemberID); err != nil {
		return nil, fmt.Errorf("%w: team member %q not found", apperrors.ErrValidation, req.TeamMemberID)
	}

	now := time.Now()
	rate := domain.ProjectRate{
		ProjectID:    req.ProjectID,
		TeamMemberID: req.TeamMemberID,
		HourlyRate:   req.HourlyRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     updaterID,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterID,
		},
	}

	if err := s.projectRateRepo.UpsertProjectRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to upsert project rate", "project_id", req.ProjectID, "team_member_id", req.TeamMemberID)
		return nil, fmt.Errorf("failed to set project rate in service: %w", err)
	}

	return &rate, nil
}
