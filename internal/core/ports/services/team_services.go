package services

import (
	"context"

	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/dto"
)

// TeamSvcFacade defines the team member and project rate service surface.
type TeamSvcFacade interface {
	CreateTeamMember(ctx context.Context, req dto.CreateTeamMemberRequest, creatorID string) (*domain.TeamMember, error)
	GetTeamMemberByID(ctx context.Context, teamMemberID string) (*domain.TeamMember, error)
	ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error)
	UpdateTeamMember(ctx context.Context, teamMemberID string, req dto.UpdateTeamMemberRequest, updaterID string) (*domain.TeamMember, error)

	// Per-project hourly rate overrides, used by profitability only.
	ListProjectRates(ctx context.Context, projectID string) ([]domain.ProjectRate, error)
	SetProjectRate(ctx context.Context, req dto.SetProjectRateRequest, updaterID string) (*domain.ProjectRate, error)
}
