package repositories

import (
	"context"

	"github.com/juruweb/epms_backend/internal/core/domain"
)

// TeamMemberReader defines read operations for team member data
type TeamMemberReader interface {
	FindTeamMemberByID(ctx context.Context, teamMemberID string) (*domain.TeamMember, error)
	FindTeamMemberByEmail(ctx context.Context, email string) (*domain.TeamMember, error)
	ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error)
}

// TeamMemberWriter defines write operations for team member data
type TeamMemberWriter interface {
	SaveTeamMember(ctx context.Context, member domain.TeamMember) error
	UpdateTeamMember(ctx context.Context, member domain.TeamMember) error
}

// ProjectRateReader defines read operations for per-project hourly rate overrides
type ProjectRateReader interface {
	ListProjectRates(ctx context.Context, projectID string) ([]domain.ProjectRate, error)
}

// ProjectRateWriter defines write operations for per-project hourly rate overrides
type ProjectRateWriter interface {
	UpsertProjectRate(ctx context.Context, rate domain.ProjectRate) error
	DeleteProjectRate(ctx context.Context, projectID, teamMemberID string) error
}

// TeamMemberRepositoryFacade combines all team-member-related repository interfaces
type TeamMemberRepositoryFacade interface {
	TeamMemberReader
	TeamMemberWriter
}

// ProjectRateRepositoryFacade combines the project rate repository interfaces
type ProjectRateRepositoryFacade interface {
	ProjectRateReader
	ProjectRateWriter
}
