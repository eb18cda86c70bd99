package repositories

import (
	"context"

	"github.com/juruweb/epms_backend/internal/core/domain"
)

// ProjectReader defines read operations for project data
type ProjectReader interface {
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	FindProjectByCode(ctx context.Context, projectCode string) (*domain.Project, error)
	// ListProjects returns projects ordered by project code, using an
	// opaque pagination token over (project_code).
	ListProjects(ctx context.Context, limit int, nextToken *string) ([]domain.Project, *string, error)
	// ListChildProjects returns the direct children of a parent project
	// (variation orders or structure children).
	ListChildProjects(ctx context.Context, parentProjectID string) ([]domain.Project, error)
}

// ProjectWriter defines write operations for project data
type ProjectWriter interface {
	SaveProject(ctx context.Context, project domain.Project) error
	UpdateProject(ctx context.Context, project domain.Project) error
	DeleteProject(ctx context.Context, projectID string) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
