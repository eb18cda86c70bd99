package services

import (
	"context"

	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/dto"
)

// ProjectReaderSvc defines read operations on projects
type ProjectReaderSvc interface {
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	// ListProjects returns a page of projects. Structure containers come
	// back with their derived status and summed hours.
	ListProjects(ctx context.Context, limit int, nextToken *string) ([]domain.Project, *string, error)
	// ListVariationOrders returns the variation orders of a parent project.
	ListVariationOrders(ctx context.Context, parentProjectID string) ([]domain.Project, error)
}

// ProjectWriterSvc defines write operations on projects
type ProjectWriterSvc interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorID string) (*domain.Project, error)
	UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, updaterID string) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
}

// ProjectSvcFacade combines all project service interfaces
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
}
