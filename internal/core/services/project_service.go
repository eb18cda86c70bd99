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
)

// ProjectService provides business logic for projects, including the
// derived behavior of structure containers.
type ProjectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// CreateProject handles the creation of a new project.
func (s *ProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorID string) (*domain.Project, error) {
	if !domain.ValidProjectCode(req.ProjectCode) {
		return nil, fmt.Errorf("%w: project code %q does not follow the J-number format", apperrors.ErrValidation, req.ProjectCode)
	}

	if existing, err := s.projectRepo.FindProjectByCode(ctx, req.ProjectCode); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: project code %q already exists", apperrors.ErrDuplicate, req.ProjectCode)
	}

	projectType := domain.ProjectType(req.ProjectType)
	if projectType == "" {
		projectType = domain.TypeStandard
	}

	// Variation orders and structure children must hang off a parent.
	if projectType == domain.TypeVariationOrder || projectType == domain.TypeStructureChild {
		if req.ParentProjectID == nil || *req.ParentProjectID == "" {
			return nil, fmt.Errorf("%w: %s projects require a parentProjectID", apperrors.ErrValidation, projectType)
		}
		parent, err := s.projectRepo.FindProjectByID(ctx, *req.ParentProjectID)
		if err != nil {
			return nil, fmt.Errorf("%w: parent project %q not found", apperrors.ErrValidation, *req.ParentProjectID)
		}
		if projectType == domain.TypeStructureChild && !parent.IsContainer() {
			return nil, fmt.Errorf("%w: structure children require a structure_container parent", apperrors.ErrValidation)
		}
	} else if req.ParentProjectID != nil {
		return nil, fmt.Errorf("%w: %s projects cannot have a parent", apperrors.ErrValidation, projectType)
	}

	status := domain.ProjectStatus(req.Status)
	if status == "" {
		status = domain.StatusPreLim
	}
	// Containers never store their own status; it is derived from children.
	if projectType == domain.TypeStructureContainer {
		status = domain.StatusPreLim
	}

	now := time.Now()
	project := domain.Project{
		ProjectID:       uuid.NewString(),
		ProjectCode:     req.ProjectCode,
		Title:           req.Title,
		ClientName:      req.ClientName,
		Status:          status,
		BillingType:     domain.BillingType(req.BillingType),
		ProjectType:     projectType,
		ParentProjectID: req.ParentProjectID,
		PlannedHours:    req.PlannedHours,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", "project_code", req.ProjectCode)
		return nil, fmt.Errorf("failed to create project in service: %w", err)
	}

	return &project, nil
}

// GetProjectByID retrieves a project. Structure containers come back with
// derived status and summed planned hours.
func (s *ProjectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project in service: %w", err)
	}

	if project.IsContainer() {
		if err := s.applyContainerDerivation(ctx, project); err != nil {
			return nil, err
		}
	}

	return project, nil
}

// ListProjects returns a page of projects ordered by project code.
func (s *ProjectService) ListProjects(ctx context.Context, limit int, nextToken *string) ([]domain.Project, *string, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	projects, next, err := s.projectRepo.ListProjects(ctx, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list projects in service: %w", err)
	}

	for i := range projects {
		if projects[i].IsContainer() {
			if err := s.applyContainerDerivation(ctx, &projects[i]); err != nil {
				return nil, nil, err
			}
		}
	}

	return projects, next, nil
}

// ListVariationOrders returns the variation orders of a parent project.
func (s *ProjectService) ListVariationOrders(ctx context.Context, parentProjectID string) ([]domain.Project, error) {
	children, err := s.projectRepo.ListChildProjects(ctx, parentProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list variation orders in service: %w", err)
	}

	vos := make([]domain.Project, 0, len(children))
	for _, c := range children {
		if c.ProjectType == domain.TypeVariationOrder {
			vos = append(vos, c)
		}
	}
	return vos, nil
}

// UpdateProject applies the non-nil fields of req to a project.
func (s *ProjectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, updaterID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project for update: %w", err)
	}

	if req.Status != nil && project.IsContainer() {
		return nil, fmt.Errorf("%w: a structure container's status is derived from its children and cannot be set", apperrors.ErrValidation)
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.ClientName != nil {
		project.ClientName = *req.ClientName
	}
	if req.Status != nil {
		project.Status = domain.ProjectStatus(*req.Status)
	}
	if req.BillingType != nil {
		project.BillingType = domain.BillingType(*req.BillingType)
	}
	if req.PlannedHours != nil {
		project.PlannedHours = *req.PlannedHours
	}
	project.LastUpdatedAt = time.Now()
	project.LastUpdatedBy = updaterID

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", "project_id", projectID)
		return nil, fmt.Errorf("failed to update project in service: %w", err)
	}

	if project.IsContainer() {
		if err := s.applyContainerDerivation(ctx, project); err != nil {
			return nil, err
		}
	}

	return project, nil
}

// DeleteProject removes a project. Projects with children cannot be deleted.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID string) error {
	children, err := s.projectRepo.ListChildProjects(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to check child projects before delete: %w", err)
	}
	if len(children) > 0 {
		return fmt.Errorf("%w: project has %d child projects and cannot be deleted", apperrors.ErrValidation, len(children))
	}

	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		return fmt.Errorf("failed to delete project in service: %w", err)
	}
	return nil
}

// applyContainerDerivation replaces a container's stored status and hours
// with values derived from its structure children.
func (s *ProjectService) applyContainerDerivation(ctx context.Context, project *domain.Project) error {
	children, err := s.projectRepo.ListChildProjects(ctx, project.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to derive container status: %w", err)
	}
	project.Status = domain.DeriveStructureStatus(children)
	project.PlannedHours = domain.SumPlannedHours(children)
	return nil
}
