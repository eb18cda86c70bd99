package pgsql

import (
	"context"
	"errors"

	"github.com/juruweb/epms_backend/internal/apperrors"
	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/models"
	"github.com/juruweb/epms_backend/internal/utils/mapping"
	"github.com/juruweb/epms_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxProjectRepository implements the project repository facade using pgxpool.
type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(db *pgxpool.Pool) *PgxProjectRepository {
	return &PgxProjectRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const projectColumns = `
	project_id, project_code, title, client_name, status, billing_type,
	project_type, parent_project_id, planned_hours,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanProject(row pgx.Row) (*models.Project, error) {
	var m models.Project
	err := row.Scan(
		&m.ProjectID, &m.ProjectCode, &m.Title, &m.ClientName, &m.Status,
		&m.BillingType, &m.ProjectType, &m.ParentProjectID, &m.PlannedHours,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindProjectByID retrieves a project by its ID.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1;`

	m, err := scanProject(r.Pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("project with ID " + projectID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get project by ID", err)
	}

	project := mapping.ToDomainProject(*m)
	return &project, nil
}

// FindProjectByCode retrieves a project by its unique J-number code.
func (r *PgxProjectRepository) FindProjectByCode(ctx context.Context, projectCode string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_code = $1;`

	m, err := scanProject(r.Pool.QueryRow(ctx, query, projectCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("project with code " + projectCode + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get project by code", err)
	}

	project := mapping.ToDomainProject(*m)
	return &project, nil
}

// ListProjects returns a page of projects ordered by project code, with an
// opaque continuation token.
func (r *PgxProjectRepository) ListProjects(ctx context.Context, limit int, nextToken *string) ([]domain.Project, *string, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	args := []interface{}{}

	if nextToken != nil {
		fields, err := pagination.DecodeMultiFieldToken(*nextToken)
		if err != nil || len(fields) != 1 {
			return nil, nil, apperrors.NewValidationError("invalid pagination token")
		}
		query += ` WHERE project_code > $1`
		args = append(args, fields[0])
	}

	// Fetch one extra row to decide whether another page exists.
	query += ` ORDER BY project_code LIMIT $` + itoa(len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list projects", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		m, err := scanProject(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan project", err)
		}
		projects = append(projects, mapping.ToDomainProject(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating projects", err)
	}

	var next *string
	if len(projects) > limit {
		projects = projects[:limit]
		token := pagination.EncodeMultiFieldToken(projects[limit-1].ProjectCode)
		next = &token
	}

	return projects, next, nil
}

// ListChildProjects returns the direct children of a parent project.
func (r *PgxProjectRepository) ListChildProjects(ctx context.Context, parentProjectID string) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE parent_project_id = $1 ORDER BY project_code;`

	rows, err := r.Pool.Query(ctx, query, parentProjectID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list child projects", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		m, err := scanProject(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan child project", err)
		}
		projects = append(projects, mapping.ToDomainProject(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating child projects", err)
	}

	return projects, nil
}

// SaveProject inserts a new project.
func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO projects (
			project_id, project_code, title, client_name, status, billing_type,
			project_type, parent_project_id, planned_hours,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		m.ProjectID, m.ProjectCode, m.Title, m.ClientName, m.Status, m.BillingType,
		m.ProjectType, m.ParentProjectID, m.PlannedHours,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "project code already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save project", err)
	}
	return nil
}

// UpdateProject updates the mutable columns of a project.
func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)

	tag, err := r.Pool.Exec(ctx, `
		UPDATE projects
		SET title = $1, client_name = $2, status = $3, billing_type = $4,
			planned_hours = $5, last_updated_at = $6, last_updated_by = $7
		WHERE project_id = $8`,
		m.Title, m.ClientName, m.Status, m.BillingType,
		m.PlannedHours, m.LastUpdatedAt, m.LastUpdatedBy, m.ProjectID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update project", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("project with ID " + m.ProjectID + " not found")
	}
	return nil
}

// DeleteProject removes a project row.
func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM projects WHERE project_id = $1`, projectID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete project", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("project with ID " + projectID + " not found")
	}
	return nil
}
