package pgsql

import (
	"context"
	"time"

	"github.com/juruweb/epms_backend/internal/apperrors"
	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/models"
	"github.com/juruweb/epms_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTimesheetRepository implements the timesheet repository facade using pgxpool.
type PgxTimesheetRepository struct {
	BaseRepository
}

func newPgxTimesheetRepository(db *pgxpool.Pool) *PgxTimesheetRepository {
	return &PgxTimesheetRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const timesheetColumns = `
	timesheet_id, engineer_id, project_id, hours, work_date,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanTimesheet(row pgx.Row) (*models.Timesheet, error) {
	var m models.Timesheet
	err := row.Scan(
		&m.TimesheetID, &m.EngineerID, &m.ProjectID, &m.Hours, &m.WorkDate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectTimesheets(rows pgx.Rows) ([]domain.Timesheet, error) {
	defer rows.Close()

	timesheets := []domain.Timesheet{}
	for rows.Next() {
		m, err := scanTimesheet(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan timesheet", err)
		}
		timesheets = append(timesheets, mapping.ToDomainTimesheet(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating timesheets", err)
	}
	return timesheets, nil
}

// ListTimesheets returns timesheet entries, optionally bounded by work date.
func (r *PgxTimesheetRepository) ListTimesheets(ctx context.Context, from, to *time.Time) ([]domain.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + ` FROM timesheets`
	args := []interface{}{}
	conditions := ""

	if from != nil {
		args = append(args, *from)
		conditions = ` WHERE work_date >= $` + itoa(len(args))
	}
	if to != nil {
		args = append(args, *to)
		if conditions == "" {
			conditions = ` WHERE work_date <= $` + itoa(len(args))
		} else {
			conditions += ` AND work_date <= $` + itoa(len(args))
		}
	}
	query += conditions + ` ORDER BY work_date DESC, timesheet_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list timesheets", err)
	}
	return collectTimesheets(rows)
}

// ListTimesheetsByProjectID returns all entries logged against one project.
func (r *PgxTimesheetRepository) ListTimesheetsByProjectID(ctx context.Context, projectID string) ([]domain.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + ` FROM timesheets WHERE project_id = $1 ORDER BY work_date DESC;`

	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list timesheets by project", err)
	}
	return collectTimesheets(rows)
}

// ListTimesheetsByEngineerID returns all entries logged by one engineer.
func (r *PgxTimesheetRepository) ListTimesheetsByEngineerID(ctx context.Context, engineerID string) ([]domain.Timesheet, error) {
	query := `SELECT ` + timesheetColumns + ` FROM timesheets WHERE engineer_id = $1 ORDER BY work_date DESC;`

	rows, err := r.Pool.Query(ctx, query, engineerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list timesheets by engineer", err)
	}
	return collectTimesheets(rows)
}

// SaveTimesheet inserts a new timesheet entry.
func (r *PgxTimesheetRepository) SaveTimesheet(ctx context.Context, ts domain.Timesheet) error {
	m := mapping.ToModelTimesheet(ts)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO timesheets (
			timesheet_id, engineer_id, project_id, hours, work_date,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.TimesheetID, m.EngineerID, m.ProjectID, m.Hours, m.WorkDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save timesheet", err)
	}
	return nil
}

// DeleteTimesheet removes a timesheet entry.
func (r *PgxTimesheetRepository) DeleteTimesheet(ctx context.Context, timesheetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM timesheets WHERE timesheet_id = $1`, timesheetID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete timesheet", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("timesheet with ID " + timesheetID + " not found")
	}
	return nil
}
