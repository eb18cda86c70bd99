package pgsql

import (
	"context"
	"errors"

	"github.com/juruweb/epms_backend/internal/apperrors"
	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/models"
	"github.com/juruweb/epms_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTeamMemberRepository implements the team member repository facade using pgxpool.
type PgxTeamMemberRepository struct {
	BaseRepository
}

func newPgxTeamMemberRepository(db *pgxpool.Pool) *PgxTeamMemberRepository {
	return &PgxTeamMemberRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const teamMemberColumns = `
	team_member_id, name, email, role, hourly_rate, password_hash,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanTeamMember(row pgx.Row) (*models.TeamMember, error) {
	var m models.TeamMember
	err := row.Scan(
		&m.TeamMemberID, &m.Name, &m.Email, &m.Role, &m.HourlyRate, &m.PasswordHash,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindTeamMemberByID retrieves a team member by their ID.
func (r *PgxTeamMemberRepository) FindTeamMemberByID(ctx context.Context, teamMemberID string) (*domain.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members WHERE team_member_id = $1;`

	m, err := scanTeamMember(r.Pool.QueryRow(ctx, query, teamMemberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("team member with ID " + teamMemberID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get team member by ID", err)
	}

	member := mapping.ToDomainTeamMember(*m)
	return &member, nil
}

// FindTeamMemberByEmail retrieves a team member by their unique email.
func (r *PgxTeamMemberRepository) FindTeamMemberByEmail(ctx context.Context, email string) (*domain.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members WHERE email = $1;`

	m, err := scanTeamMember(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("team member with email " + email + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get team member by email", err)
	}

	member := mapping.ToDomainTeamMember(*m)
	return &member, nil
}

// ListTeamMembers returns all team members ordered by name.
func (r *PgxTeamMemberRepository) ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	query := `SELECT ` + teamMemberColumns + ` FROM team_members ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list team members", err)
	}
	defer rows.Close()

	members := []domain.TeamMember{}
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan team member", err)
		}
		members = append(members, mapping.ToDomainTeamMember(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating team members", err)
	}

	return members, nil
}

// SaveTeamMember inserts a new team member.
func (r *PgxTeamMemberRepository) SaveTeamMember(ctx context.Context, member domain.TeamMember) error {
	m := mapping.ToModelTeamMember(member)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO team_members (
			team_member_id, name, email, role, hourly_rate, password_hash,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.TeamMemberID, m.Name, m.Email, m.Role, m.HourlyRate, m.PasswordHash,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "team member email already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save team member", err)
	}
	return nil
}

// UpdateTeamMember updates the mutable columns of a team member.
func (r *PgxTeamMemberRepository) UpdateTeamMember(ctx context.Context, member domain.TeamMember) error {
	m := mapping.ToModelTeamMember(member)

	tag, err := r.Pool.Exec(ctx, `
		UPDATE team_members
		SET name = $1, role = $2, hourly_rate = $3, last_updated_at = $4, last_updated_by = $5
		WHERE team_member_id = $6`,
		m.Name, m.Role, m.HourlyRate, m.LastUpdatedAt, m.LastUpdatedBy, m.TeamMemberID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update team member", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("team member with ID " + m.TeamMemberID + " not found")
	}
	return nil
}

// PgxProjectRateRepository implements the project rate repository facade using pgxpool.
type PgxProjectRateRepository struct {
	BaseRepository
}

func newPgxProjectRateRepository(db *pgxpool.Pool) *PgxProjectRateRepository {
	return &PgxProjectRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const projectRateColumns = `
	project_id, team_member_id, hourly_rate,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanProjectRate(row pgx.Row) (*models.ProjectRate, error) {
	var m models.ProjectRate
	err := row.Scan(
		&m.ProjectID, &m.TeamMemberID, &m.HourlyRate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListProjectRates returns the hourly rate overrides for one project.
func (r *PgxProjectRateRepository) ListProjectRates(ctx context.Context, projectID string) ([]domain.ProjectRate, error) {
	query := `SELECT ` + projectRateColumns + ` FROM project_rates WHERE project_id = $1;`

	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list project rates", err)
	}
	defer rows.Close()

	rates := []domain.ProjectRate{}
	for rows.Next() {
		m, err := scanProjectRate(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan project rate", err)
		}
		rates = append(rates, mapping.ToDomainProjectRate(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating project rates", err)
	}

	return rates, nil
}

// UpsertProjectRate inserts or replaces the rate override for a
// (project, team member) pair.
func (r *PgxProjectRateRepository) UpsertProjectRate(ctx context.Context, rate domain.ProjectRate) error {
	m := mapping.ToModelProjectRate(rate)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO project_rates (
			project_id, team_member_id, hourly_rate,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (project_id, team_member_id)
		DO UPDATE SET hourly_rate = EXCLUDED.hourly_rate,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by`,
		m.ProjectID, m.TeamMemberID, m.HourlyRate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert project rate", err)
	}
	return nil
}

// DeleteProjectRate removes the rate override for a (project, team member) pair.
func (r *PgxProjectRateRepository) DeleteProjectRate(ctx context.Context, projectID, teamMemberID string) error {
	tag, err := r.Pool.Exec(ctx, `
		DELETE FROM project_rates WHERE project_id = $1 AND team_member_id = $2`,
		projectID, teamMemberID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete project rate", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("project rate for project " + projectID + " and member " + teamMemberID + " not found")
	}
	return nil
}
