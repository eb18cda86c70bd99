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

// PgxInvoiceRepository implements the invoice repository facade using pgxpool.
type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(db *pgxpool.Pool) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const invoiceColumns = `
	invoice_id, invoice_number, project_code, amount, currency_code,
	amount_myr, percent_of_project, status, issue_date,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanInvoice(row pgx.Row) (*models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID, &m.InvoiceNumber, &m.ProjectCode, &m.Amount, &m.CurrencyCode,
		&m.AmountMYR, &m.PercentOfProject, &m.Status, &m.IssueDate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindInvoiceByID retrieves an invoice by its ID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`

	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("invoice with ID " + invoiceID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get invoice by ID", err)
	}

	invoice := mapping.ToDomainInvoice(*m)
	return &invoice, nil
}

// ListInvoices returns all invoices.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY issue_date DESC, invoice_number;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list invoices", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice", err)
		}
		invoices = append(invoices, mapping.ToDomainInvoice(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoices", err)
	}

	return invoices, nil
}

// ListInvoicesByProjectCode returns all invoices issued against one project.
func (r *PgxInvoiceRepository) ListInvoicesByProjectCode(ctx context.Context, projectCode string) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE project_code = $1 ORDER BY issue_date DESC;`

	rows, err := r.Pool.Query(ctx, query, projectCode)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list invoices by project", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice", err)
		}
		invoices = append(invoices, mapping.ToDomainInvoice(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoices", err)
	}

	return invoices, nil
}

// SaveInvoice inserts a new invoice.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO invoices (
			invoice_id, invoice_number, project_code, amount, currency_code,
			amount_myr, percent_of_project, status, issue_date,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		m.InvoiceID, m.InvoiceNumber, m.ProjectCode, m.Amount, m.CurrencyCode,
		m.AmountMYR, m.PercentOfProject, m.Status, m.IssueDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "invoice number already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save invoice", err)
	}
	return nil
}

// UpdateInvoice updates the mutable columns of an invoice.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)

	tag, err := r.Pool.Exec(ctx, `
		UPDATE invoices
		SET status = $1, percent_of_project = $2, last_updated_at = $3, last_updated_by = $4
		WHERE invoice_id = $5`,
		m.Status, m.PercentOfProject, m.LastUpdatedAt, m.LastUpdatedBy, m.InvoiceID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice with ID " + m.InvoiceID + " not found")
	}
	return nil
}

// DeleteInvoice removes an invoice row.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("invoice with ID " + invoiceID + " not found")
	}
	return nil
}
