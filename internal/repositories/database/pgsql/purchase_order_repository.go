package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/juruweb/epms_backend/internal/apperrors"
	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/models"
	"github.com/juruweb/epms_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPurchaseOrderRepository implements the PO repository facade using pgxpool.
type PgxPurchaseOrderRepository struct {
	BaseRepository
}

func newPgxPurchaseOrderRepository(db *pgxpool.Pool) *PgxPurchaseOrderRepository {
	return &PgxPurchaseOrderRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const purchaseOrderColumns = `
	po_id, po_number, project_code, amount, currency_code, exchange_rate,
	amount_myr, amount_myr_adjusted, is_active, received_date,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanPurchaseOrder(row pgx.Row) (*models.PurchaseOrder, error) {
	var m models.PurchaseOrder
	err := row.Scan(
		&m.POID, &m.PONumber, &m.ProjectCode, &m.Amount, &m.CurrencyCode,
		&m.ExchangeRate, &m.AmountMYR, &m.AmountMYRAdjusted, &m.IsActive,
		&m.ReceivedDate, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindPurchaseOrderByID retrieves a PO by its ID, active or not.
func (r *PgxPurchaseOrderRepository) FindPurchaseOrderByID(ctx context.Context, poID string) (*domain.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE po_id = $1;`

	m, err := scanPurchaseOrder(r.Pool.QueryRow(ctx, query, poID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("purchase order with ID " + poID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get purchase order by ID", err)
	}

	po := mapping.ToDomainPurchaseOrder(*m)
	return &po, nil
}

// ListPurchaseOrders returns POs, active-only unless includeInactive.
func (r *PgxPurchaseOrderRepository) ListPurchaseOrders(ctx context.Context, includeInactive bool) ([]domain.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY received_date DESC, po_number;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list purchase orders", err)
	}
	defer rows.Close()

	pos := []domain.PurchaseOrder{}
	for rows.Next() {
		m, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan purchase order", err)
		}
		pos = append(pos, mapping.ToDomainPurchaseOrder(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating purchase orders", err)
	}

	return pos, nil
}

// ListPurchaseOrdersByProjectCode returns active POs for one project.
func (r *PgxPurchaseOrderRepository) ListPurchaseOrdersByProjectCode(ctx context.Context, projectCode string) ([]domain.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + `
		FROM purchase_orders
		WHERE project_code = $1 AND is_active = TRUE
		ORDER BY received_date DESC;`

	rows, err := r.Pool.Query(ctx, query, projectCode)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list purchase orders by project", err)
	}
	defer rows.Close()

	pos := []domain.PurchaseOrder{}
	for rows.Next() {
		m, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan purchase order", err)
		}
		pos = append(pos, mapping.ToDomainPurchaseOrder(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating purchase orders", err)
	}

	return pos, nil
}

// SavePurchaseOrder inserts a new PO.
func (r *PgxPurchaseOrderRepository) SavePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) error {
	m := mapping.ToModelPurchaseOrder(po)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO purchase_orders (
			po_id, po_number, project_code, amount, currency_code, exchange_rate,
			amount_myr, amount_myr_adjusted, is_active, received_date,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		m.POID, m.PONumber, m.ProjectCode, m.Amount, m.CurrencyCode, m.ExchangeRate,
		m.AmountMYR, m.AmountMYRAdjusted, m.IsActive, m.ReceivedDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewAppError(409, "purchase order number already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save purchase order", err)
	}
	return nil
}

// UpdatePurchaseOrder updates the mutable columns of a PO.
func (r *PgxPurchaseOrderRepository) UpdatePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) error {
	m := mapping.ToModelPurchaseOrder(po)

	tag, err := r.Pool.Exec(ctx, `
		UPDATE purchase_orders
		SET po_number = $1, amount_myr_adjusted = $2, received_date = $3,
			last_updated_at = $4, last_updated_by = $5
		WHERE po_id = $6 AND is_active = TRUE`,
		m.PONumber, m.AmountMYRAdjusted, m.ReceivedDate,
		m.LastUpdatedAt, m.LastUpdatedBy, m.POID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update purchase order", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("active purchase order with ID " + m.POID + " not found")
	}
	return nil
}

// DeactivatePurchaseOrder soft-deletes a PO by clearing is_active.
func (r *PgxPurchaseOrderRepository) DeactivatePurchaseOrder(ctx context.Context, poID string, updaterID string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE purchase_orders
		SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE po_id = $3 AND is_active = TRUE`,
		time.Now(), updaterID, poID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate purchase order", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("active purchase order with ID " + poID + " not found")
	}
	return nil
}
