package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/juruweb/epms_backend/internal/apperrors"
	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/models"
	"github.com/juruweb/epms_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxExchangeRateRepository implements the exchange rate repository facade using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const exchangeRateColumns = `
	exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective, source,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanExchangeRate(row pgx.Row) (*models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ExchangeRateID, &m.FromCurrencyCode, &m.ToCurrencyCode,
		&m.Rate, &m.DateEffective, &m.Source,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveExchangeRate inserts a new rate, or updates the stored rate when one
// already exists for the same currency pair and effective date.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	fromCurrency := strings.ToUpper(rate.FromCurrencyCode)
	toCurrency := strings.ToUpper(rate.ToCurrencyCode)

	if fromCurrency == toCurrency {
		return apperrors.NewValidationError("from and to currencies cannot be the same")
	}

	modelRate := mapping.ToModelExchangeRate(rate)
	modelRate.FromCurrencyCode = fromCurrency
	modelRate.ToCurrencyCode = toCurrency

	return r.withTx(ctx, func(tx pgx.Tx) error {
		var existingID string
		err := tx.QueryRow(ctx,
			`SELECT exchange_rate_id FROM exchange_rates
			WHERE from_currency_code = $1 AND to_currency_code = $2 AND date_effective = $3`,
			fromCurrency, toCurrency, rate.DateEffective,
		).Scan(&existingID)

		if err == nil && existingID != "" {
			_, err = tx.Exec(ctx, `
				UPDATE exchange_rates
				SET rate = $1, source = $2, last_updated_at = $3, last_updated_by = $4
				WHERE exchange_rate_id = $5`,
				modelRate.Rate, modelRate.Source, modelRate.LastUpdatedAt, modelRate.LastUpdatedBy, existingID,
			)
		} else if errors.Is(err, pgx.ErrNoRows) {
			_, err = tx.Exec(ctx, `
				INSERT INTO exchange_rates (
					exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective, source,
					created_at, created_by, last_updated_at, last_updated_by
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				modelRate.ExchangeRateID, modelRate.FromCurrencyCode, modelRate.ToCurrencyCode,
				modelRate.Rate, modelRate.DateEffective, modelRate.Source, modelRate.CreatedAt,
				modelRate.CreatedBy, modelRate.LastUpdatedAt, modelRate.LastUpdatedBy,
			)
		}

		if err != nil {
			return apperrors.NewAppError(500, "failed to save exchange rate", err)
		}
		return nil
	})
}

// FindExchangeRate retrieves the most recent exchange rate between two currencies.
// Same-pair lookups resolve to a 1:1 rate, and a stored inverse rate is used
// when no direct rate exists.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	fromCurrency := strings.ToUpper(fromCurrencyCode)
	toCurrency := strings.ToUpper(toCurrencyCode)

	if fromCurrency == toCurrency {
		now := time.Now().Truncate(24 * time.Hour)
		return &domain.ExchangeRate{
			FromCurrencyCode: fromCurrency,
			ToCurrencyCode:   toCurrency,
			Rate:             decimal.NewFromInt(1),
			DateEffective:    now,
		}, nil
	}

	directRate, err := r.findRate(ctx, fromCurrency, toCurrency)
	if err == nil {
		return directRate, nil
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		inverseRate, inverseErr := r.findRate(ctx, toCurrency, fromCurrency)
		if inverseErr == nil {
			inverseRate.FromCurrencyCode = fromCurrency
			inverseRate.ToCurrencyCode = toCurrency
			if !inverseRate.Rate.IsZero() {
				inverseRate.Rate = decimal.NewFromInt(1).Div(inverseRate.Rate)
			}
			return inverseRate, nil
		}
	}

	return nil, apperrors.NewNotFoundError("no exchange rate found for currency pair " + fromCurrency + " to " + toCurrency)
}

// findRate returns the most recent stored rate for an exact pair.
func (r *PgxExchangeRateRepository) findRate(ctx context.Context, fromCurrency, toCurrency string) (*domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2
		ORDER BY date_effective DESC
		LIMIT 1;`

	m, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, fromCurrency, toCurrency))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("exchange rate not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find exchange rate", err)
	}

	domainRate := mapping.ToDomainExchangeRate(*m)
	return &domainRate, nil
}

// ListExchangeRates retrieves exchange rates with optional filtering.
func (r *PgxExchangeRateRepository) ListExchangeRates(
	ctx context.Context,
	fromCurrency, toCurrency *string,
	effectiveDate *time.Time,
	page, pageSize int,
) ([]domain.ExchangeRate, int, error) {
	baseQuery := `FROM exchange_rates WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if fromCurrency != nil {
		baseQuery += fmt.Sprintf(" AND from_currency_code = $%d", argNum)
		args = append(args, strings.ToUpper(*fromCurrency))
		argNum++
	}

	if toCurrency != nil {
		baseQuery += fmt.Sprintf(" AND to_currency_code = $%d", argNum)
		args = append(args, strings.ToUpper(*toCurrency))
		argNum++
	}

	if effectiveDate != nil {
		baseQuery += fmt.Sprintf(" AND date_effective <= $%d", argNum)
		args = append(args, effectiveDate.Truncate(24*time.Hour))
		argNum++
	}

	var total int
	countQuery := "SELECT COUNT(*) " + baseQuery
	err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count exchange rates", err)
	}

	if total == 0 {
		return []domain.ExchangeRate{}, 0, nil
	}

	baseQuery += " ORDER BY from_currency_code, to_currency_code, date_effective DESC"
	if pageSize > 0 {
		offset := (page - 1) * pageSize
		baseQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argNum, argNum+1)
		args = append(args, pageSize, offset)
	}

	rows, err := r.Pool.Query(ctx, "SELECT "+exchangeRateColumns+" "+baseQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to list exchange rates", err)
	}
	defer rows.Close()

	var rates []domain.ExchangeRate
	for rows.Next() {
		m, err := scanExchangeRate(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan exchange rate", err)
		}
		rates = append(rates, mapping.ToDomainExchangeRate(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating exchange rates", err)
	}

	return rates, total, nil
}
