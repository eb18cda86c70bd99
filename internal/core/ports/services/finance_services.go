package services

import (
	"context"

	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateFetcher is the outbound port to the external currency conversion
// service. Given an amount in a foreign currency it returns the rate to MYR
// and the converted amount.
type RateFetcher interface {
	FetchRate(ctx context.Context, amount decimal.Decimal, currencyCode string) (rate decimal.Decimal, amountMYR decimal.Decimal, err error)
}

// ConverterSvcFacade is the currency normalizer: any amount in, MYR out.
type ConverterSvcFacade interface {
	// Convert never returns an error for a fetch failure; that case comes
	// back as a ConversionFallback result with rate 1.0.
	Convert(ctx context.Context, amount decimal.Decimal, currencyCode string, customRate *decimal.Decimal) domain.ConversionResult
}

// FinanceSvcFacade produces the cash-tracking overview: one summary per
// project plus portfolio totals, all at the fixed global labour rate.
type FinanceSvcFacade interface {
	Overview(ctx context.Context) (*domain.FinanceOverview, error)
}

// ProfitabilitySvcFacade is the parallel profit-oriented calculation path
// using per-project/per-engineer custom rates. It is intentionally separate
// from FinanceSvcFacade and the two must not be conflated.
type ProfitabilitySvcFacade interface {
	ProjectProfitability(ctx context.Context, projectID string) (*domain.ProjectProfitability, error)
	// AllProjectProfitability tolerates individual rate-lookup failures:
	// a project whose custom rates cannot be fetched falls back to default
	// rates instead of failing the batch.
	AllProjectProfitability(ctx context.Context) ([]domain.ProjectProfitability, error)
}
