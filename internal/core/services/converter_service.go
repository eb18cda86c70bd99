package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/juruweb/epms_backend/internal/core/domain"
	portssvc "github.com/juruweb/epms_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ConverterService normalizes arbitrary-currency amounts into MYR.
// Precedence: base currency short-circuit, then a caller-supplied custom
// rate, then the live rate service. A fetch failure is not an error; the
// amount passes through at rate 1.0 flagged as a fallback so callers can
// surface the unconverted figure instead of dropping the record.
type ConverterService struct {
	BaseService
	fetcher portssvc.RateFetcher
}

// NewConverterService creates a new ConverterService.
func NewConverterService(fetcher portssvc.RateFetcher) *ConverterService {
	return &ConverterService{fetcher: fetcher}
}

// Convert normalizes amount from currencyCode into MYR.
func (s *ConverterService) Convert(ctx context.Context, amount decimal.Decimal, currencyCode string, customRate *decimal.Decimal) domain.ConversionResult {
	currencyCode = strings.ToUpper(strings.TrimSpace(currencyCode))

	if currencyCode == domain.BaseCurrencyCode {
		return domain.ConversionResult{
			Rate:      decimal.NewFromInt(1),
			Converted: amount,
			Source:    domain.ConversionBase,
		}
	}

	// A supplied custom rate is applied verbatim, whatever its value. It is
	// the caller's escape hatch for negotiated or historical rates, so no
	// live fetch happens and no sanity check is applied.
	if customRate != nil {
		return domain.ConversionResult{
			Rate:      *customRate,
			Converted: amount.Mul(*customRate),
			Source:    domain.ConversionManual,
		}
	}

	rate, converted, err := s.fetcher.FetchRate(ctx, amount, currencyCode)
	if err != nil {
		s.LogWarn(ctx, "Rate fetch failed, falling back to unconverted amount",
			slog.String("currency_code", currencyCode),
			slog.String("error", err.Error()))
		return domain.ConversionResult{
			Rate:      decimal.NewFromInt(1),
			Converted: amount,
			Source:    domain.ConversionFallback,
		}
	}

	return domain.ConversionResult{
		Rate:      rate,
		Converted: converted,
		Source:    domain.ConversionFetched,
	}
}
