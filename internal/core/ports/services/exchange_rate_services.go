package services

import (
	"context"
	"time"

	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/dto"
)

// ExchangeRateSvcFacade defines the exchange rate service surface.
type ExchangeRateSvcFacade interface {
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorID string) (*domain.ExchangeRate, error)
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)
	ListExchangeRates(ctx context.Context, fromCurrency, toCurrency *string, effectiveDate *time.Time, page, pageSize int) ([]domain.ExchangeRate, int, error)
}
