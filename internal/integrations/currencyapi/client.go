// Package currencyapi implements the outbound rate fetcher against an
// exchangerate-api compatible endpoint.
package currencyapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

// Client fetches live conversion rates to MYR.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a rate fetcher against the given base URL, e.g.
// "https://api.exchangerate-api.com/v4/latest". An empty apiKey is allowed
// for providers that don't require one.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// latestRatesResponse mirrors the provider's payload for GET {base}/{code}.
type latestRatesResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// FetchRate returns the live rate from currencyCode to MYR and the converted
// amount. Callers treat any error as "use the fallback policy"; this method
// never substitutes a rate itself.
func (c *Client) FetchRate(ctx context.Context, amount decimal.Decimal, currencyCode string) (decimal.Decimal, decimal.Decimal, error) {
	if c.baseURL == "" {
		return decimal.Zero, decimal.Zero, fmt.Errorf("currency API base URL is not configured")
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, currencyCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to build rate request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("rate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, decimal.Zero, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var payload latestRatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to decode rate response: %w", err)
	}

	rate, ok := payload.Rates[domain.BaseCurrencyCode]
	if !ok {
		return decimal.Zero, decimal.Zero, fmt.Errorf("rate provider response missing %s rate for %s", domain.BaseCurrencyCode, currencyCode)
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("rate provider returned non-positive rate %s for %s", rate, currencyCode)
	}

	return rate, amount.Mul(rate), nil
}
