package currencyfmt_test

import (
	"strings"
	"testing"

	"github.com/juruweb/epms_backend/internal/utils/currencyfmt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSymbol(t *testing.T) {
	assert.Equal(t, "RM", currencyfmt.Symbol("MYR"))
	assert.Equal(t, "US$", currencyfmt.Symbol("USD"))
	assert.Equal(t, "S$", currencyfmt.Symbol("SGD"))
	assert.Equal(t, "€", currencyfmt.Symbol("EUR"))
	// Unmapped codes fall back to the code itself
	assert.Equal(t, "XXX", currencyfmt.Symbol("XXX"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "RM 1,000.00", currencyfmt.FormatAmount("MYR", decimal.NewFromInt(1000)))
	assert.Equal(t, "US$ 1,234,567.89", currencyfmt.FormatAmount("USD", decimal.RequireFromString("1234567.89")))
	assert.Equal(t, "RM 0.00", currencyfmt.FormatAmount("MYR", decimal.Zero))
	assert.Equal(t, "RM -250.50", currencyfmt.FormatAmount("MYR", decimal.RequireFromString("-250.5")))
}

func TestFormatAmount_LargeAmountsKeepCents(t *testing.T) {
	// Past float64's exact integer range; the cents must survive.
	assert.Equal(t, "RM 12,345,678,901,234,567.89",
		currencyfmt.FormatAmount("MYR", decimal.RequireFromString("12345678901234567.89")))
	// Integer part past int64.
	assert.Equal(t, "RM 92,233,720,368,547,758,089.25",
		currencyfmt.FormatAmount("MYR", decimal.RequireFromString("92233720368547758089.25")))
	assert.Equal(t, "RM -12,345,678,901,234,567.89",
		currencyfmt.FormatAmount("MYR", decimal.RequireFromString("-12345678901234567.89")))
}

func TestFormatTotalWithCurrency_SingleCurrency(t *testing.T) {
	total := decimal.NewFromInt(1000)
	byCurrency := map[string]decimal.Decimal{"MYR": decimal.NewFromInt(1000)}

	got := currencyfmt.FormatTotalWithCurrency(total, byCurrency, true, currencyfmt.MultiLineSeparator)
	assert.Equal(t, "RM 1,000.00", got)
}

func TestFormatTotalWithCurrency_MultiCurrency(t *testing.T) {
	total := decimal.NewFromInt(1400)
	byCurrency := map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(200),
		"MYR": decimal.NewFromInt(500),
	}

	got := currencyfmt.FormatTotalWithCurrency(total, byCurrency, true, currencyfmt.MultiLineSeparator)
	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, got, "US$ 200.00")
	assert.Contains(t, got, "RM 500.00")
	// MYR leads the breakdown
	assert.Equal(t, "RM 500.00", lines[0])
}

func TestFormatTotalWithCurrency_InlineSeparator(t *testing.T) {
	byCurrency := map[string]decimal.Decimal{
		"SGD": decimal.NewFromInt(300),
		"EUR": decimal.NewFromInt(100),
	}

	got := currencyfmt.FormatTotalWithCurrency(decimal.NewFromInt(1500), byCurrency, true, currencyfmt.InlineSeparator)
	assert.Equal(t, "€ 100.00 + S$ 300.00", got)
}

func TestFormatTotalWithCurrency_NormalizedView(t *testing.T) {
	byCurrency := map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(200),
		"MYR": decimal.NewFromInt(500),
	}

	// showOriginal false renders the MYR total only
	got := currencyfmt.FormatTotalWithCurrency(decimal.RequireFromString("1440.25"), byCurrency, false, currencyfmt.InlineSeparator)
	assert.Equal(t, "RM 1,440.25", got)
}

func TestFormatBreakdown_Empty(t *testing.T) {
	assert.Equal(t, "", currencyfmt.FormatBreakdown(nil, currencyfmt.InlineSeparator))
}
