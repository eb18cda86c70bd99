// Package currencyfmt renders MYR-normalized and original-currency amounts
// for display: summary cards, tables and inline breakdowns.
package currencyfmt

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// symbols maps currency codes to their display symbols. Unmapped codes fall
// back to the code itself.
var symbols = map[string]string{
	"MYR": "RM",
	"USD": "US$",
	"SGD": "S$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "CN¥",
	"AUD": "A$",
	"IDR": "Rp",
	"THB": "฿",
	"INR": "₹",
	"KRW": "₩",
	"VND": "₫",
}

// Separators for joining multi-currency segments.
const (
	InlineSeparator    = " + "
	MultiLineSeparator = "\n"
)

var printer = message.NewPrinter(language.English)

// Symbol returns the display symbol for a currency code, or the code itself
// when no symbol is mapped.
func Symbol(currencyCode string) string {
	if sym, ok := symbols[strings.ToUpper(currencyCode)]; ok {
		return sym
	}
	return currencyCode
}

// FormatAmount renders one amount as "<symbol> <grouped 2-decimal value>",
// e.g. FormatAmount("MYR", 1000) -> "RM 1,000.00".
func FormatAmount(currencyCode string, amount decimal.Decimal) string {
	return Symbol(currencyCode) + " " + groupFixed(amount)
}

// groupFixed renders the amount with exactly two decimals and thousands
// grouping. It works from the decimal's own fixed-point string rather than a
// float64 round trip, so amounts past float64's exact range keep their cents.
func groupFixed(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart := fixed[:len(fixed)-3]
	frac := fixed[len(fixed)-2:]
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		return printer.Sprintf("%s%d.%s", sign, n, frac)
	}
	// Integer part beyond int64: group the digit string directly.
	var b strings.Builder
	b.WriteString(sign)
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String() + "." + frac
}

// FormatBreakdown renders a by-currency map as one segment per currency
// joined by sep, in a deterministic order: MYR first, then the remaining
// codes alphabetically.
func FormatBreakdown(byCurrency map[string]decimal.Decimal, sep string) string {
	codes := make([]string, 0, len(byCurrency))
	for code := range byCurrency {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if codes[i] == "MYR" {
			return true
		}
		if codes[j] == "MYR" {
			return false
		}
		return codes[i] < codes[j]
	})

	segments := make([]string, len(codes))
	for i, code := range codes {
		segments[i] = FormatAmount(code, byCurrency[code])
	}
	return strings.Join(segments, sep)
}

// FormatTotalWithCurrency renders a portfolio total. When showOriginal is
// set and the breakdown carries amounts, each original currency is rendered
// as its own segment; otherwise the MYR-normalized total is shown alone.
func FormatTotalWithCurrency(totalMYR decimal.Decimal, byCurrency map[string]decimal.Decimal, showOriginal bool, sep string) string {
	if !showOriginal || len(byCurrency) == 0 {
		return FormatAmount("MYR", totalMYR)
	}
	return FormatBreakdown(byCurrency, sep)
}
