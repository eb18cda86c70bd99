package dto

import (
	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/utils/currencyfmt"
	"github.com/shopspring/decimal"
)

// ConversionResponse is the currency normalizer output.
type ConversionResponse struct {
	Rate      decimal.Decimal `json:"rate"`
	Converted decimal.Decimal `json:"converted"`
	Source    string          `json:"source"`
	Display   string          `json:"display"`
}

// CurrencyAmountResponse is one original-currency line of a breakdown.
type CurrencyAmountResponse struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	AmountMYR    decimal.Decimal `json:"amountMYR"`
}

// EngineerCostResponse is one engineer's derived cost line.
type EngineerCostResponse struct {
	EngineerID string          `json:"engineerID"`
	Hours      decimal.Decimal `json:"hours"`
	Rate       decimal.Decimal `json:"rate"`
	Cost       decimal.Decimal `json:"cost"`
}

// ProjectFinanceSummaryResponse is the per-project row of the overview.
type ProjectFinanceSummaryResponse struct {
	ProjectID          string                   `json:"projectID"`
	ProjectCode        string                   `json:"projectCode"`
	ProjectTitle       string                   `json:"projectTitle"`
	ClientName         string                   `json:"clientName"`
	Status             string                   `json:"status"`
	POReceived         decimal.Decimal          `json:"poReceived"`
	Invoiced           decimal.Decimal          `json:"invoiced"`
	Outstanding        decimal.Decimal          `json:"outstanding"`
	OverInvoiced       bool                     `json:"overInvoiced"`
	POReceivedOriginal []CurrencyAmountResponse `json:"poReceivedOriginal"`
	InvoicedOriginal   []CurrencyAmountResponse `json:"invoicedOriginal"`
	ManHourCost        decimal.Decimal          `json:"manHourCost"`
	ActualHours        decimal.Decimal          `json:"actualHours"`
	EngineerBreakdown  []EngineerCostResponse   `json:"engineerBreakdown"`
}

// FinanceTotalsResponse carries the portfolio totals plus display strings.
// The display strings honor the original-currency toggle: with a single
// currency they collapse to one segment, otherwise one line per currency.
type FinanceTotalsResponse struct {
	POReceived           decimal.Decimal            `json:"poReceived"`
	Invoiced             decimal.Decimal            `json:"invoiced"`
	Outstanding          decimal.Decimal            `json:"outstanding"`
	ManHourCost          decimal.Decimal            `json:"manHourCost"`
	POReceivedByCurrency map[string]decimal.Decimal `json:"poReceivedByCurrency"`
	InvoicedByCurrency   map[string]decimal.Decimal `json:"invoicedByCurrency"`
	POReceivedDisplay    string                     `json:"poReceivedDisplay"`
	InvoicedDisplay      string                     `json:"invoicedDisplay"`
	OutstandingDisplay   string                     `json:"outstandingDisplay"`
	ManHourCostDisplay   string                     `json:"manHourCostDisplay"`
}

// FinanceOverviewResponse is the full overview payload.
type FinanceOverviewResponse struct {
	ProjectSummaries []ProjectFinanceSummaryResponse `json:"projectSummaries"`
	Totals           FinanceTotalsResponse           `json:"totals"`
}

// ProjectProfitabilityResponse is the profit-oriented view of one project.
type ProjectProfitabilityResponse struct {
	ProjectID         string                 `json:"projectID"`
	ProjectCode       string                 `json:"projectCode"`
	ProjectTitle      string                 `json:"projectTitle"`
	Revenue           decimal.Decimal        `json:"revenue"`
	LabourCost        decimal.Decimal        `json:"labourCost"`
	Profit            decimal.Decimal        `json:"profit"`
	MarginPercent     decimal.Decimal        `json:"marginPercent"`
	EngineerBreakdown []EngineerCostResponse `json:"engineerBreakdown"`
}

// ToConversionResponse converts a domain.ConversionResult to its DTO.
func ToConversionResponse(currencyCode string, res domain.ConversionResult) ConversionResponse {
	return ConversionResponse{
		Rate:      res.Rate,
		Converted: res.Converted,
		Source:    string(res.Source),
		Display:   currencyfmt.FormatAmount(domain.BaseCurrencyCode, res.Converted),
	}
}

func toCurrencyAmountResponses(amounts []domain.CurrencyAmount) []CurrencyAmountResponse {
	out := make([]CurrencyAmountResponse, len(amounts))
	for i, a := range amounts {
		out[i] = CurrencyAmountResponse{Amount: a.Amount, CurrencyCode: a.CurrencyCode, AmountMYR: a.AmountMYR}
	}
	return out
}

func toEngineerCostResponses(costs []domain.EngineerCost) []EngineerCostResponse {
	out := make([]EngineerCostResponse, len(costs))
	for i, c := range costs {
		out[i] = EngineerCostResponse{EngineerID: c.EngineerID, Hours: c.Hours, Rate: c.Rate, Cost: c.Cost}
	}
	return out
}

// ToProjectFinanceSummaryResponse converts one domain summary to its DTO.
func ToProjectFinanceSummaryResponse(s domain.ProjectFinanceSummary) ProjectFinanceSummaryResponse {
	return ProjectFinanceSummaryResponse{
		ProjectID:          s.ProjectID,
		ProjectCode:        s.ProjectCode,
		ProjectTitle:       s.ProjectTitle,
		ClientName:         s.ClientName,
		Status:             string(s.Status),
		POReceived:         s.POReceived,
		Invoiced:           s.Invoiced,
		Outstanding:        s.Outstanding,
		OverInvoiced:       s.Outstanding.IsNegative(),
		POReceivedOriginal: toCurrencyAmountResponses(s.POReceivedOriginal),
		InvoicedOriginal:   toCurrencyAmountResponses(s.InvoicedOriginal),
		ManHourCost:        s.ManHourCost,
		ActualHours:        s.ActualHours,
		EngineerBreakdown:  toEngineerCostResponses(s.EngineerBreakdown),
	}
}

// ToFinanceOverviewResponse converts the domain overview to the response
// payload, rendering display strings per the showOriginal toggle.
func ToFinanceOverviewResponse(overview *domain.FinanceOverview, showOriginal bool) FinanceOverviewResponse {
	resp := FinanceOverviewResponse{
		ProjectSummaries: make([]ProjectFinanceSummaryResponse, len(overview.ProjectSummaries)),
	}
	for i, s := range overview.ProjectSummaries {
		resp.ProjectSummaries[i] = ToProjectFinanceSummaryResponse(s)
	}

	t := overview.Totals
	resp.Totals = FinanceTotalsResponse{
		POReceived:           t.POReceived,
		Invoiced:             t.Invoiced,
		Outstanding:          t.Outstanding,
		ManHourCost:          t.ManHourCost,
		POReceivedByCurrency: t.POReceivedByCurrency,
		InvoicedByCurrency:   t.InvoicedByCurrency,
		POReceivedDisplay:    currencyfmt.FormatTotalWithCurrency(t.POReceived, t.POReceivedByCurrency, showOriginal, currencyfmt.MultiLineSeparator),
		InvoicedDisplay:      currencyfmt.FormatTotalWithCurrency(t.Invoiced, t.InvoicedByCurrency, showOriginal, currencyfmt.MultiLineSeparator),
		// Outstanding and labour cost only exist in MYR; no original view.
		OutstandingDisplay: currencyfmt.FormatAmount(domain.BaseCurrencyCode, t.Outstanding),
		ManHourCostDisplay: currencyfmt.FormatAmount(domain.BaseCurrencyCode, t.ManHourCost),
	}
	return resp
}

// ToProjectProfitabilityResponse converts one domain profitability record to its DTO.
func ToProjectProfitabilityResponse(p *domain.ProjectProfitability) ProjectProfitabilityResponse {
	return ProjectProfitabilityResponse{
		ProjectID:         p.ProjectID,
		ProjectCode:       p.ProjectCode,
		ProjectTitle:      p.ProjectTitle,
		Revenue:           p.Revenue,
		LabourCost:        p.LabourCost,
		Profit:            p.Profit,
		MarginPercent:     p.MarginPercent,
		EngineerBreakdown: toEngineerCostResponses(p.EngineerBreakdown),
	}
}

// ToListProjectProfitabilityResponse converts a batch of profitability records.
func ToListProjectProfitabilityResponse(items []domain.ProjectProfitability) []ProjectProfitabilityResponse {
	responses := make([]ProjectProfitabilityResponse, len(items))
	for i := range items {
		responses[i] = ToProjectProfitabilityResponse(&items[i])
	}
	return responses
}
