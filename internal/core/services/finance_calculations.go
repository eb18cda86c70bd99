package services

import (
	"sort"

	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildProjectFinanceSummary computes the cash-tracking summary for one
// project from its active POs, invoices and timesheets. A project with no
// matching records produces a valid zero summary. Labour is costed at the
// single global rate; per-engineer custom rates belong to the profitability
// path and are never consulted here.
func BuildProjectFinanceSummary(project domain.Project, pos []domain.PurchaseOrder, invoices []domain.Invoice, timesheets []domain.Timesheet) domain.ProjectFinanceSummary {
	summary := domain.ProjectFinanceSummary{
		ProjectID:    project.ProjectID,
		ProjectCode:  project.ProjectCode,
		ProjectTitle: project.Title,
		ClientName:   project.ClientName,
		Status:       project.Status,
		POReceived:   decimal.Zero,
		Invoiced:     decimal.Zero,
		ManHourCost:  decimal.Zero,
		ActualHours:  decimal.Zero,
	}

	poByCurrency := map[string]*domain.CurrencyAmount{}
	for _, po := range pos {
		if !po.IsActive || po.ProjectCode != project.ProjectCode {
			continue
		}
		effective := po.EffectiveAmountMYR()
		summary.POReceived = summary.POReceived.Add(effective)
		accumulateCurrency(poByCurrency, po.CurrencyCode, po.Amount, effective)
	}
	summary.POReceivedOriginal = flattenCurrencyAmounts(poByCurrency)

	invByCurrency := map[string]*domain.CurrencyAmount{}
	for _, inv := range invoices {
		if inv.ProjectCode != project.ProjectCode {
			continue
		}
		summary.Invoiced = summary.Invoiced.Add(inv.AmountMYR)
		accumulateCurrency(invByCurrency, inv.CurrencyCode, inv.Amount, inv.AmountMYR)
	}
	summary.InvoicedOriginal = flattenCurrencyAmounts(invByCurrency)

	// Outstanding may go negative when a project is over-invoiced; the
	// figure is reported as-is, never clamped.
	summary.Outstanding = summary.POReceived.Sub(summary.Invoiced)

	hoursByEngineer := map[string]decimal.Decimal{}
	for _, ts := range timesheets {
		if ts.ProjectID != project.ProjectID {
			continue
		}
		summary.ActualHours = summary.ActualHours.Add(ts.Hours)
		hoursByEngineer[ts.EngineerID] = hoursByEngineer[ts.EngineerID].Add(ts.Hours)
	}

	engineerIDs := make([]string, 0, len(hoursByEngineer))
	for id := range hoursByEngineer {
		engineerIDs = append(engineerIDs, id)
	}
	sort.Strings(engineerIDs)

	summary.EngineerBreakdown = make([]domain.EngineerCost, 0, len(engineerIDs))
	for _, id := range engineerIDs {
		hours := hoursByEngineer[id]
		cost := hours.Mul(domain.FixedHourlyRate)
		summary.EngineerBreakdown = append(summary.EngineerBreakdown, domain.EngineerCost{
			EngineerID: id,
			Hours:      hours,
			Rate:       domain.FixedHourlyRate,
			Cost:       cost,
		})
		summary.ManHourCost = summary.ManHourCost.Add(cost)
	}

	return summary
}

// ComputeFinanceTotals sums the portfolio totals over project summaries.
// Outstanding is recomputed as total PO minus total invoiced rather than
// summed from per-project outstanding; the two are arithmetically equal.
func ComputeFinanceTotals(summaries []domain.ProjectFinanceSummary) domain.FinanceTotals {
	totals := domain.FinanceTotals{
		POReceived:           decimal.Zero,
		Invoiced:             decimal.Zero,
		ManHourCost:          decimal.Zero,
		POReceivedByCurrency: map[string]decimal.Decimal{},
		InvoicedByCurrency:   map[string]decimal.Decimal{},
	}

	for _, s := range summaries {
		totals.POReceived = totals.POReceived.Add(s.POReceived)
		totals.Invoiced = totals.Invoiced.Add(s.Invoiced)
		totals.ManHourCost = totals.ManHourCost.Add(s.ManHourCost)
		for _, ca := range s.POReceivedOriginal {
			totals.POReceivedByCurrency[ca.CurrencyCode] = totals.POReceivedByCurrency[ca.CurrencyCode].Add(ca.Amount)
		}
		for _, ca := range s.InvoicedOriginal {
			totals.InvoicedByCurrency[ca.CurrencyCode] = totals.InvoicedByCurrency[ca.CurrencyCode].Add(ca.Amount)
		}
	}

	totals.Outstanding = totals.POReceived.Sub(totals.Invoiced)
	return totals
}

func accumulateCurrency(byCurrency map[string]*domain.CurrencyAmount, code string, amount, amountMYR decimal.Decimal) {
	if existing, ok := byCurrency[code]; ok {
		existing.Amount = existing.Amount.Add(amount)
		existing.AmountMYR = existing.AmountMYR.Add(amountMYR)
		return
	}
	byCurrency[code] = &domain.CurrencyAmount{
		Amount:       amount,
		CurrencyCode: code,
		AmountMYR:    amountMYR,
	}
}

// flattenCurrencyAmounts returns the per-currency lines in a deterministic
// order: MYR first, then the remaining codes alphabetically.
func flattenCurrencyAmounts(byCurrency map[string]*domain.CurrencyAmount) []domain.CurrencyAmount {
	codes := make([]string, 0, len(byCurrency))
	for code := range byCurrency {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if codes[i] == domain.BaseCurrencyCode {
			return true
		}
		if codes[j] == domain.BaseCurrencyCode {
			return false
		}
		return codes[i] < codes[j]
	})

	out := make([]domain.CurrencyAmount, 0, len(codes))
	for _, code := range codes {
		out = append(out, *byCurrency[code])
	}
	return out
}
