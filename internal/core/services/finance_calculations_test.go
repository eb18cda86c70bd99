package services_test

import (
	"testing"

	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProject(id, code string) domain.Project {
	return domain.Project{
		ProjectID:   id,
		ProjectCode: code,
		Title:       "Test project " + code,
		ClientName:  "Acme Engineering",
		Status:      domain.StatusOngoing,
		BillingType: domain.BillingHourly,
		ProjectType: domain.TypeStandard,
	}
}

func activePO(code, currency string, amount, amountMYR string) domain.PurchaseOrder {
	return domain.PurchaseOrder{
		PONumber:     "PO-" + code,
		ProjectCode:  code,
		Amount:       decimal.RequireFromString(amount),
		CurrencyCode: currency,
		AmountMYR:    decimal.RequireFromString(amountMYR),
		IsActive:     true,
	}
}

func TestBuildProjectFinanceSummary_NoRecordsIsZeroSummary(t *testing.T) {
	project := newTestProject("p1", "J25001")

	summary := services.BuildProjectFinanceSummary(project, nil, nil, nil)

	assert.Equal(t, "J25001", summary.ProjectCode)
	assert.True(t, summary.POReceived.IsZero())
	assert.True(t, summary.Invoiced.IsZero())
	assert.True(t, summary.Outstanding.IsZero())
	assert.True(t, summary.ManHourCost.IsZero())
	assert.True(t, summary.ActualHours.IsZero())
	assert.Empty(t, summary.EngineerBreakdown)
	assert.Empty(t, summary.POReceivedOriginal)
}

func TestBuildProjectFinanceSummary_NegativeOutstandingNotClamped(t *testing.T) {
	project := newTestProject("p1", "J25001")
	pos := []domain.PurchaseOrder{activePO("J25001", "MYR", "1000", "1000")}
	invoices := []domain.Invoice{
		{ProjectCode: "J25001", Amount: decimal.NewFromInt(1500), CurrencyCode: "MYR", AmountMYR: decimal.NewFromInt(1500)},
	}

	summary := services.BuildProjectFinanceSummary(project, pos, invoices, nil)

	assert.True(t, summary.Outstanding.Equal(decimal.NewFromInt(-500)), "outstanding was %s", summary.Outstanding)
}

func TestBuildProjectFinanceSummary_InactivePOExcluded(t *testing.T) {
	project := newTestProject("p1", "J25001")
	inactive := activePO("J25001", "MYR", "2000", "2000")
	inactive.IsActive = false
	pos := []domain.PurchaseOrder{
		activePO("J25001", "MYR", "1000", "1000"),
		inactive,
	}

	summary := services.BuildProjectFinanceSummary(project, pos, nil, nil)

	assert.True(t, summary.POReceived.Equal(decimal.NewFromInt(1000)), "poReceived was %s", summary.POReceived)
}

func TestBuildProjectFinanceSummary_OtherProjectsExcluded(t *testing.T) {
	project := newTestProject("p1", "J25001")
	pos := []domain.PurchaseOrder{
		activePO("J25001", "MYR", "1000", "1000"),
		activePO("J25002", "MYR", "9000", "9000"),
	}
	timesheets := []domain.Timesheet{
		{ProjectID: "p1", EngineerID: "e1", Hours: decimal.NewFromInt(2)},
		{ProjectID: "p2", EngineerID: "e1", Hours: decimal.NewFromInt(40)},
	}

	summary := services.BuildProjectFinanceSummary(project, pos, nil, timesheets)

	assert.True(t, summary.POReceived.Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.ActualHours.Equal(decimal.NewFromInt(2)))
}

func TestBuildProjectFinanceSummary_AdjustedAmountOverridesComputed(t *testing.T) {
	project := newTestProject("p1", "J25001")
	adjusted := decimal.NewFromInt(4700)
	po := domain.PurchaseOrder{
		ProjectCode:       "J25001",
		Amount:            decimal.NewFromInt(1000),
		CurrencyCode:      "USD",
		ExchangeRate:      decimal.RequireFromString("4.5"),
		AmountMYR:         decimal.NewFromInt(4500),
		AmountMYRAdjusted: &adjusted,
		IsActive:          true,
	}

	summary := services.BuildProjectFinanceSummary(project, []domain.PurchaseOrder{po}, nil, nil)

	assert.True(t, summary.POReceived.Equal(decimal.NewFromInt(4700)), "poReceived was %s", summary.POReceived)
	// The original-currency line keeps the adjusted MYR figure too.
	require.Len(t, summary.POReceivedOriginal, 1)
	assert.Equal(t, "USD", summary.POReceivedOriginal[0].CurrencyCode)
	assert.True(t, summary.POReceivedOriginal[0].AmountMYR.Equal(decimal.NewFromInt(4700)))
}

func TestBuildProjectFinanceSummary_EngineerCostsAtFixedRate(t *testing.T) {
	project := newTestProject("p1", "J25001")
	timesheets := []domain.Timesheet{
		{ProjectID: "p1", EngineerID: "e1", Hours: decimal.NewFromInt(8)},
		{ProjectID: "p1", EngineerID: "e1", Hours: decimal.NewFromInt(7)},
		{ProjectID: "p1", EngineerID: "e2", Hours: decimal.NewFromInt(4)},
	}

	summary := services.BuildProjectFinanceSummary(project, nil, nil, timesheets)

	// 15h at RM437.50/h for e1, 4h for e2.
	require.Len(t, summary.EngineerBreakdown, 2)
	assert.Equal(t, "e1", summary.EngineerBreakdown[0].EngineerID)
	assert.True(t, summary.EngineerBreakdown[0].Cost.Equal(decimal.RequireFromString("6562.5")), "e1 cost was %s", summary.EngineerBreakdown[0].Cost)
	assert.True(t, summary.EngineerBreakdown[1].Cost.Equal(decimal.NewFromInt(1750)))
	assert.True(t, summary.ManHourCost.Equal(decimal.RequireFromString("8312.5")))
	assert.True(t, summary.ActualHours.Equal(decimal.NewFromInt(19)))
}

func TestBuildProjectFinanceSummary_CurrencyGrouping(t *testing.T) {
	project := newTestProject("p1", "J25001")
	pos := []domain.PurchaseOrder{
		activePO("J25001", "USD", "100", "443"),
		activePO("J25001", "USD", "200", "886"),
		activePO("J25001", "MYR", "500", "500"),
	}

	summary := services.BuildProjectFinanceSummary(project, pos, nil, nil)

	require.Len(t, summary.POReceivedOriginal, 2)
	// MYR leads, remaining codes alphabetical.
	assert.Equal(t, "MYR", summary.POReceivedOriginal[0].CurrencyCode)
	assert.Equal(t, "USD", summary.POReceivedOriginal[1].CurrencyCode)
	assert.True(t, summary.POReceivedOriginal[1].Amount.Equal(decimal.NewFromInt(300)), "USD amount was %s", summary.POReceivedOriginal[1].Amount)
	assert.True(t, summary.POReceivedOriginal[1].AmountMYR.Equal(decimal.NewFromInt(1329)))
}

func TestComputeFinanceTotals_BothOutstandingPathsAgree(t *testing.T) {
	projects := []domain.Project{
		newTestProject("p1", "J25001"),
		newTestProject("p2", "J25002"),
		newTestProject("p3", "J25003"),
	}
	pos := []domain.PurchaseOrder{
		activePO("J25001", "MYR", "1000", "1000"),
		activePO("J25002", "MYR", "2500", "2500"),
	}
	invoices := []domain.Invoice{
		{ProjectCode: "J25001", Amount: decimal.NewFromInt(1500), CurrencyCode: "MYR", AmountMYR: decimal.NewFromInt(1500)},
		{ProjectCode: "J25003", Amount: decimal.NewFromInt(700), CurrencyCode: "MYR", AmountMYR: decimal.NewFromInt(700)},
	}

	summaries := make([]domain.ProjectFinanceSummary, 0, len(projects))
	sumOfOutstanding := decimal.Zero
	for _, p := range projects {
		s := services.BuildProjectFinanceSummary(p, pos, invoices, nil)
		summaries = append(summaries, s)
		sumOfOutstanding = sumOfOutstanding.Add(s.Outstanding)
	}

	totals := services.ComputeFinanceTotals(summaries)

	// Totals recompute outstanding from total PO minus total invoiced; the
	// per-project sum must land on the same figure.
	assert.True(t, totals.Outstanding.Equal(sumOfOutstanding), "recomputed %s vs summed %s", totals.Outstanding, sumOfOutstanding)
	assert.True(t, totals.Outstanding.Equal(decimal.NewFromInt(1300)))
	assert.True(t, totals.POReceived.Equal(decimal.NewFromInt(3500)))
	assert.True(t, totals.Invoiced.Equal(decimal.NewFromInt(2200)))
}

func TestComputeFinanceTotals_ByCurrencyAggregation(t *testing.T) {
	projects := []domain.Project{
		newTestProject("p1", "J25001"),
		newTestProject("p2", "J25002"),
	}
	pos := []domain.PurchaseOrder{
		activePO("J25001", "USD", "100", "443"),
		activePO("J25002", "USD", "50", "221.5"),
		activePO("J25002", "MYR", "800", "800"),
	}

	summaries := make([]domain.ProjectFinanceSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, services.BuildProjectFinanceSummary(p, pos, nil, nil))
	}

	totals := services.ComputeFinanceTotals(summaries)

	assert.True(t, totals.POReceivedByCurrency["USD"].Equal(decimal.NewFromInt(150)), "USD total was %s", totals.POReceivedByCurrency["USD"])
	assert.True(t, totals.POReceivedByCurrency["MYR"].Equal(decimal.NewFromInt(800)))
}
