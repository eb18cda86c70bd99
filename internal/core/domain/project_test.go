package domain_test

import (
	"testing"

	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidProjectCode(t *testing.T) {
	assert.True(t, domain.ValidProjectCode("J25001"))
	assert.True(t, domain.ValidProjectCode("J25001_2"))
	assert.True(t, domain.ValidProjectCode("J00042_10"))
	assert.False(t, domain.ValidProjectCode("25001"))
	assert.False(t, domain.ValidProjectCode("J2501"))
	assert.False(t, domain.ValidProjectCode("J250011"))
	assert.False(t, domain.ValidProjectCode("J25001_"))
	assert.False(t, domain.ValidProjectCode("j25001"))
}

func TestDeriveStructureStatus(t *testing.T) {
	mk := func(statuses ...domain.ProjectStatus) []domain.Project {
		children := make([]domain.Project, len(statuses))
		for i, s := range statuses {
			children[i] = domain.Project{Status: s}
		}
		return children
	}

	assert.Equal(t, domain.StatusPreLim, domain.DeriveStructureStatus(nil))
	assert.Equal(t, domain.StatusPreLim, domain.DeriveStructureStatus(mk(domain.StatusPreLim, domain.StatusPreLim)))
	assert.Equal(t, domain.StatusOngoing, domain.DeriveStructureStatus(mk(domain.StatusPreLim, domain.StatusOngoing)))
	assert.Equal(t, domain.StatusOngoing, domain.DeriveStructureStatus(mk(domain.StatusCompleted, domain.StatusPreLim)))
	assert.Equal(t, domain.StatusOngoing, domain.DeriveStructureStatus(mk(domain.StatusCompleted, domain.StatusOngoing)))
	assert.Equal(t, domain.StatusCompleted, domain.DeriveStructureStatus(mk(domain.StatusCompleted, domain.StatusCompleted)))
}

func TestSumPlannedHours(t *testing.T) {
	children := []domain.Project{
		{PlannedHours: decimal.NewFromInt(120)},
		{PlannedHours: decimal.NewFromInt(80)},
		{PlannedHours: decimal.RequireFromString("10.5")},
	}
	assert.True(t, decimal.RequireFromString("210.5").Equal(domain.SumPlannedHours(children)))
	assert.True(t, domain.SumPlannedHours(nil).IsZero())
}

func TestEffectiveAmountMYR(t *testing.T) {
	adjusted := decimal.NewFromInt(4700)
	po := domain.PurchaseOrder{
		Amount:       decimal.NewFromInt(1000),
		CurrencyCode: "USD",
		AmountMYR:    decimal.NewFromInt(4500),
	}
	assert.True(t, decimal.NewFromInt(4500).Equal(po.EffectiveAmountMYR()))

	po.AmountMYRAdjusted = &adjusted
	assert.True(t, decimal.NewFromInt(4700).Equal(po.EffectiveAmountMYR()))
}
