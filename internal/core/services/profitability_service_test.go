package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProfitabilityServiceTestSuite struct {
	suite.Suite
	mockProjectRepo     *MockProjectRepository
	mockInvoiceRepo     *MockInvoiceRepository
	mockTimesheetRepo   *MockTimesheetRepository
	mockTeamRepo        *MockTeamMemberRepository
	mockProjectRateRepo *MockProjectRateRepository
	service             *services.ProfitabilityService
}

func (suite *ProfitabilityServiceTestSuite) SetupTest() {
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockTimesheetRepo = new(MockTimesheetRepository)
	suite.mockTeamRepo = new(MockTeamMemberRepository)
	suite.mockProjectRateRepo = new(MockProjectRateRepository)
	suite.service = services.NewProfitabilityService(suite.mockProjectRepo, suite.mockInvoiceRepo, suite.mockTimesheetRepo, suite.mockTeamRepo, suite.mockProjectRateRepo)
}

func (suite *ProfitabilityServiceTestSuite) TestProjectProfitability_RatePrecedence() {
	project := newTestProject("p1", "J25001")
	personalRate := decimal.NewFromInt(120)
	members := []domain.TeamMember{
		{TeamMemberID: "e1", Name: "A"},                           // no personal rate -> default 75
		{TeamMemberID: "e2", Name: "B", HourlyRate: &personalRate}, // personal 120
		{TeamMemberID: "e3", Name: "C", HourlyRate: &personalRate}, // overridden to 200 on this project
	}
	overrides := []domain.ProjectRate{
		{ProjectID: "p1", TeamMemberID: "e3", HourlyRate: decimal.NewFromInt(200)},
	}
	timesheets := []domain.Timesheet{
		{ProjectID: "p1", EngineerID: "e1", Hours: decimal.NewFromInt(10)},
		{ProjectID: "p1", EngineerID: "e2", Hours: decimal.NewFromInt(10)},
		{ProjectID: "p1", EngineerID: "e3", Hours: decimal.NewFromInt(10)},
	}
	invoices := []domain.Invoice{
		{ProjectCode: "J25001", AmountMYR: decimal.NewFromInt(10000)},
	}

	suite.mockProjectRepo.On("FindProjectByID", mock.Anything, "p1").Return(&project, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoicesByProjectCode", mock.Anything, "J25001").Return(invoices, nil).Once()
	suite.mockTimesheetRepo.On("ListTimesheetsByProjectID", mock.Anything, "p1").Return(timesheets, nil).Once()
	suite.mockTeamRepo.On("ListTeamMembers", mock.Anything).Return(members, nil).Once()
	suite.mockProjectRateRepo.On("ListProjectRates", mock.Anything, "p1").Return(overrides, nil).Once()

	result, err := suite.service.ProjectProfitability(context.Background(), "p1")

	suite.Require().NoError(err)
	// 10h each: default 75, personal 120, override 200.
	suite.Require().Len(result.EngineerBreakdown, 3)
	suite.True(result.EngineerBreakdown[0].Rate.Equal(decimal.NewFromInt(75)))
	suite.True(result.EngineerBreakdown[1].Rate.Equal(decimal.NewFromInt(120)))
	suite.True(result.EngineerBreakdown[2].Rate.Equal(decimal.NewFromInt(200)))
	suite.True(result.LabourCost.Equal(decimal.NewFromInt(3950)), "labourCost was %s", result.LabourCost)
	suite.True(result.Profit.Equal(decimal.NewFromInt(6050)))
	suite.True(result.MarginPercent.Equal(decimal.RequireFromString("60.5")), "margin was %s", result.MarginPercent)
}

func (suite *ProfitabilityServiceTestSuite) TestProjectProfitability_ZeroRevenueZeroMargin() {
	project := newTestProject("p1", "J25001")

	suite.mockProjectRepo.On("FindProjectByID", mock.Anything, "p1").Return(&project, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoicesByProjectCode", mock.Anything, "J25001").Return([]domain.Invoice{}, nil).Once()
	suite.mockTimesheetRepo.On("ListTimesheetsByProjectID", mock.Anything, "p1").Return([]domain.Timesheet{
		{ProjectID: "p1", EngineerID: "e1", Hours: decimal.NewFromInt(4)},
	}, nil).Once()
	suite.mockTeamRepo.On("ListTeamMembers", mock.Anything).Return([]domain.TeamMember{}, nil).Once()
	suite.mockProjectRateRepo.On("ListProjectRates", mock.Anything, "p1").Return([]domain.ProjectRate{}, nil).Once()

	result, err := suite.service.ProjectProfitability(context.Background(), "p1")

	suite.Require().NoError(err)
	suite.True(result.Revenue.IsZero())
	suite.True(result.MarginPercent.IsZero())
	suite.True(result.Profit.Equal(decimal.NewFromInt(-300)), "profit was %s", result.Profit)
}

func (suite *ProfitabilityServiceTestSuite) TestAllProjectProfitability_RateLookupFailureSwallowed() {
	personalRate := decimal.NewFromInt(100)
	projects := []domain.Project{
		newTestProject("p1", "J25001"),
		newTestProject("p2", "J25002"),
	}
	timesheets := []domain.Timesheet{
		{ProjectID: "p1", EngineerID: "e1", Hours: decimal.NewFromInt(10)},
		{ProjectID: "p2", EngineerID: "e1", Hours: decimal.NewFromInt(10)},
	}

	suite.mockProjectRepo.On("ListProjects", mock.Anything, 100, (*string)(nil)).Return(projects, nil, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoices", mock.Anything).Return([]domain.Invoice{}, nil).Once()
	suite.mockTimesheetRepo.On("ListTimesheets", mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).Return(timesheets, nil).Once()
	suite.mockTeamRepo.On("ListTeamMembers", mock.Anything).Return([]domain.TeamMember{
		{TeamMemberID: "e1", HourlyRate: &personalRate},
	}, nil).Once()
	// p1's overrides fetch fine, p2's lookup blows up.
	suite.mockProjectRateRepo.On("ListProjectRates", mock.Anything, "p1").Return([]domain.ProjectRate{
		{ProjectID: "p1", TeamMemberID: "e1", HourlyRate: decimal.NewFromInt(150)},
	}, nil).Once()
	suite.mockProjectRateRepo.On("ListProjectRates", mock.Anything, "p2").Return(nil, fmt.Errorf("rate table unavailable")).Once()

	results, err := suite.service.AllProjectProfitability(context.Background())

	// The batch succeeds; p2 falls back to the personal rate.
	suite.Require().NoError(err)
	suite.Require().Len(results, 2)
	suite.True(results[0].LabourCost.Equal(decimal.NewFromInt(1500)), "p1 labourCost was %s", results[0].LabourCost)
	suite.True(results[1].LabourCost.Equal(decimal.NewFromInt(1000)), "p2 labourCost was %s", results[1].LabourCost)
	suite.mockProjectRateRepo.AssertExpectations(suite.T())
}

func (suite *ProfitabilityServiceTestSuite) TestAllProjectProfitability_InvoiceFetchFailureFails() {
	suite.mockProjectRepo.On("ListProjects", mock.Anything, 100, (*string)(nil)).Return([]domain.Project{newTestProject("p1", "J25001")}, nil, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoices", mock.Anything).Return(nil, fmt.Errorf("db down")).Once()

	_, err := suite.service.AllProjectProfitability(context.Background())

	suite.Error(err)
}

func TestProfitabilityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfitabilityServiceTestSuite))
}
