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

type FinanceServiceTestSuite struct {
	suite.Suite
	mockProjectRepo   *MockProjectRepository
	mockPORepo        *MockPurchaseOrderRepository
	mockInvoiceRepo   *MockInvoiceRepository
	mockTimesheetRepo *MockTimesheetRepository
	service           *services.FinanceService
}

func (suite *FinanceServiceTestSuite) SetupTest() {
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockPORepo = new(MockPurchaseOrderRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockTimesheetRepo = new(MockTimesheetRepository)
	suite.service = services.NewFinanceService(suite.mockProjectRepo, suite.mockPORepo, suite.mockInvoiceRepo, suite.mockTimesheetRepo)
}

func (suite *FinanceServiceTestSuite) TestOverview() {
	projects := []domain.Project{
		newTestProject("p1", "J25001"),
		newTestProject("p2", "J25002"),
	}
	pos := []domain.PurchaseOrder{activePO("J25001", "MYR", "1000", "1000")}
	invoices := []domain.Invoice{
		{ProjectCode: "J25002", Amount: decimal.NewFromInt(400), CurrencyCode: "MYR", AmountMYR: decimal.NewFromInt(400)},
	}
	timesheets := []domain.Timesheet{
		{ProjectID: "p1", EngineerID: "e1", Hours: decimal.NewFromInt(8)},
	}

	suite.mockProjectRepo.On("ListProjects", mock.Anything, 100, (*string)(nil)).Return(projects, nil, nil).Once()
	suite.mockPORepo.On("ListPurchaseOrders", mock.Anything, false).Return(pos, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoices", mock.Anything).Return(invoices, nil).Once()
	suite.mockTimesheetRepo.On("ListTimesheets", mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).Return(timesheets, nil).Once()

	overview, err := suite.service.Overview(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(overview.ProjectSummaries, 2)
	suite.True(overview.ProjectSummaries[0].POReceived.Equal(decimal.NewFromInt(1000)))
	suite.True(overview.ProjectSummaries[0].ManHourCost.Equal(decimal.NewFromInt(3500)), "manHourCost was %s", overview.ProjectSummaries[0].ManHourCost)
	suite.True(overview.ProjectSummaries[1].Invoiced.Equal(decimal.NewFromInt(400)))
	suite.True(overview.Totals.Outstanding.Equal(decimal.NewFromInt(600)))
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestOverview_PaginatedProjects() {
	token := "page2"
	page1 := []domain.Project{newTestProject("p1", "J25001")}
	page2 := []domain.Project{newTestProject("p2", "J25002")}

	suite.mockProjectRepo.On("ListProjects", mock.Anything, 100, (*string)(nil)).Return(page1, &token, nil).Once()
	suite.mockProjectRepo.On("ListProjects", mock.Anything, 100, &token).Return(page2, nil, nil).Once()
	suite.mockPORepo.On("ListPurchaseOrders", mock.Anything, false).Return([]domain.PurchaseOrder{}, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoices", mock.Anything).Return([]domain.Invoice{}, nil).Once()
	suite.mockTimesheetRepo.On("ListTimesheets", mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.Timesheet{}, nil).Once()

	overview, err := suite.service.Overview(context.Background())

	suite.Require().NoError(err)
	suite.Len(overview.ProjectSummaries, 2)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *FinanceServiceTestSuite) TestOverview_AnyFetchFailureFailsThePass() {
	suite.mockProjectRepo.On("ListProjects", mock.Anything, 100, (*string)(nil)).Return([]domain.Project{}, nil, nil).Maybe()
	suite.mockPORepo.On("ListPurchaseOrders", mock.Anything, false).Return(nil, fmt.Errorf("db down")).Once()
	suite.mockInvoiceRepo.On("ListInvoices", mock.Anything).Return([]domain.Invoice{}, nil).Maybe()
	suite.mockTimesheetRepo.On("ListTimesheets", mock.Anything, (*time.Time)(nil), (*time.Time)(nil)).Return([]domain.Timesheet{}, nil).Maybe()

	overview, err := suite.service.Overview(context.Background())

	// A partial overview would understate the totals, so the pass fails.
	suite.Error(err)
	suite.Nil(overview)
	suite.Contains(err.Error(), "purchase orders")
}

func TestFinanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceServiceTestSuite))
}
