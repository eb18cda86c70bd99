package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/juruweb/epms_backend/internal/apperrors"
	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/core/services"
	"github.com/juruweb/epms_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TimesheetServiceTestSuite struct {
	suite.Suite
	mockTimesheetRepo *MockTimesheetRepository
	mockProjectRepo   *MockProjectRepository
	mockTeamRepo      *MockTeamMemberRepository
	service           *services.TimesheetService
	ctx               context.Context
}

func (suite *TimesheetServiceTestSuite) SetupTest() {
	suite.mockTimesheetRepo = new(MockTimesheetRepository)
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockTeamRepo = new(MockTeamMemberRepository)
	suite.service = services.NewTimesheetService(suite.mockTimesheetRepo, suite.mockProjectRepo, suite.mockTeamRepo)
	suite.ctx = context.Background()
}

func (suite *TimesheetServiceTestSuite) TestLogTimesheet_Success() {
	projectID := uuid.NewString()
	engineerID := uuid.NewString()
	project := &domain.Project{ProjectID: projectID, ProjectCode: "J12345", ProjectType: domain.TypeStandard}
	member := &domain.TeamMember{TeamMemberID: engineerID, Name: "Aisyah"}

	suite.mockProjectRepo.On("FindProjectByID", suite.ctx, projectID).Return(project, nil).Once()
	suite.mockTeamRepo.On("FindTeamMemberByID", suite.ctx, engineerID).Return(member, nil).Once()
	suite.mockTimesheetRepo.On("SaveTimesheet", suite.ctx, mock.MatchedBy(func(ts domain.Timesheet) bool {
		return ts.ProjectID == projectID && ts.EngineerID == engineerID && ts.Hours.Equal(decimal.NewFromInt(8))
	})).Return(nil).Once()

	ts, err := suite.service.LogTimesheet(suite.ctx, dto.CreateTimesheetRequest{
		EngineerID: engineerID,
		ProjectID:  projectID,
		Hours:      decimal.NewFromInt(8),
		WorkDate:   time.Now(),
	}, "admin")

	suite.Require().NoError(err)
	suite.NotEmpty(ts.TimesheetID)
	suite.mockTimesheetRepo.AssertExpectations(suite.T())
}

func (suite *TimesheetServiceTestSuite) TestLogTimesheet_HoursOverDailyCap() {
	_, err := suite.service.LogTimesheet(suite.ctx, dto.CreateTimesheetRequest{
		EngineerID: uuid.NewString(),
		ProjectID:  uuid.NewString(),
		Hours:      decimal.NewFromInt(25),
		WorkDate:   time.Now(),
	}, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTimesheetRepo.AssertNotCalled(suite.T(), "SaveTimesheet")
}

func (suite *TimesheetServiceTestSuite) TestLogTimesheet_ZeroHoursRejected() {
	_, err := suite.service.LogTimesheet(suite.ctx, dto.CreateTimesheetRequest{
		EngineerID: uuid.NewString(),
		ProjectID:  uuid.NewString(),
		Hours:      decimal.Zero,
		WorkDate:   time.Now(),
	}, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TimesheetServiceTestSuite) TestLogTimesheet_ContainerProjectRejected() {
	projectID := uuid.NewString()
	container := &domain.Project{ProjectID: projectID, ProjectCode: "J30000", ProjectType: domain.TypeStructureContainer}

	suite.mockProjectRepo.On("FindProjectByID", suite.ctx, projectID).Return(container, nil).Once()

	_, err := suite.service.LogTimesheet(suite.ctx, dto.CreateTimesheetRequest{
		EngineerID: uuid.NewString(),
		ProjectID:  projectID,
		Hours:      decimal.NewFromInt(4),
		WorkDate:   time.Now(),
	}, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "structure container")
	suite.mockTimesheetRepo.AssertNotCalled(suite.T(), "SaveTimesheet")
}

func (suite *TimesheetServiceTestSuite) TestListTimesheets_InvertedRangeRejected() {
	from := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -3)

	_, err := suite.service.ListTimesheets(suite.ctx, &from, &to)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTimesheetRepo.AssertNotCalled(suite.T(), "ListTimesheets")
}

func TestTimesheetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TimesheetServiceTestSuite))
}
