package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/juruweb/epms_backend/internal/apperrors"
	"github.com/juruweb/epms_backend/internal/core/domain"
	portssvc "github.com/juruweb/epms_backend/internal/core/ports/services"
	"github.com/juruweb/epms_backend/internal/dto"
	"github.com/juruweb/epms_backend/internal/middleware"
	"github.com/juruweb/epms_backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProjectService ---
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorID string) (*domain.Project, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) ListProjects(ctx context.Context, limit int, nextToken *string) ([]domain.Project, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.Project), next, args.Error(2)
}
func (m *MockProjectService) ListVariationOrders(ctx context.Context, parentProjectID string) ([]domain.Project, error) {
	args := m.Called(ctx, parentProjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProjectService) UpdateProject(ctx context.Context, projectID string, req dto.UpdateProjectRequest, updaterID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID, req, updaterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}
func (m *MockProjectService) DeleteProject(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ProjectSvcFacade = (*MockProjectService)(nil)

// --- Test Suite ---
type ProjectHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockProjectService *MockProjectService
	jwtSecret          string
}

func (suite *ProjectHandlerTestSuite) generateTestToken(memberID string) string {
	token, err := utils.GenerateJWT(memberID, suite.jwtSecret, time.Hour, "epms-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *ProjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	registerCustomValidators()

	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockProjectService = new(MockProjectService)

	v1 := suite.router.Group("/api/v1")
	registerProjectRoutes(v1, suite.mockProjectService)
}

func (suite *ProjectHandlerTestSuite) authedRequest(method, url string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader([]byte{})
	} else {
		reader = bytes.NewReader(body)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ProjectHandlerTestSuite) TestCreateProject_Success() {
	reqBody := dto.CreateProjectRequest{
		ProjectCode: "J12345",
		Title:       "Substation upgrade",
		ClientName:  "TNB",
		BillingType: "lump_sum",
	}
	expected := &domain.Project{
		ProjectID:   uuid.NewString(),
		ProjectCode: "J12345",
		Title:       "Substation upgrade",
		ClientName:  "TNB",
		Status:      domain.StatusPreLim,
		BillingType: domain.BillingLumpSum,
		ProjectType: domain.TypeStandard,
	}

	suite.mockProjectService.On("CreateProject",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateProjectRequest) bool { return r.ProjectCode == "J12345" }),
		mock.AnythingOfType("string"),
	).Return(expected, nil).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.authedRequest(http.MethodPost, "/api/v1/projects", body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ProjectResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.ProjectID, resp.ProjectID)
	suite.Equal("pre-lim", resp.Status)

	suite.mockProjectService.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_BadProjectCode() {
	reqBody := dto.CreateProjectRequest{
		ProjectCode: "X999",
		Title:       "Bad code",
		ClientName:  "TNB",
		BillingType: "hourly",
	}

	body, _ := json.Marshal(reqBody)
	w := suite.authedRequest(http.MethodPost, "/api/v1/projects", body)

	// Binding validation rejects the code before the service is reached.
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProjectService.AssertNotCalled(suite.T(), "CreateProject")
}

func (suite *ProjectHandlerTestSuite) TestListProjects_PassesToken() {
	token := "b3BhcXVl"
	next := "bmV4dA"
	projects := []domain.Project{
		{ProjectID: uuid.NewString(), ProjectCode: "J20001", Status: domain.StatusOngoing},
	}

	suite.mockProjectService.On("ListProjects", mock.Anything, 5, &token).
		Return(projects, &next, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/projects?limit=5&nextToken="+token, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListProjectsResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Projects, 1)
	suite.NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)

	suite.mockProjectService.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestGetProject_NotFound() {
	projectID := uuid.NewString()
	suite.mockProjectService.On("GetProjectByID", mock.Anything, projectID).
		Return(nil, apperrors.NewNotFoundError("project not found")).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/projects/"+projectID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockProjectService.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject_WithChildrenRejected() {
	projectID := uuid.NewString()
	suite.mockProjectService.On("DeleteProject", mock.Anything, projectID).
		Return(apperrors.NewValidationError("project has child projects")).Once()

	w := suite.authedRequest(http.MethodDelete, "/api/v1/projects/"+projectID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProjectService.AssertExpectations(suite.T())
}

func (suite *ProjectHandlerTestSuite) TestRequestWithoutToken_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockProjectService.AssertNotCalled(suite.T(), "ListProjects")
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject_Success() {
	projectID := uuid.NewString()
	newTitle := "Substation upgrade phase 2"
	hours := decimal.NewFromInt(120)
	expected := &domain.Project{
		ProjectID:    projectID,
		ProjectCode:  "J12345",
		Title:        newTitle,
		Status:       domain.StatusOngoing,
		BillingType:  domain.BillingHourly,
		ProjectType:  domain.TypeStandard,
		PlannedHours: hours,
	}

	suite.mockProjectService.On("UpdateProject",
		mock.Anything, projectID,
		mock.MatchedBy(func(r dto.UpdateProjectRequest) bool {
			return r.Title != nil && *r.Title == newTitle
		}),
		mock.AnythingOfType("string"),
	).Return(expected, nil).Once()

	body, _ := json.Marshal(dto.UpdateProjectRequest{Title: &newTitle, PlannedHours: &hours})
	w := suite.authedRequest(http.MethodPut, "/api/v1/projects/"+projectID, body)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ProjectResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(newTitle, resp.Title)
	suite.True(resp.PlannedHours.Equal(hours))

	suite.mockProjectService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestProjectHandler(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
