package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/juruweb/epms_backend/internal/apperrors"
	"github.com/juruweb/epms_backend/internal/core/domain"
	"github.com/juruweb/epms_backend/internal/core/services"
	"github.com/juruweb/epms_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo *MockExchangeRateRepository
	service      *services.ExchangeRateService
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.service = services.NewExchangeRateService(suite.mockRateRepo)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate() {
	req := dto.CreateExchangeRateRequest{
		FromCurrencyCode: "USD",
		Rate:             decimal.RequireFromString("4.43"),
		DateEffective:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockRateRepo.On("SaveExchangeRate", mock.Anything, mock.AnythingOfType("domain.ExchangeRate")).Return(nil).Once()

	rate, err := suite.service.CreateExchangeRate(context.Background(), req, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(rate.ExchangeRateID)
	// ToCurrencyCode defaults to the base currency, source to manual.
	suite.Equal("MYR", rate.ToCurrencyCode)
	suite.Equal(domain.RateSourceManual, rate.Source)
	suite.Equal("user-1", rate.CreatedBy)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_NonPositiveRateRejected() {
	req := dto.CreateExchangeRateRequest{
		FromCurrencyCode: "USD",
		Rate:             decimal.Zero,
		DateEffective:    time.Now(),
	}

	_, err := suite.service.CreateExchangeRate(context.Background(), req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate")
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_SamePairRejected() {
	req := dto.CreateExchangeRateRequest{
		FromCurrencyCode: "MYR",
		Rate:             decimal.NewFromInt(1),
		DateEffective:    time.Now(),
	}

	_, err := suite.service.CreateExchangeRate(context.Background(), req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_NormalizesCase() {
	expected := &domain.ExchangeRate{ExchangeRateID: "r1", FromCurrencyCode: "USD", ToCurrencyCode: "MYR"}

	suite.mockRateRepo.On("FindExchangeRate", mock.Anything, "USD", "MYR").Return(expected, nil).Once()

	rate, err := suite.service.GetExchangeRate(context.Background(), "usd", "myr")

	suite.Require().NoError(err)
	suite.Equal("r1", rate.ExchangeRateID)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_BadCodeRejected() {
	_, err := suite.service.GetExchangeRate(context.Background(), "US", "MYR")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestListExchangeRates_DefaultsPaging() {
	suite.mockRateRepo.On("ListExchangeRates", mock.Anything, (*string)(nil), (*string)(nil), (*time.Time)(nil), 1, 20).
		Return([]domain.ExchangeRate{}, 0, nil).Once()

	_, _, err := suite.service.ListExchangeRates(context.Background(), nil, nil, nil, 0, 0)

	suite.Require().NoError(err)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
