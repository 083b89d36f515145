package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/talofaremit/remit_backend/internal/apperrors"
	"github.com/talofaremit/remit_backend/internal/core/domain"
	"github.com/talofaremit/remit_backend/internal/core/services"
	"github.com/talofaremit/remit_backend/internal/dto"
)

const testTodayKey = "2025-03-14"

type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo     *MockExchangeRateRepository
	mockActivityRepo *MockActivityRepository
	mockFetcher      *MockRateFetcher
	service          *services.ExchangeRateService
	ctx              context.Context
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockActivityRepo = new(MockActivityRepository)
	suite.mockFetcher = new(MockRateFetcher)
	suite.service = services.NewExchangeRateService(
		suite.mockRateRepo,
		suite.mockActivityRepo,
		suite.mockFetcher,
		func() string { return testTodayKey },
	)
	suite.ctx = context.Background()
}

func (suite *ExchangeRateServiceTestSuite) TestGetEffectiveRate_StoredRateWithMargin() {
	record := &domain.ExchangeRate{
		DateKey: testTodayKey,
		RateWST: decimal.NewFromFloat(2.0),
		RateTOP: decimal.NewFromFloat(1.5),
		RateFJD: decimal.NewFromFloat(1.3),
		Source:  domain.RateSourceManual,
	}
	settings := &domain.ExchangeRateSettings{ProfitMarginPercent: decimal.NewFromInt(5)}
	suite.mockRateRepo.On("FindExchangeRateByDate", suite.ctx, testTodayKey).Return(record, nil).Once()
	suite.mockRateRepo.On("FindExchangeRateSettings", suite.ctx).Return(settings, nil).Once()

	base, effective, err := suite.service.GetEffectiveRate(suite.ctx, "", domain.CurrencyWST)

	suite.Require().NoError(err)
	suite.True(base.Equal(decimal.NewFromFloat(2.0)), "base %s", base)
	suite.True(effective.Equal(decimal.NewFromFloat(2.1)), "effective %s", effective)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestGetEffectiveRate_FallsBackToDefaults() {
	suite.mockRateRepo.On("FindExchangeRateByDate", suite.ctx, "2025-01-01").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateRepo.On("FindExchangeRateSettings", suite.ctx).Return(nil, apperrors.ErrNotFound).Once()

	base, effective, err := suite.service.GetEffectiveRate(suite.ctx, "2025-01-01", domain.CurrencyTOP)

	suite.Require().NoError(err)
	suite.True(base.Equal(domain.DefaultBaseRates[domain.CurrencyTOP]))
	// Default settings carry no margin, so effective equals base.
	suite.True(effective.Equal(base))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestGetEffectiveRate_UnsupportedCurrency() {
	_, _, err := suite.service.GetEffectiveRate(suite.ctx, testTodayKey, domain.Currency("USD"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindExchangeRateByDate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestGetDailyRates_NoRecordIsDefaultSource() {
	suite.mockRateRepo.On("FindExchangeRateByDate", suite.ctx, testTodayKey).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRateRepo.On("FindExchangeRateSettings", suite.ctx).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.GetDailyRates(suite.ctx, "")

	suite.Require().NoError(err)
	suite.Equal(testTodayKey, resp.DateKey)
	suite.Equal("DEFAULT", resp.Source)
	suite.Len(resp.Quotes, len(domain.SupportedCurrencies))
	for _, q := range resp.Quotes {
		suite.True(q.BaseRate.Equal(domain.DefaultBaseRates[domain.Currency(q.Currency)]))
	}
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestGetDailyRates_ManualRecordSource() {
	record := &domain.ExchangeRate{
		DateKey: "2025-02-02",
		RateWST: decimal.NewFromFloat(2.2),
		RateTOP: decimal.NewFromFloat(1.5),
		RateFJD: decimal.NewFromFloat(1.4),
		Source:  domain.RateSourceManual,
	}
	settings := &domain.ExchangeRateSettings{ProfitMarginPercent: decimal.NewFromInt(10)}
	suite.mockRateRepo.On("FindExchangeRateByDate", suite.ctx, "2025-02-02").Return(record, nil).Once()
	suite.mockRateRepo.On("FindExchangeRateSettings", suite.ctx).Return(settings, nil).Once()

	resp, err := suite.service.GetDailyRates(suite.ctx, "2025-02-02")

	suite.Require().NoError(err)
	suite.Equal("MANUAL", resp.Source)
	suite.True(resp.ProfitMarginPercent.Equal(decimal.NewFromInt(10)))
	for _, q := range resp.Quotes {
		if q.Currency == "WST" {
			suite.True(q.BaseRate.Equal(decimal.NewFromFloat(2.2)))
			suite.True(q.EffectiveRate.Equal(decimal.NewFromFloat(2.42)), "effective %s", q.EffectiveRate)
		}
	}
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestGetDailyRates_MalformedDate() {
	resp, err := suite.service.GetDailyRates(suite.ctx, "14-03-2025")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(resp)
}

func (suite *ExchangeRateServiceTestSuite) TestUpsertExchangeRate_Success() {
	req := dto.UpsertExchangeRateRequest{
		DateKey: "2025-03-15",
		RateWST: decimal.NewFromFloat(2.15),
		RateTOP: decimal.NewFromFloat(1.45),
		RateFJD: decimal.NewFromFloat(1.35),
	}
	suite.mockRateRepo.On("UpsertExchangeRate", suite.ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.DateKey == "2025-03-15" &&
			r.Source == domain.RateSourceManual &&
			r.ExchangeRateID != "" &&
			r.CreatedBy == "admin-1"
	})).Return(nil).Once()
	suite.mockActivityRepo.On("SaveActivity", mock.Anything, mock.Anything).Return(nil).Maybe()

	rate, err := suite.service.UpsertExchangeRate(suite.ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceManual, rate.Source)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestUpsertExchangeRate_NonPositiveRate() {
	req := dto.UpsertExchangeRateRequest{
		DateKey: "2025-03-15",
		RateWST: decimal.Zero,
		RateTOP: decimal.NewFromFloat(1.45),
		RateFJD: decimal.NewFromFloat(1.35),
	}

	rate, err := suite.service.UpsertExchangeRate(suite.ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(rate)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "UpsertExchangeRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestUpdateRateSettings_DefaultsFrequencyAndSetsNextUpdate() {
	req := dto.UpdateRateSettingsRequest{
		ProfitMarginPercent: decimal.NewFromInt(5),
		AutoUpdateEnabled:   true,
	}
	suite.mockRateRepo.On("SaveExchangeRateSettings", suite.ctx, mock.MatchedBy(func(s domain.ExchangeRateSettings) bool {
		return s.UpdateFrequencyHours == 24 && s.NextUpdateAt != nil
	})).Return(nil).Once()
	suite.mockActivityRepo.On("SaveActivity", mock.Anything, mock.Anything).Return(nil).Maybe()

	settings, err := suite.service.UpdateRateSettings(suite.ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(24, settings.UpdateFrequencyHours)
	suite.NotNil(settings.NextUpdateAt)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestUpdateRateSettings_AutoDisabledHasNoNextUpdate() {
	req := dto.UpdateRateSettingsRequest{
		ProfitMarginPercent:  decimal.NewFromInt(3),
		AutoUpdateEnabled:    false,
		UpdateFrequencyHours: 12,
	}
	suite.mockRateRepo.On("SaveExchangeRateSettings", suite.ctx, mock.Anything).Return(nil).Once()
	suite.mockActivityRepo.On("SaveActivity", mock.Anything, mock.Anything).Return(nil).Maybe()

	settings, err := suite.service.UpdateRateSettings(suite.ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(12, settings.UpdateFrequencyHours)
	suite.Nil(settings.NextUpdateAt)
}

func (suite *ExchangeRateServiceTestSuite) TestUpdateRateSettings_MarginOutOfRange() {
	req := dto.UpdateRateSettingsRequest{ProfitMarginPercent: decimal.NewFromInt(101)}

	settings, err := suite.service.UpdateRateSettings(suite.ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(settings)
}

func (suite *ExchangeRateServiceTestSuite) TestRefreshRatesFromAPI_Success() {
	fetched := &domain.FetchedRates{
		RateWST:     decimal.NewFromFloat(2.08),
		RateTOP:     decimal.NewFromFloat(1.41),
		RateFJD:     decimal.NewFromFloat(1.32),
		RawResponse: `{"base":"NZD"}`,
	}
	suite.mockFetcher.On("FetchDailyRates", suite.ctx).Return(fetched, nil).Once()
	suite.mockRateRepo.On("UpsertExchangeRate", suite.ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.DateKey == testTodayKey &&
			r.Source == domain.RateSourceAPI &&
			r.RawResponse != nil && *r.RawResponse == `{"base":"NZD"}`
	})).Return(nil).Once()
	suite.mockActivityRepo.On("SaveActivity", mock.Anything, mock.Anything).Return(nil).Maybe()

	rate, err := suite.service.RefreshRatesFromAPI(suite.ctx, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceAPI, rate.Source)
	suite.True(rate.RateWST.Equal(decimal.NewFromFloat(2.08)))
	suite.mockFetcher.AssertExpectations(suite.T())
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestRefreshRatesFromAPI_NoFetcherConfigured() {
	svc := services.NewExchangeRateService(suite.mockRateRepo, suite.mockActivityRepo, nil, func() string { return testTodayKey })

	rate, err := svc.RefreshRatesFromAPI(suite.ctx, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(rate)
}

func (suite *ExchangeRateServiceTestSuite) TestRefreshRatesFromAPI_FetchError() {
	suite.mockFetcher.On("FetchDailyRates", suite.ctx).Return(nil, assert.AnError).Once()

	rate, err := suite.service.RefreshRatesFromAPI(suite.ctx, "admin-1")

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "UpsertExchangeRate", mock.Anything, mock.Anything)
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
