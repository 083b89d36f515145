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

type FeeServiceTestSuite struct {
	suite.Suite
	mockFeeRepo      *MockFeeRepository
	mockActivityRepo *MockActivityRepository
	service          *services.FeeService
	ctx              context.Context
}

func (suite *FeeServiceTestSuite) SetupTest() {
	suite.mockFeeRepo = new(MockFeeRepository)
	suite.mockActivityRepo = new(MockActivityRepository)
	suite.service = services.NewFeeService(suite.mockFeeRepo, suite.mockActivityRepo)
	suite.ctx = context.Background()
}

func (suite *FeeServiceTestSuite) TestGetFeeSettings_Existing() {
	stored := &domain.FeeSettings{
		FeeType:       domain.FeeTypePercentage,
		FeePercentage: decimal.NewFromInt(2),
		MinimumFeeNzd: decimal.NewFromInt(10),
	}
	suite.mockFeeRepo.On("FindFeeSettings", suite.ctx).Return(stored, nil).Once()

	settings, err := suite.service.GetFeeSettings(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.FeeTypePercentage, settings.FeeType)
	suite.mockFeeRepo.AssertExpectations(suite.T())
}

func (suite *FeeServiceTestSuite) TestGetFeeSettings_MissingCreatesDefault() {
	suite.mockFeeRepo.On("FindFeeSettings", suite.ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockFeeRepo.On("SaveFeeSettings", suite.ctx, mock.MatchedBy(func(s domain.FeeSettings) bool {
		return s.FeeType == domain.FeeTypeFixed &&
			s.DefaultFeeNzd.Equal(decimal.NewFromInt(5)) &&
			s.CreatedBy == "system"
	})).Return(nil).Once()

	settings, err := suite.service.GetFeeSettings(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.FeeTypeFixed, settings.FeeType)
	suite.True(settings.DefaultFeeNzd.Equal(decimal.NewFromInt(5)))
	suite.mockFeeRepo.AssertExpectations(suite.T())
}

func (suite *FeeServiceTestSuite) TestGetFeeSettings_RepoError() {
	suite.mockFeeRepo.On("FindFeeSettings", suite.ctx).Return(nil, assert.AnError).Once()

	settings, err := suite.service.GetFeeSettings(suite.ctx)

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.mockFeeRepo.AssertNotCalled(suite.T(), "SaveFeeSettings", mock.Anything, mock.Anything)
}

func (suite *FeeServiceTestSuite) TestQuoteFee_FixedSkipsBracketLookup() {
	stored := &domain.FeeSettings{
		FeeType:       domain.FeeTypeFixed,
		DefaultFeeNzd: decimal.NewFromInt(5),
	}
	suite.mockFeeRepo.On("FindFeeSettings", suite.ctx).Return(stored, nil).Once()

	fee, err := suite.service.QuoteFee(suite.ctx, decimal.NewFromInt(1000))

	suite.Require().NoError(err)
	suite.True(fee.Equal(decimal.NewFromInt(5)))
	suite.mockFeeRepo.AssertNotCalled(suite.T(), "ListFeeBrackets", mock.Anything)
}

func (suite *FeeServiceTestSuite) TestQuoteFee_BracketLoadsBrackets() {
	stored := &domain.FeeSettings{
		FeeType:       domain.FeeTypeBracket,
		DefaultFeeNzd: decimal.NewFromInt(40),
	}
	brackets := []domain.FeeBracket{
		{MinAmount: decimal.Zero, MaxAmount: decimal.NewFromInt(300), FeeAmount: decimal.NewFromInt(20)},
	}
	suite.mockFeeRepo.On("FindFeeSettings", suite.ctx).Return(stored, nil).Once()
	suite.mockFeeRepo.On("ListFeeBrackets", suite.ctx).Return(brackets, nil).Once()

	fee, err := suite.service.QuoteFee(suite.ctx, decimal.NewFromInt(250))

	suite.Require().NoError(err)
	suite.True(fee.Equal(decimal.NewFromInt(20)))
	suite.mockFeeRepo.AssertExpectations(suite.T())
}

func (suite *FeeServiceTestSuite) TestQuoteFee_NonPositiveAmount() {
	fee, err := suite.service.QuoteFee(suite.ctx, decimal.Zero)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.True(fee.IsZero())
	suite.mockFeeRepo.AssertNotCalled(suite.T(), "FindFeeSettings", mock.Anything)
}

func (suite *FeeServiceTestSuite) TestUpdateFeeSettings_Success() {
	req := dto.UpdateFeeSettingsRequest{
		FeeType:       "PERCENTAGE",
		FeePercentage: decimal.NewFromInt(2),
		MinimumFeeNzd: decimal.NewFromInt(10),
	}
	suite.mockFeeRepo.On("SaveFeeSettings", suite.ctx, mock.MatchedBy(func(s domain.FeeSettings) bool {
		return s.FeeType == domain.FeeTypePercentage && s.LastUpdatedBy == "admin-1"
	})).Return(nil).Once()
	suite.mockActivityRepo.On("SaveActivity", mock.Anything, mock.Anything).Return(nil).Maybe()

	settings, err := suite.service.UpdateFeeSettings(suite.ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.FeeTypePercentage, settings.FeeType)
	suite.mockFeeRepo.AssertExpectations(suite.T())
}

func (suite *FeeServiceTestSuite) TestUpdateFeeSettings_MinAboveMax() {
	max := decimal.NewFromInt(20)
	req := dto.UpdateFeeSettingsRequest{
		FeeType:       "PERCENTAGE",
		FeePercentage: decimal.NewFromInt(2),
		MinimumFeeNzd: decimal.NewFromInt(50),
		MaximumFeeNzd: &max,
	}

	settings, err := suite.service.UpdateFeeSettings(suite.ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(settings)
	suite.mockFeeRepo.AssertNotCalled(suite.T(), "SaveFeeSettings", mock.Anything, mock.Anything)
}

func (suite *FeeServiceTestSuite) TestUpdateFeeSettings_PercentageOutOfRange() {
	req := dto.UpdateFeeSettingsRequest{
		FeeType:       "PERCENTAGE",
		FeePercentage: decimal.NewFromInt(150),
	}

	_, err := suite.service.UpdateFeeSettings(suite.ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FeeServiceTestSuite) TestReplaceFeeBrackets_Success() {
	req := dto.ReplaceFeeBracketsRequest{
		Brackets: []dto.FeeBracketInput{
			{MinAmount: decimal.Zero, MaxAmount: decimal.NewFromInt(300), FeeAmount: decimal.NewFromInt(20)},
			{MinAmount: decimal.NewFromFloat(300.01), MaxAmount: decimal.NewFromInt(450), FeeAmount: decimal.NewFromInt(30)},
		},
	}
	suite.mockFeeRepo.On("ReplaceFeeBrackets", suite.ctx, mock.MatchedBy(func(brackets []domain.FeeBracket) bool {
		return len(brackets) == 2 && brackets[0].FeeBracketID != "" && brackets[0].CreatedBy == "admin-1"
	})).Return(nil).Once()
	suite.mockActivityRepo.On("SaveActivity", mock.Anything, mock.Anything).Return(nil).Maybe()

	brackets, err := suite.service.ReplaceFeeBrackets(suite.ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Len(brackets, 2)
	suite.mockFeeRepo.AssertExpectations(suite.T())
}

func (suite *FeeServiceTestSuite) TestReplaceFeeBrackets_MaxBelowMin() {
	req := dto.ReplaceFeeBracketsRequest{
		Brackets: []dto.FeeBracketInput{
			{MinAmount: decimal.NewFromInt(500), MaxAmount: decimal.NewFromInt(100), FeeAmount: decimal.NewFromInt(20)},
		},
	}

	brackets, err := suite.service.ReplaceFeeBrackets(suite.ctx, req, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(brackets)
	suite.mockFeeRepo.AssertNotCalled(suite.T(), "ReplaceFeeBrackets", mock.Anything, mock.Anything)
}

func (suite *FeeServiceTestSuite) TestReplaceFeeBrackets_EmptySetClearsAll() {
	req := dto.ReplaceFeeBracketsRequest{Brackets: []dto.FeeBracketInput{}}
	suite.mockFeeRepo.On("ReplaceFeeBrackets", suite.ctx, mock.MatchedBy(func(brackets []domain.FeeBracket) bool {
		return len(brackets) == 0
	})).Return(nil).Once()
	suite.mockActivityRepo.On("SaveActivity", mock.Anything, mock.Anything).Return(nil).Maybe()

	brackets, err := suite.service.ReplaceFeeBrackets(suite.ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Empty(brackets)
	suite.mockFeeRepo.AssertExpectations(suite.T())
}

func TestFeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FeeServiceTestSuite))
}
