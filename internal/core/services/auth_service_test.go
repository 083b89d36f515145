package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"github.com/talofaremit/remit_backend/internal/apperrors"
	"github.com/talofaremit/remit_backend/internal/core/domain"
	"github.com/talofaremit/remit_backend/internal/core/services"
	"github.com/talofaremit/remit_backend/internal/dto"
	"github.com/talofaremit/remit_backend/internal/middleware"
	"github.com/talofaremit/remit_backend/internal/platform/config"
	"github.com/talofaremit/remit_backend/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	cfg          *config.Config
	service      *services.AuthService
	ctx          context.Context
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret",
		JWTIssuer:         "remit-backend-test",
		JWTExpiryDuration: time.Hour,
	}
	suite.service = services.NewAuthService(suite.cfg, suite.mockUserRepo)
	suite.ctx = context.Background()
}

func (suite *AuthServiceTestSuite) storedUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       "user-1",
		Username:     "mele",
		Name:         "Mele Fifita",
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	user := suite.storedUser("correct horse")
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "mele").Return(user, nil).Once()

	resp, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "mele", Password: "correct horse"})

	suite.Require().NoError(err)
	suite.Equal("user-1", resp.User.UserID)
	suite.WithinDuration(time.Now().Add(time.Hour), resp.ExpiresAt, 5*time.Second)

	claims := &middleware.SessionClaims{}
	parsed, err := jwt.ParseWithClaims(resp.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(suite.cfg.JWTSecret), nil
	})
	suite.Require().NoError(err)
	suite.True(parsed.Valid)
	suite.Equal("user-1", claims.Subject)
	suite.Equal("remit-backend-test", claims.Issuer)
	suite.Equal("ADMIN", claims.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	user := suite.storedUser("correct horse")
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "mele").Return(user, nil).Once()

	resp, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "mele", Password: "battery staple"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(resp)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownUserLooksLikeWrongPassword() {
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()
	user := suite.storedUser("correct horse")
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "mele").Return(user, nil).Once()

	_, unknownErr := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "ghost", Password: "anything"})
	_, wrongPassErr := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "mele", Password: "wrong"})

	suite.Require().Error(unknownErr)
	suite.Require().Error(wrongPassErr)
	// Same message either way so responses cannot be used to enumerate usernames.
	suite.Equal(unknownErr.Error(), wrongPassErr.Error())
}

func (suite *AuthServiceTestSuite) TestLogin_DisabledAccount() {
	user := suite.storedUser("correct horse")
	user.Disabled = true
	suite.mockUserRepo.On("FindUserByUsername", suite.ctx, "mele").Return(user, nil).Once()

	resp, err := suite.service.Login(suite.ctx, dto.LoginRequest{Username: "mele", Password: "correct horse"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(resp)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
