package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/talofaremit/remit_backend/internal/apperrors"
	portsrepo "github.com/talofaremit/remit_backend/internal/core/ports/repositories"
	"github.com/talofaremit/remit_backend/internal/dto"
	"github.com/talofaremit/remit_backend/internal/middleware"
	"github.com/talofaremit/remit_backend/internal/platform/config"
	"github.com/talofaremit/remit_backend/internal/utils"
)

// AuthService authenticates credentials and issues JWT sessions.
type AuthService struct {
	cfg      *config.Config
	userRepo portsrepo.UserRepositoryFacade
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo}
}

// Login verifies the credentials and returns a signed JWT session.
// Unknown usernames and wrong passwords both surface as the same forbidden
// error so the response does not leak which usernames exist.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrForbidden)
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if user.Disabled {
		return nil, fmt.Errorf("%w: account disabled", apperrors.ErrForbidden)
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrForbidden)
	}

	now := time.Now()
	expiresAt := now.Add(s.cfg.JWTExpiryDuration)
	claims := middleware.SessionClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			Issuer:    s.cfg.JWTIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	}, nil
}
