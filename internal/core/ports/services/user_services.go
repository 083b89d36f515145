package services

import (
	"context"

	"github.com/talofaremit/remit_backend/internal/core/domain"
	"github.com/talofaremit/remit_backend/internal/dto"
)

// UserSvcFacade manages back-office logins.
type UserSvcFacade interface {
	// CreateUser provisions a login with a bcrypt-hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, actorID string) (*domain.User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers returns all users.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// AuthSvcFacade authenticates credentials and issues session tokens.
type AuthSvcFacade interface {
	// Login verifies the credentials and returns a signed JWT session.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
