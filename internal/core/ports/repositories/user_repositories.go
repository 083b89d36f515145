package repositories

import (
	"context"

	"github.com/talofaremit/remit_backend/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for back-office users.
type UserRepositoryFacade interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by primary key.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers returns all users ordered by username.
	ListUsers(ctx context.Context) ([]domain.User, error)
}
