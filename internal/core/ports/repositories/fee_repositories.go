package repositories

import (
	"context"

	"github.com/talofaremit/remit_backend/internal/core/domain"
)

// FeeSettingsRepository manages the fee settings singleton.
type FeeSettingsRepository interface {
	// FindFeeSettings retrieves the singleton settings row.
	// Returns apperrors.ErrNotFound when it has never been created.
	FindFeeSettings(ctx context.Context) (*domain.FeeSettings, error)

	// SaveFeeSettings upserts the singleton settings row. The upsert keeps
	// concurrent first-ever saves from producing duplicate rows.
	SaveFeeSettings(ctx context.Context, settings domain.FeeSettings) error
}

// FeeBracketRepository manages the bracket set.
type FeeBracketRepository interface {
	// ListFeeBrackets returns all brackets ordered by ascending MinAmount.
	ListFeeBrackets(ctx context.Context) ([]domain.FeeBracket, error)

	// ReplaceFeeBrackets deletes the existing set and inserts the given set in
	// a single database transaction, so no survivors from before remain.
	ReplaceFeeBrackets(ctx context.Context, brackets []domain.FeeBracket) error
}

// FeeRepositoryFacade combines all fee-related repository interfaces.
type FeeRepositoryFacade interface {
	FeeSettingsRepository
	FeeBracketRepository
}
