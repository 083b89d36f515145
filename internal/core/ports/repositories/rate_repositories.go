package repositories

import (
	"context"

	"github.com/talofaremit/remit_backend/internal/core/domain"
)

// ExchangeRateReader defines read operations for daily exchange rate records.
type ExchangeRateReader interface {
	// FindExchangeRateByDate retrieves the rate record for a YYYY-MM-DD date key.
	// Returns apperrors.ErrNotFound when no record exists for the date.
	FindExchangeRateByDate(ctx context.Context, dateKey string) (*domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for daily exchange rate records.
type ExchangeRateWriter interface {
	// UpsertExchangeRate inserts or replaces the rate record for its date key.
	// One record per date is enforced by the unique constraint.
	UpsertExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateSettingsRepository manages the rate settings singleton.
type ExchangeRateSettingsRepository interface {
	// FindExchangeRateSettings retrieves the singleton settings row.
	// Returns apperrors.ErrNotFound when it has never been created.
	FindExchangeRateSettings(ctx context.Context) (*domain.ExchangeRateSettings, error)

	// SaveExchangeRateSettings upserts the singleton settings row.
	SaveExchangeRateSettings(ctx context.Context, settings domain.ExchangeRateSettings) error
}

// ExchangeRateRepositoryFacade combines all exchange-rate repository interfaces.
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
	ExchangeRateSettingsRepository
}
