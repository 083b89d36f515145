package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/talofaremit/remit_backend/internal/core/domain"
	"github.com/talofaremit/remit_backend/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for rate quoting.
type ExchangeRateReaderSvc interface {
	// GetDailyRates returns base and margin-adjusted rates for every supported
	// currency on the given date, falling back to built-in defaults when no
	// record exists. Never fails for a well-formed date key.
	GetDailyRates(ctx context.Context, dateKey string) (*dto.DailyRatesResponse, error)

	// GetEffectiveRate returns the base and margin-adjusted rate for one
	// destination currency on the given date.
	GetEffectiveRate(ctx context.Context, dateKey string, currency domain.Currency) (base, effective decimal.Decimal, err error)
}

// ExchangeRateWriterSvc defines admin mutations for rates and rate settings.
type ExchangeRateWriterSvc interface {
	// UpsertExchangeRate sets the base rates for a date (manual admin entry).
	UpsertExchangeRate(ctx context.Context, req dto.UpsertExchangeRateRequest, actorID string) (*domain.ExchangeRate, error)

	// UpdateRateSettings updates the rate settings singleton.
	UpdateRateSettings(ctx context.Context, req dto.UpdateRateSettingsRequest, actorID string) (*domain.ExchangeRateSettings, error)

	// RefreshRatesFromAPI fetches today's rates from the external feed and
	// stores them with source API.
	RefreshRatesFromAPI(ctx context.Context, actorID string) (*domain.ExchangeRate, error)
}

// ExchangeRateSettingsReaderSvc exposes the rate settings singleton.
type ExchangeRateSettingsReaderSvc interface {
	// GetRateSettings returns the settings singleton, defaults if absent.
	GetRateSettings(ctx context.Context) (*domain.ExchangeRateSettings, error)
}

// ExchangeRateSvcFacade combines all exchange-rate service interfaces.
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
	ExchangeRateSettingsReaderSvc
}
