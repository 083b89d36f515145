package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/talofaremit/remit_backend/internal/apperrors"
	"github.com/talofaremit/remit_backend/internal/core/domain"
	portsrepo "github.com/talofaremit/remit_backend/internal/core/ports/repositories"
	"github.com/talofaremit/remit_backend/internal/dto"
	"github.com/talofaremit/remit_backend/internal/middleware"
	"github.com/talofaremit/remit_backend/internal/utils/pricing"
)

// RateFetcher retrieves the day's base rates from the external feed.
type RateFetcher interface {
	FetchDailyRates(ctx context.Context) (*domain.FetchedRates, error)
}

// ExchangeRateService provides business logic for daily exchange rates and
// rate settings. Rate lookups never fail for a well-formed date: built-in
// default base rates cover dates with no record, so the business can always
// quote some rate.
type ExchangeRateService struct {
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	activityRepo portsrepo.ActivityLogRepository
	fetcher      RateFetcher
	todayKey     func() string
}

// NewExchangeRateService creates a new ExchangeRateService. fetcher may be nil
// when no external feed is configured; todayKey resolves "today" in the
// operating time zone.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, activityRepo portsrepo.ActivityLogRepository, fetcher RateFetcher, todayKey func() string) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo:     rateRepo,
		activityRepo: activityRepo,
		fetcher:      fetcher,
		todayKey:     todayKey,
	}
}

// GetRateSettings returns the settings singleton, or the documented defaults
// when it has never been created. Missing settings are not an error.
func (s *ExchangeRateService) GetRateSettings(ctx context.Context) (*domain.ExchangeRateSettings, error) {
	settings, err := s.rateRepo.FindExchangeRateSettings(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			defaults := domain.DefaultExchangeRateSettings()
			return &defaults, nil
		}
		return nil, fmt.Errorf("failed to get rate settings in service: %w", err)
	}
	return settings, nil
}

// GetEffectiveRate returns the base and margin-adjusted rate for one
// destination currency on the given date. The base rate comes from the day's
// record or the built-in default; the margin comes from the settings singleton.
func (s *ExchangeRateService) GetEffectiveRate(ctx context.Context, dateKey string, currency domain.Currency) (decimal.Decimal, decimal.Decimal, error) {
	if !domain.IsSupportedCurrency(currency) {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("%w: unsupported currency '%s'", apperrors.ErrValidation, currency)
	}
	if dateKey == "" {
		dateKey = s.todayKey()
	}

	base := domain.DefaultBaseRates[currency]
	record, err := s.rateRepo.FindExchangeRateByDate(ctx, dateKey)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("failed to look up exchange rate in service: %w", err)
	}
	if record != nil {
		if r, ok := record.BaseRate(currency); ok {
			base = r
		}
	}

	settings, err := s.GetRateSettings(ctx)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, err
	}

	return base, pricing.EffectiveRate(base, settings.ProfitMarginPercent), nil
}

// GetDailyRates returns base and effective rates for all supported currencies
// on the given date plus the margin used. Source is DEFAULT when no record
// exists for the date.
func (s *ExchangeRateService) GetDailyRates(ctx context.Context, dateKey string) (*dto.DailyRatesResponse, error) {
	if dateKey == "" {
		dateKey = s.todayKey()
	}
	if _, err := time.Parse("2006-01-02", dateKey); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}

	record, err := s.rateRepo.FindExchangeRateByDate(ctx, dateKey)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up exchange rate in service: %w", err)
	}

	settings, err := s.GetRateSettings(ctx)
	if err != nil {
		return nil, err
	}

	source := "DEFAULT"
	if record != nil {
		source = string(record.Source)
	}

	resp := &dto.DailyRatesResponse{
		DateKey:             dateKey,
		ProfitMarginPercent: settings.ProfitMarginPercent,
		Source:              source,
	}
	for _, currency := range domain.SupportedCurrencies {
		base := domain.DefaultBaseRates[currency]
		if record != nil {
			if r, ok := record.BaseRate(currency); ok {
				base = r
			}
		}
		resp.Quotes = append(resp.Quotes, dto.RateQuoteResponse{
			Currency:      string(currency),
			BaseRate:      base,
			EffectiveRate: pricing.EffectiveRate(base, settings.ProfitMarginPercent),
		})
	}
	return resp, nil
}

// UpsertExchangeRate sets the base rates for a date (manual admin entry).
func (s *ExchangeRateService) UpsertExchangeRate(ctx context.Context, req dto.UpsertExchangeRateRequest, actorID string) (*domain.ExchangeRate, error) {
	for _, r := range []decimal.Decimal{req.RateWST, req.RateTOP, req.RateFJD} {
		if r.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: exchange rates must be positive", apperrors.ErrValidation)
		}
	}

	now := time.Now()
	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		DateKey:        req.DateKey,
		RateWST:        req.RateWST,
		RateTOP:        req.RateTOP,
		RateFJD:        req.RateFJD,
		Source:         domain.RateSourceManual,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.rateRepo.UpsertExchangeRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to upsert exchange rate in service: %w", err)
	}

	recordActivity(ctx, s.activityRepo, actorID, "EXCHANGE_RATE_UPSERTED", "exchange_rate", rate.DateKey, "manual rate entry")
	return &rate, nil
}

// UpdateRateSettings updates the rate settings singleton.
func (s *ExchangeRateService) UpdateRateSettings(ctx context.Context, req dto.UpdateRateSettingsRequest, actorID string) (*domain.ExchangeRateSettings, error) {
	if req.ProfitMarginPercent.IsNegative() || req.ProfitMarginPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("%w: profit margin must be between 0 and 100", apperrors.ErrValidation)
	}

	frequency := req.UpdateFrequencyHours
	if frequency == 0 {
		frequency = 24
	}

	now := time.Now()
	settings := domain.ExchangeRateSettings{
		ProfitMarginPercent:  req.ProfitMarginPercent,
		AutoUpdateEnabled:    req.AutoUpdateEnabled,
		UpdateFrequencyHours: frequency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	if req.AutoUpdateEnabled {
		next := now.Add(time.Duration(frequency) * time.Hour).Format(time.RFC3339)
		settings.NextUpdateAt = &next
	}

	if err := s.rateRepo.SaveExchangeRateSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save rate settings in service: %w", err)
	}

	recordActivity(ctx, s.activityRepo, actorID, "RATE_SETTINGS_UPDATED", "exchange_rate_settings", "singleton", "margin "+req.ProfitMarginPercent.String()+"%")
	return &settings, nil
}

// RefreshRatesFromAPI fetches today's rates from the external feed and stores
// them with source API and the raw payload for audit.
func (s *ExchangeRateService) RefreshRatesFromAPI(ctx context.Context, actorID string) (*domain.ExchangeRate, error) {
	if s.fetcher == nil {
		return nil, fmt.Errorf("%w: no rate feed configured", apperrors.ErrValidation)
	}

	fetched, err := s.fetcher.FetchDailyRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates from feed: %w", err)
	}

	now := time.Now()
	raw := fetched.RawResponse
	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		DateKey:        s.todayKey(),
		RateWST:        fetched.RateWST,
		RateTOP:        fetched.RateTOP,
		RateFJD:        fetched.RateFJD,
		Source:         domain.RateSourceAPI,
		RawResponse:    &raw,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.rateRepo.UpsertExchangeRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to store fetched rates in service: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Exchange rates refreshed from feed", "date_key", rate.DateKey)
	recordActivity(ctx, s.activityRepo, actorID, "EXCHANGE_RATE_REFRESHED", "exchange_rate", rate.DateKey, "fetched from rate feed")
	return &rate, nil
}
