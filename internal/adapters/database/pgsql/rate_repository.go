package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/talofaremit/remit_backend/internal/apperrors"
	"github.com/talofaremit/remit_backend/internal/core/domain"
	portsrepo "github.com/talofaremit/remit_backend/internal/core/ports/repositories"
)

// rateSettingsSingletonID pins the settings table to exactly one row.
const rateSettingsSingletonID = 1

type PgxExchangeRateRepository struct {
	pool *pgxpool.Pool
}

// NewPgxExchangeRateRepository creates a new repository for daily rates and
// the rate settings singleton.
func NewPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{pool: pool}
}

// FindExchangeRateByDate retrieves the rate record for a YYYY-MM-DD date key.
func (r *PgxExchangeRateRepository) FindExchangeRateByDate(ctx context.Context, dateKey string) (*domain.ExchangeRate, error) {
	query := `
		SELECT exchange_rate_id, date_key, rate_wst, rate_top, rate_fjd, source, raw_response,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE date_key = $1;
	`
	var rate domain.ExchangeRate
	err := r.pool.QueryRow(ctx, query, dateKey).Scan(
		&rate.ExchangeRateID,
		&rate.DateKey,
		&rate.RateWST,
		&rate.RateTOP,
		&rate.RateFJD,
		&rate.Source,
		&rate.RawResponse,
		&rate.CreatedAt,
		&rate.CreatedBy,
		&rate.LastUpdatedAt,
		&rate.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find exchange rate for %s: %w", dateKey, err)
	}
	return &rate, nil
}

// UpsertExchangeRate inserts or replaces the rate record for its date key.
// The unique constraint on date_key keeps one record per calendar date.
func (r *PgxExchangeRateRepository) UpsertExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	query := `
		INSERT INTO exchange_rates (exchange_rate_id, date_key, rate_wst, rate_top, rate_fjd, source, raw_response,
		                            created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (date_key) DO UPDATE SET
			rate_wst = EXCLUDED.rate_wst,
			rate_top = EXCLUDED.rate_top,
			rate_fjd = EXCLUDED.rate_fjd,
			source = EXCLUDED.source,
			raw_response = EXCLUDED.raw_response,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.pool.Exec(ctx, query,
		rate.ExchangeRateID,
		rate.DateKey,
		rate.RateWST,
		rate.RateTOP,
		rate.RateFJD,
		rate.Source,
		rate.RawResponse,
		rate.CreatedAt,
		rate.CreatedBy,
		rate.LastUpdatedAt,
		rate.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert exchange rate for %s: %w", rate.DateKey, err)
	}
	return nil
}

// FindExchangeRateSettings retrieves the singleton settings row.
func (r *PgxExchangeRateRepository) FindExchangeRateSettings(ctx context.Context) (*domain.ExchangeRateSettings, error) {
	query := `
		SELECT profit_margin_percent, auto_update_enabled, update_frequency_hours, next_update_at,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rate_settings
		WHERE id = $1;
	`
	var settings domain.ExchangeRateSettings
	err := r.pool.QueryRow(ctx, query, rateSettingsSingletonID).Scan(
		&settings.ProfitMarginPercent,
		&settings.AutoUpdateEnabled,
		&settings.UpdateFrequencyHours,
		&settings.NextUpdateAt,
		&settings.CreatedAt,
		&settings.CreatedBy,
		&settings.LastUpdatedAt,
		&settings.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find exchange rate settings: %w", err)
	}
	return &settings, nil
}

// SaveExchangeRateSettings upserts the singleton settings row.
func (r *PgxExchangeRateRepository) SaveExchangeRateSettings(ctx context.Context, settings domain.ExchangeRateSettings) error {
	query := `
		INSERT INTO exchange_rate_settings (id, profit_margin_percent, auto_update_enabled, update_frequency_hours, next_update_at,
		                                    created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			profit_margin_percent = EXCLUDED.profit_margin_percent,
			auto_update_enabled = EXCLUDED.auto_update_enabled,
			update_frequency_hours = EXCLUDED.update_frequency_hours,
			next_update_at = EXCLUDED.next_update_at,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.pool.Exec(ctx, query,
		rateSettingsSingletonID,
		settings.ProfitMarginPercent,
		settings.AutoUpdateEnabled,
		settings.UpdateFrequencyHours,
		settings.NextUpdateAt,
		settings.CreatedAt,
		settings.CreatedBy,
		settings.LastUpdatedAt,
		settings.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save exchange rate settings: %w", err)
	}
	return nil
}
