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

// feeSettingsSingletonID pins the settings table to exactly one row.
const feeSettingsSingletonID = 1

type PgxFeeRepository struct {
	pool *pgxpool.Pool
}

// NewPgxFeeRepository creates a new repository for the fee settings singleton
// and the bracket set.
func NewPgxFeeRepository(pool *pgxpool.Pool) portsrepo.FeeRepositoryFacade {
	return &PgxFeeRepository{pool: pool}
}

// FindFeeSettings retrieves the singleton settings row.
func (r *PgxFeeRepository) FindFeeSettings(ctx context.Context) (*domain.FeeSettings, error) {
	query := `
		SELECT fee_type, default_fee_nzd, fee_percentage, minimum_fee_nzd, maximum_fee_nzd,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM fee_settings
		WHERE id = $1;
	`
	var settings domain.FeeSettings
	err := r.pool.QueryRow(ctx, query, feeSettingsSingletonID).Scan(
		&settings.FeeType,
		&settings.DefaultFeeNzd,
		&settings.FeePercentage,
		&settings.MinimumFeeNzd,
		&settings.MaximumFeeNzd,
		&settings.CreatedAt,
		&settings.CreatedBy,
		&settings.LastUpdatedAt,
		&settings.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fee settings: %w", err)
	}
	return &settings, nil
}

// SaveFeeSettings upserts the singleton settings row. Concurrent first-ever
// saves resolve through the conflict clause instead of duplicating rows.
func (r *PgxFeeRepository) SaveFeeSettings(ctx context.Context, settings domain.FeeSettings) error {
	query := `
		INSERT INTO fee_settings (id, fee_type, default_fee_nzd, fee_percentage, minimum_fee_nzd, maximum_fee_nzd,
		                          created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			fee_type = EXCLUDED.fee_type,
			default_fee_nzd = EXCLUDED.default_fee_nzd,
			fee_percentage = EXCLUDED.fee_percentage,
			minimum_fee_nzd = EXCLUDED.minimum_fee_nzd,
			maximum_fee_nzd = EXCLUDED.maximum_fee_nzd,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.pool.Exec(ctx, query,
		feeSettingsSingletonID,
		settings.FeeType,
		settings.DefaultFeeNzd,
		settings.FeePercentage,
		settings.MinimumFeeNzd,
		settings.MaximumFeeNzd,
		settings.CreatedAt,
		settings.CreatedBy,
		settings.LastUpdatedAt,
		settings.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save fee settings: %w", err)
	}
	return nil
}

// ListFeeBrackets returns all brackets ordered by ascending min amount.
func (r *PgxFeeRepository) ListFeeBrackets(ctx context.Context) ([]domain.FeeBracket, error) {
	query := `
		SELECT fee_bracket_id, min_amount, max_amount, fee_amount,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM fee_brackets
		ORDER BY min_amount ASC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fee brackets: %w", err)
	}
	defer rows.Close()

	brackets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FeeBracket, error) {
		var b domain.FeeBracket
		err := row.Scan(
			&b.FeeBracketID,
			&b.MinAmount,
			&b.MaxAmount,
			&b.FeeAmount,
			&b.CreatedAt,
			&b.CreatedBy,
			&b.LastUpdatedAt,
			&b.LastUpdatedBy,
		)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect fee brackets: %w", err)
	}
	return brackets, nil
}

// ReplaceFeeBrackets swaps the whole bracket set inside one transaction so a
// partial failure never leaves a mixed set behind.
func (r *PgxFeeRepository) ReplaceFeeBrackets(ctx context.Context, brackets []domain.FeeBracket) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin bracket replacement: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM fee_brackets;`); err != nil {
		return fmt.Errorf("failed to clear fee brackets: %w", err)
	}

	insert := `
		INSERT INTO fee_brackets (fee_bracket_id, min_amount, max_amount, fee_amount,
		                          created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for i := range brackets {
		b := &brackets[i]
		if _, err := tx.Exec(ctx, insert,
			b.FeeBracketID,
			b.MinAmount,
			b.MaxAmount,
			b.FeeAmount,
			b.CreatedAt,
			b.CreatedBy,
			b.LastUpdatedAt,
			b.LastUpdatedBy,
		); err != nil {
			return fmt.Errorf("failed to insert fee bracket: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit bracket replacement: %w", err)
	}
	return nil
}
