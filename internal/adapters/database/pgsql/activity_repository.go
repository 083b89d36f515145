package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/talofaremit/remit_backend/internal/core/domain"
	portsrepo "github.com/talofaremit/remit_backend/internal/core/ports/repositories"
)

type PgxActivityRepository struct {
	pool *pgxpool.Pool
}

// NewPgxActivityRepository creates a new repository for the audit log.
func NewPgxActivityRepository(pool *pgxpool.Pool) portsrepo.ActivityLogRepository {
	return &PgxActivityRepository{pool: pool}
}

// SaveActivity appends one audit record.
func (r *PgxActivityRepository) SaveActivity(ctx context.Context, entry domain.ActivityLog) error {
	query := `
		INSERT INTO activity_log (activity_id, actor_id, action, entity_type, entity_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		entry.ActivityID,
		entry.ActorID,
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		entry.Detail,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save activity record: %w", err)
	}
	return nil
}

// ListActivities returns recent audit records, newest first.
func (r *PgxActivityRepository) ListActivities(ctx context.Context, limit, offset int) ([]domain.ActivityLog, error) {
	query := `
		SELECT activity_id, actor_id, action, entity_type, entity_id, detail, created_at
		FROM activity_log
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity log: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ActivityLog, error) {
		var e domain.ActivityLog
		err := row.Scan(
			&e.ActivityID,
			&e.ActorID,
			&e.Action,
			&e.EntityType,
			&e.EntityID,
			&e.Detail,
			&e.CreatedAt,
		)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect activity log: %w", err)
	}
	return entries, nil
}
