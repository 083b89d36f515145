package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/talofaremit/remit_backend/internal/core/ports/repositories"
)

type PgxCounterRepository struct {
	pool *pgxpool.Pool
}

// NewPgxCounterRepository creates a new repository for sequential counters.
func NewPgxCounterRepository(pool *pgxpool.Pool) portsrepo.CounterRepository {
	return &PgxCounterRepository{pool: pool}
}

// NextCounterValue atomically increments the named counter and returns the new
// value. The single upsert statement is the atomicity guarantee: the row lock
// taken by ON CONFLICT DO UPDATE serializes concurrent callers, so no two of
// them can observe the same value.
func (r *PgxCounterRepository) NextCounterValue(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO counters (name, value)
		VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		RETURNING value;
	`
	var value int64
	if err := r.pool.QueryRow(ctx, query, name).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to increment counter %s: %w", name, err)
	}
	return value, nil
}
