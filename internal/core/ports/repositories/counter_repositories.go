package repositories

import "context"

// CounterRepository allocates sequential human-readable identifiers.
type CounterRepository interface {
	// NextCounterValue atomically increments the named counter and returns the
	// new value. Concurrent calls must never observe the same value; the
	// increment is a single read-modify-write statement, not read-then-write.
	NextCounterValue(ctx context.Context, name string) (int64, error)
}
