package repositories

import (
	"context"

	"github.com/talofaremit/remit_backend/internal/core/domain"
)

// ActivityLogRepository appends and lists audit log entries.
type ActivityLogRepository interface {
	// SaveActivity appends one audit record.
	SaveActivity(ctx context.Context, entry domain.ActivityLog) error

	// ListActivities returns recent audit records, newest first.
	ListActivities(ctx context.Context, limit, offset int) ([]domain.ActivityLog, error)
}
