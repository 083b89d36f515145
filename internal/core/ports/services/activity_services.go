package services

import (
	"context"

	"github.com/talofaremit/remit_backend/internal/core/domain"
)

// ActivitySvcFacade exposes the audit log.
type ActivitySvcFacade interface {
	// ListActivities returns recent audit records, newest first.
	ListActivities(ctx context.Context, limit, offset int) ([]domain.ActivityLog, error)
}
