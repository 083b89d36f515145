package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/talofaremit/remit_backend/internal/core/domain"
	portsrepo "github.com/talofaremit/remit_backend/internal/core/ports/repositories"
	"github.com/talofaremit/remit_backend/internal/middleware"
)

// ActivityService exposes the append-only audit log.
type ActivityService struct {
	activityRepo portsrepo.ActivityLogRepository
}

// NewActivityService creates a new ActivityService.
func NewActivityService(activityRepo portsrepo.ActivityLogRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// ListActivities returns recent audit records, newest first.
func (s *ActivityService) ListActivities(ctx context.Context, limit, offset int) ([]domain.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	entries, err := s.activityRepo.ListActivities(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities in service: %w", err)
	}
	return entries, nil
}

// recordActivity appends an audit entry. Audit failures are logged but never
// fail the calling operation.
func recordActivity(ctx context.Context, repo portsrepo.ActivityLogRepository, actorID, action, entityType, entityID, detail string) {
	if repo == nil {
		return
	}
	entry := domain.ActivityLog{
		ActivityID: uuid.NewString(),
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
		CreatedAt:  time.Now(),
	}
	if err := repo.SaveActivity(ctx, entry); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to write activity log", "action", action, "error", err)
	}
}
