package dto

import (
	"time"

	"github.com/talofaremit/remit_backend/internal/core/domain"
)

// ActivityResponse is the API shape of one audit log entry.
type ActivityResponse struct {
	ActivityID string    `json:"activityID"`
	ActorID    string    `json:"actorID"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityID"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToListActivityResponse converts audit entries to API shapes.
func ToListActivityResponse(entries []domain.ActivityLog) []ActivityResponse {
	responses := make([]ActivityResponse, len(entries))
	for i, e := range entries {
		responses[i] = ActivityResponse{
			ActivityID: e.ActivityID,
			ActorID:    e.ActorID,
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Detail:     e.Detail,
			CreatedAt:  e.CreatedAt,
		}
	}
	return responses
}
