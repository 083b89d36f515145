package domain

import "time"

// ActivityLog is an append-only audit record of an admin/agent action.
type ActivityLog struct {
	ActivityID string    `json:"activityID"`
	ActorID    string    `json:"actorID"`
	Action     string    `json:"action"`     // e.g. TRANSACTION_CREATED, FEE_SETTINGS_UPDATED
	EntityType string    `json:"entityType"` // e.g. transaction, fee_settings
	EntityID   string    `json:"entityID"`
	Detail     string    `json:"detail"`
	CreatedAt  time.Time `json:"createdAt"`
}
