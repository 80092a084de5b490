package returns

import (
	"context"
	"encoding/json"
	"time"
)

// Actions recorded in the activity log.
const (
	ActionCreated       = "created"
	ActionStatusChanged = "status_changed"
	ActionInspected     = "inspected"
	ActionRefunded      = "refunded"
	ActionInfoUpdated   = "info_updated"
)

const (
	ActorTypeCustomer = "customer"
	ActorTypeStaff    = "staff"
	ActorTypeSystem   = "system"
)

// ActivityEntry is one immutable audit record.
type ActivityEntry struct {
	ID          string          `json:"id"`
	EntityType  string          `json:"entity_type"`
	EntityID    string          `json:"entity_id"`
	Action      string          `json:"action"`
	ActorType   string          `json:"actor_type"`
	ActorID     string          `json:"actor_id,omitempty"`
	OldValue    json.RawMessage `json:"old_value,omitempty"`
	NewValue    json.RawMessage `json:"new_value,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// StatusValue encodes a status as the JSON object audit entries store in
// OldValue/NewValue, so log consumers get a structured value instead of a
// bare string.
func StatusValue(s Status) json.RawMessage {
	raw, _ := json.Marshal(struct {
		Status Status `json:"status"`
	}{s})
	return raw
}

// NewActivityEntry fills the entity fields for a return request entry.
func NewActivityEntry(requestID, action, actorType, actorID string) ActivityEntry {
	return ActivityEntry{
		EntityType: "return_request",
		EntityID:   requestID,
		Action:     action,
		ActorType:  actorType,
		ActorID:    actorID,
	}
}

// ActivityLog is the audit sink. Recording happens after the owning
// transaction commits, so a sink failure never rolls back the change it
// describes.
type ActivityLog interface {
	Record(ctx context.Context, entry ActivityEntry) error
	ListForEntity(ctx context.Context, entityType, entityID string) ([]ActivityEntry, error)
}
