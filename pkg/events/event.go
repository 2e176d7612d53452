package events

import "time"

// Event is the contract for everything published on the external bus.
type Event interface {
	// EventType returns the unique code for this event (e.g. "REPORT_SCANNED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a plain Event implementation for ad-hoc publishing.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes emitted by the assistant.
const (
	TypeReportScanned        = "REPORT_SCANNED"
	TypeRecommendationServed = "RECOMMENDATION_SERVED"
)

// NewReportScanned describes a medical report that has been text-extracted
// and condition-matched for one user slot.
func NewReportScanned(sessionID string, userIndex int, source string, conditions []string) BaseEvent {
	return BaseEvent{
		Type: TypeReportScanned,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"user_index": userIndex,
			"source":     source,
			"conditions": conditions,
		},
		OccurredAt: time.Now(),
	}
}

// NewRecommendationServed describes a completed recommendation pass.
func NewRecommendationServed(sessionID string, foods int, usersServed int) BaseEvent {
	return BaseEvent{
		Type: TypeRecommendationServed,
		Data: map[string]interface{}{
			"session_id":   sessionID,
			"foods":        foods,
			"users_served": usersServed,
		},
		OccurredAt: time.Now(),
	}
}
