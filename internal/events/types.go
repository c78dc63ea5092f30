package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventRecordCreated EventType = "record_created"
	EventRecordUpdated EventType = "record_updated"
	EventRecordDeleted EventType = "record_deleted"
	EventStatsSnapshot EventType = "stats_snapshot"
	EventPing          EventType = "ping"
)

// Event represents a change notification pushed to live subscribers
type Event struct {
	Type       EventType `json:"type"`
	Collection string    `json:"collection,omitempty"`
	RecordID   string    `json:"record_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	SequenceID int64     `json:"sequence_id"` // Monotonically increasing, assigned by the broker
	Payload    any       `json:"payload,omitempty"`
}

// RecordEvent builds the notification for a write to one record
func RecordEvent(t EventType, collection, id string) Event {
	return Event{Type: t, Collection: collection, RecordID: id}
}
