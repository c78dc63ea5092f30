package events

import (
	"errors"
	"log/slog"
)

var errQueueFull = errors.New("event queue full")

// Publish sends an event if a publisher is configured. Failures are logged
// and never returned: live updates must not fail the write that caused them.
func Publish(client EventPublisher, event Event) {
	if client == nil {
		return // no publisher in tests or one-shot CLI runs
	}
	if err := client.SendEvent(event); err != nil {
		slog.Warn("event publish failed",
			"event_type", event.Type,
			"collection", event.Collection,
			"record_id", event.RecordID,
			"error", err)
	}
}
