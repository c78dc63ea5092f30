package events

import (
	"context"
	"errors"
)

// ErrBrokerClosed is returned when publishing to a closed broker
var ErrBrokerClosed = errors.New("event broker closed")

// EventPublisher defines the interface for sending events.
// Services depend on this rather than on the broker itself.
type EventPublisher interface {
	// SendEvent queues an event for delivery without blocking
	SendEvent(event Event) error
}

// EventSubscriber hands out live event streams
type EventSubscriber interface {
	// Subscribe returns a channel of events that is closed when ctx ends
	Subscribe(ctx context.Context) <-chan Event
}

// Compile-time verification that *Broker implements both sides
var (
	_ EventPublisher  = (*Broker)(nil)
	_ EventSubscriber = (*Broker)(nil)
)
