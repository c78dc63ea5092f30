package events

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Broker fans published events out to every live subscriber in process.
// Slow subscribers miss events rather than stall publishers.
type Broker struct {
	mu          sync.Mutex
	subscribers map[int]chan Event
	nextID      int
	closed      bool

	queue    chan Event
	sequence atomic.Int64
	done     chan struct{}
}

// NewBroker creates a broker and starts its dispatch goroutine
func NewBroker() *Broker {
	b := &Broker{
		subscribers: make(map[int]chan Event),
		queue:       make(chan Event, 100),
		done:        make(chan struct{}),
	}
	go b.dispatch()
	return b
}

// SendEvent stamps the event and queues it. Returns an error if the queue is
// full or the broker is closed.
func (b *Broker) SendEvent(event Event) error {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBrokerClosed
	}

	event.SequenceID = b.sequence.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	select {
	case b.queue <- event:
		return nil
	default:
		return errQueueFull
	}
}

// Subscribe registers a new listener. The channel closes when ctx is done or
// the broker shuts down.
func (b *Broker) Subscribe(ctx context.Context) <-chan Event {
	ch := make(chan Event, 16)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch
	}
	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-b.done:
		}
		b.unsubscribe(id)
	}()
	return ch
}

// SubscriberCount reports how many listeners are attached
func (b *Broker) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}

func (b *Broker) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subscribers[id]; ok {
		delete(b.subscribers, id)
		close(ch)
	}
}

func (b *Broker) dispatch() {
	for event := range b.queue {
		b.mu.Lock()
		for id, ch := range b.subscribers {
			select {
			case ch <- event:
			default:
				slog.Warn("dropping event for slow subscriber",
					"subscriber", id,
					"event_type", event.Type,
					"sequence", event.SequenceID)
			}
		}
		b.mu.Unlock()
	}
	close(b.done)
}

// Close stops accepting events, drains the queue and closes every subscriber
func (b *Broker) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.queue)
	b.mu.Unlock()

	<-b.done
	return nil
}
