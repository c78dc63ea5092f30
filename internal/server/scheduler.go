package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/thenoetrevino/crewdesk/internal/events"
	"github.com/thenoetrevino/crewdesk/internal/services/stats"
)

// snapshotTimeout bounds one scheduled stats run
const snapshotTimeout = 30 * time.Second

// Snapshotter runs the stats aggregator on a cron schedule and publishes
// each result. A failed run is logged and waits for the next tick.
type Snapshotter struct {
	cron    *cron.Cron
	stats   stats.Service
	events  events.EventPublisher
	metrics *Metrics
}

// NewSnapshotter parses schedule, which accepts the standard five fields and
// descriptors such as "@every 15m".
func NewSnapshotter(schedule string, svc stats.Service, pub events.EventPublisher, metrics *Metrics) (*Snapshotter, error) {
	s := &Snapshotter{
		cron:    cron.New(),
		stats:   svc,
		events:  pub,
		metrics: metrics,
	}
	if _, err := s.cron.AddFunc(schedule, s.Run); err != nil {
		return nil, fmt.Errorf("invalid stats.snapshot_schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start begins the schedule in its own goroutine
func (s *Snapshotter) Start() {
	s.cron.Start()
}

// Stop waits for a running snapshot to finish or ctx to end
func (s *Snapshotter) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// Run collects once and publishes the result
func (s *Snapshotter) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()

	snapshot, err := s.stats.Collect(ctx)
	s.metrics.IncSnapshots(err != nil)
	if err != nil {
		slog.Error("stats snapshot failed", "error", err)
		return
	}

	slog.Info("stats snapshot",
		"tasks", snapshot.TotalTasks,
		"completed_tasks", snapshot.CompletedTasks,
		"members", snapshot.TotalMembers,
		"projects", snapshot.TotalProjects,
		"pending_leaves", snapshot.PendingLeaves)

	events.Publish(s.events, events.Event{Type: events.EventStatsSnapshot, Payload: snapshot})
}
