package server

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"
)

// Metrics tracks server statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal    atomic.Int64
	RequestErrors    atomic.Int64
	EventsSent       atomic.Int64
	SnapshotsTotal   atomic.Int64
	SnapshotFailures atomic.Int64
	ConnectedClients atomic.Int32
	StartTime        time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncRequests increments the request counter
func (m *Metrics) IncRequests() {
	m.RequestsTotal.Add(1)
}

// IncRequestErrors increments the counter of 5xx responses
func (m *Metrics) IncRequestErrors() {
	m.RequestErrors.Add(1)
}

// IncEventsSent increments the websocket messages counter
func (m *Metrics) IncEventsSent() {
	m.EventsSent.Add(1)
}

// IncSnapshots records a scheduled stats run
func (m *Metrics) IncSnapshots(failed bool) {
	m.SnapshotsTotal.Add(1)
	if failed {
		m.SnapshotFailures.Add(1)
	}
}

// SetConnectedClients sets the current websocket client count
func (m *Metrics) SetConnectedClients(count int32) {
	m.ConnectedClients.Store(count)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	RequestsTotal    int64     `json:"requests_total"`
	RequestErrors    int64     `json:"request_errors"`
	EventsSent       int64     `json:"events_sent"`
	SnapshotsTotal   int64     `json:"snapshots_total"`
	SnapshotFailures int64     `json:"snapshot_failures"`
	ConnectedClients int32     `json:"connected_clients"`
	StartTime        time.Time `json:"start_time"`
	Uptime           string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		RequestsTotal:    m.RequestsTotal.Load(),
		RequestErrors:    m.RequestErrors.Load(),
		EventsSent:       m.EventsSent.Load(),
		SnapshotsTotal:   m.SnapshotsTotal.Load(),
		SnapshotFailures: m.SnapshotFailures.Load(),
		ConnectedClients: m.ConnectedClients.Load(),
		StartTime:        m.StartTime,
		Uptime:           time.Since(m.StartTime).Round(time.Second).String(),
	}
}

// statusRecorder remembers the status code written through it
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Unwrap lets http.ResponseController reach the underlying writer
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Hijack is required by the websocket upgrader
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

// Middleware counts requests and server errors
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.IncRequests()
		if rec.status >= http.StatusInternalServerError {
			m.IncRequestErrors()
		}
	})
}
