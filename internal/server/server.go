// Package server exposes the dashboard HTTP API, the legacy /api proxy and
// the live update websocket.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/thenoetrevino/crewdesk/internal/app"
	"github.com/thenoetrevino/crewdesk/internal/config"
	"github.com/thenoetrevino/crewdesk/internal/events"
)

// Server wires the app's services to HTTP
type Server struct {
	cfg       *config.Config
	app       *app.App
	broker    *events.Broker
	metrics   *Metrics
	hub       *Hub
	snapshots *Snapshotter
	handler   http.Handler
}

// New builds the server. broker must be the publisher the app was built with
// so that writes reach websocket clients.
func New(cfg *config.Config, a *app.App, broker *events.Broker) (*Server, error) {
	if broker == nil {
		return nil, errors.New("server requires an event broker")
	}

	s := &Server{
		cfg:     cfg,
		app:     a,
		broker:  broker,
		metrics: NewMetrics(),
	}
	s.hub = NewHub(broker, s.metrics, cfg.Server.AllowedOrigins)

	if cfg.Stats.SnapshotSchedule != "" {
		snaps, err := NewSnapshotter(cfg.Stats.SnapshotSchedule, a.StatsService, broker, s.metrics)
		if err != nil {
			return nil, err
		}
		s.snapshots = snaps
	}

	var handler http.Handler = s.routes()
	handler = NewAuthMiddleware(cfg.Auth).Auth(handler)
	handler = s.metrics.Middleware(handler)
	handler = cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization", "apikey"},
	}).Handler(handler)
	s.handler = handler

	return s, nil
}

// Handler returns the full middleware-wrapped router
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Metrics returns the live counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Hub returns the websocket hub
func (s *Server) Hub() *Hub {
	return s.hub
}

// Start listens on cfg.Server.Addr until ctx is done, then shuts down
// gracefully within the configured timeout.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	go s.hub.Run(hubCtx)

	if s.snapshots != nil {
		s.snapshots.Start()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.Serve(ln)
	}()

	slog.Info("server started",
		"addr", ln.Addr().String(),
		"env", s.cfg.Env,
		"legacy_api", s.cfg.Server.LegacyAPI,
		"auth", s.cfg.Auth.Enabled(),
		"snapshots", s.cfg.Stats.SnapshotSchedule)

	select {
	case <-ctx.Done():
		slog.Info("shutting down server")
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	}

	return s.shutdown(httpServer, stopHub)
}

func (s *Server) shutdown(httpServer *http.Server, stopHub context.CancelFunc) error {
	timeout := s.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if s.snapshots != nil {
		s.snapshots.Stop(ctx)
	}
	stopHub()

	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	slog.Info("server stopped", "metrics", s.metrics.GetSnapshot())
	return nil
}
