package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/crewdesk/internal/app"
	"github.com/thenoetrevino/crewdesk/internal/cli"
	"github.com/thenoetrevino/crewdesk/internal/config"
	"github.com/thenoetrevino/crewdesk/internal/events"
	"github.com/thenoetrevino/crewdesk/internal/logging"
	"github.com/thenoetrevino/crewdesk/internal/server"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard HTTP API",
		Long: `Serve the /api/v1 dashboard API, the legacy /api proxy and the live
change feed until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)

			cfg, err := config.Load(cli.ConfigPath(cmd.Context()))
			if err != nil {
				return formatter.Fail(cli.Usage(err))
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if err := runServer(cmd.Context(), cfg); err != nil {
				return formatter.Fail(err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides server.addr")
	cli.AddOutputFlags(cmd)
	return cmd
}

// runServer blocks until SIGINT, SIGTERM or SIGQUIT, then shuts down
func runServer(parent context.Context, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	// the server logs structured json unless the config says otherwise
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	closer, err := logging.Init(cfg.Log)
	if err != nil {
		return cli.Usage(err)
	}
	defer closer.Close()

	broker := events.NewBroker()
	defer func() {
		if err := broker.Close(); err != nil {
			slog.Error("failed to close event broker", "error", err)
		}
	}()

	a, err := app.OpenConfig(ctx, cfg, app.WithEventPublisher(broker), app.WithLogger(logging.Logger))
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	srv, err := server.New(cfg, a, broker)
	if err != nil {
		return cli.Usage(err)
	}

	slog.Info("crewdesk starting", "addr", cfg.Server.Addr, "driver", cfg.Database.Driver, "pid", os.Getpid())
	if err := srv.Start(ctx); err != nil {
		return err
	}
	slog.Info("crewdesk shut down gracefully")
	return nil
}
