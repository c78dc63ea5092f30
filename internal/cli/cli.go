// Package cli holds the plumbing shared by the crewdesk subcommands
package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/crewdesk/internal/app"
	"github.com/thenoetrevino/crewdesk/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// owned is false when the app was injected and belongs to the caller
	owned bool
}

// NewCLI loads the config at configPath (empty means the default location)
// and opens the configured database
func NewCLI(ctx context.Context, configPath string) (*CLI, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.OpenConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{App: application, Config: cfg, owned: true}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

// ============================================================================
// CONTEXT
// ============================================================================

type contextKey string

const (
	appKey        contextKey = "app"
	configPathKey contextKey = "configPath"
)

// WithApp makes every command run against a, which the caller closes
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfigPath records the --config flag for GetCLIFromContext
func WithConfigPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, configPathKey, path)
}

// ConfigPath returns the path set by WithConfigPath, or ""
func ConfigPath(ctx context.Context) string {
	path, _ := ctx.Value(configPathKey).(string)
	return path
}

// GetCLIFromContext returns a CLI over the injected app if there is one,
// otherwise it opens the configured database
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.Default()}, nil
	}
	return NewCLI(ctx, ConfigPath(ctx))
}
