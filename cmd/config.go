package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/crewdesk/internal/cli"
	"github.com/thenoetrevino/crewdesk/internal/cli/styles"
	"github.com/thenoetrevino/crewdesk/internal/config"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}
	cmd.AddCommand(configShowCmd(), configInitCmd())
	return cmd
}

// configView is the effective config with the jwt secret masked
type configView struct {
	Path     string `json:"path"`
	Env      string `json:"env"`
	Driver   string `json:"driver"`
	URL      string `json:"url"`
	Addr     string `json:"addr"`
	Auth     bool   `json:"auth"`
	Legacy   bool   `json:"legacyApi"`
	Snapshot string `json:"snapshotSchedule"`
	LogLevel string `json:"logLevel"`
	Theme    string `json:"theme"`
}

func configShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)

			path := cli.ConfigPath(cmd.Context())
			cfg, err := config.Load(path)
			if err != nil {
				return formatter.Fail(cli.Usage(err))
			}
			if path == "" {
				if path, err = config.Path(); err != nil {
					return formatter.Fail(err)
				}
			}

			view := configView{
				Path:     path,
				Env:      cfg.Env,
				Driver:   cfg.Database.Driver,
				URL:      cfg.Database.URL,
				Addr:     cfg.Server.Addr,
				Auth:     cfg.Auth.Enabled(),
				Legacy:   cfg.Server.LegacyAPI,
				Snapshot: cfg.Stats.SnapshotSchedule,
				LogLevel: cfg.Log.Level,
				Theme:    cfg.ColorScheme.Preset,
			}
			return formatter.Success(view, func(w io.Writer) {
				styles.Fields(w, "Configuration", [][2]string{
					{"File", view.Path},
					{"Env", view.Env},
					{"Driver", view.Driver},
					{"Database", view.URL},
					{"Listen", view.Addr},
					{"Auth", cli.YesNo(view.Auth)},
					{"Legacy API", cli.YesNo(view.Legacy)},
					{"Snapshots", view.Snapshot},
					{"Log level", view.LogLevel},
					{"Theme", view.Theme},
				})
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)
			force, _ := cmd.Flags().GetBool("force")

			path := cli.ConfigPath(cmd.Context())
			if path == "" {
				p, err := config.Path()
				if err != nil {
					return formatter.Fail(err)
				}
				path = p
			}

			if _, err := os.Stat(path); err == nil && !force {
				return formatter.Fail(cli.Usage(fmt.Errorf("%s already exists, use --force to overwrite", path)))
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return formatter.Fail(err)
			}

			if err := config.Default().Save(path); err != nil {
				return formatter.Fail(fmt.Errorf("failed to write config: %w", err))
			}
			return formatter.Success(map[string]string{"path": path}, func(w io.Writer) {
				styles.Done(w, "Wrote %s", path)
			})
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing file")
	cli.AddOutputFlags(cmd)
	return cmd
}
