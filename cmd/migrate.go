package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/crewdesk/internal/cli"
	"github.com/thenoetrevino/crewdesk/internal/cli/styles"
	"github.com/thenoetrevino/crewdesk/internal/config"
	"github.com/thenoetrevino/crewdesk/internal/database"
)

type migrateResult struct {
	Driver string `json:"driver"`
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create every table and index",
		Long:  "Create every table and index in the configured database. Safe to run repeatedly.",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)

			cfg, err := config.Load(cli.ConfigPath(cmd.Context()))
			if err != nil {
				return formatter.Fail(cli.Usage(err))
			}

			dbCfg := cfg.Database
			dbCfg.AutoMigrate = false
			db, err := database.Open(cmd.Context(), dbCfg)
			if err != nil {
				return formatter.Fail(err)
			}
			defer db.Close()

			if err := database.Migrate(cmd.Context(), db); err != nil {
				return formatter.Fail(fmt.Errorf("failed to migrate: %w", err))
			}

			return formatter.Success(migrateResult{Driver: db.Dialect.String()}, func(w io.Writer) {
				styles.Done(w, "Migrations applied (%s)", db.Dialect.String())
			})
		},
	}
	cli.AddOutputFlags(cmd)
	return cmd
}
