package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tdhftu/snapchat-ads-tools/infrastructure/database/postgres"
	"github.com/tdhftu/snapchat-ads-tools/infrastructure/migration"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the run history tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		conn, err := postgres.NewConnection(cmd.Context(), cfg.Database)
		if err != nil {
			return errors.Wrap(err, "connect to database")
		}
		defer conn.Close()

		return migration.Up(cmd.Context(), conn)
	},
}
