package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tdhftu/snapchat-ads-tools/infrastructure/database/postgres"
	"github.com/tdhftu/snapchat-ads-tools/infrastructure/repository"
	"github.com/tdhftu/snapchat-ads-tools/pkg/utils"
)

var historyLimit uint64

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the latest recorded runs",
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

		runs, err := repository.NewRunRepository(conn).ListRuns(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(runs))
		return nil
	},
}

func init() {
	historyCmd.Flags().Uint64VarP(&historyLimit, "limit", "n", 20, "maximum number of runs")
}
