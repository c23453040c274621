package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tdhftu/snapchat-ads-tools/infrastructure/events"
	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
)

var watchRunID string

// watchCmd prints the status events the API publishes while runs progress
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow status events published by the API",
	Long: `Subscribes to the Redis status channel and prints one line per board change.
Requires REDIS_URL. Stops on Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if !cfg.Redis.Enabled() {
			return errors.New("REDIS_URL is not set")
		}

		client, err := events.NewRedisClient(cmd.Context(), cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()

		out := cmd.OutOrStdout()
		subscriber := events.NewRedisSubscriber(client, cfg.Redis.StatusChannel)
		return subscriber.Subscribe(cmd.Context(), func(event domain.StatusEvent) {
			printEvent(out, watchRunID, event)
		})
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchRunID, "run", "", "only show events of this run")
}

func printEvent(out io.Writer, runID string, event domain.StatusEvent) {
	if runID != "" && event.RunID != runID {
		return
	}
	fmt.Fprintf(out, "%s %s %-20s %-8s %s\n",
		event.At.UTC().Format("15:04:05"), event.RunID, event.AdAccountID, event.Status.Kind, event.Status.Message)
}
