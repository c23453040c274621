package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tdhftu/snapchat-ads-tools/internal/config"
)

var verbose bool

// rootCmd drives the provisioning pipeline from a terminal
var rootCmd = &cobra.Command{
	Use:   "provision",
	Short: "Create Snapchat campaigns, ad squads and ads in bulk",
	Long: `Command line access to the provisioning pipeline.

Available subcommands:
  run     - Provision the accounts listed in a YAML form
  migrate - Create the run history tables
  history - List the latest recorded runs
  watch   - Follow status events published by the API`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
			return
		}
		logrus.SetLevel(logrus.WarnLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every pipeline step")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	return config.NewConfig()
}
