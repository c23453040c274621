package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tdhftu/snapchat-ads-tools/infrastructure/database/postgres"
	"github.com/tdhftu/snapchat-ads-tools/infrastructure/integrator/snapchat"
	"github.com/tdhftu/snapchat-ads-tools/infrastructure/integrator/snapchat/snapclient"
	"github.com/tdhftu/snapchat-ads-tools/infrastructure/repository"
	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/provisioning"
	"github.com/tdhftu/snapchat-ads-tools/pkg/utils"
)

var (
	formFile    string
	keepHistory bool
)

// runCmd provisions every account of a form file and prints the final report
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Provision the accounts listed in a YAML form",
	Long: `Reads a provisioning form from YAML, runs the pipeline for every listed
ad account and prints the final report as JSON.

The form uses the same fields as the POST /v1/provisioning/runs body.`,
	RunE: runProvision,
}

func init() {
	runCmd.Flags().StringVarP(&formFile, "file", "f", "", "YAML form to submit")
	runCmd.Flags().BoolVar(&keepHistory, "history", false, "record the run in the database")
	_ = runCmd.MarkFlagRequired("file")
}

// loadForm reads a form, starting from the page defaults
func loadForm(path string) (provisioning.Form, error) {
	form := provisioning.DefaultForm()

	data, err := os.ReadFile(path)
	if err != nil {
		return form, errors.Wrap(err, "read form")
	}
	if err := yaml.Unmarshal(data, &form); err != nil {
		return form, errors.Wrap(err, "parse form")
	}
	return form, nil
}

func runProvision(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	form, err := loadForm(formFile)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var runRepo repository.RunRepository
	if keepHistory {
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return errors.Wrap(err, "connect to database")
		}
		defer conn.Close()
		runRepo = repository.NewRunRepository(conn)
	}

	integrator := snapchat.New(snapclient.NewClient(cfg, snapclient.NewTokenManager(cfg)))
	service := provisioning.NewService(ctx, integrator, integrator, runRepo, cfg, provisioning.LogObserver{})

	run, err := service.Submit(ctx, form)
	if err != nil {
		return err
	}
	if run == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "no ad account selected, nothing to do")
		return nil
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "run %s started for %d ad accounts\n", run.ID, len(run.AdAccountIDs))

	report, err := service.Wait(ctx, run.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(report))

	if failed := countFailed(report); failed > 0 {
		return fmt.Errorf("%d of %d ad accounts failed", failed, len(report.Rows))
	}
	return nil
}

func countFailed(report *domain.RunReport) int {
	failed := 0
	for _, row := range report.Rows {
		if row.Status.Kind == domain.StatusError {
			failed++
		}
	}
	return failed
}
