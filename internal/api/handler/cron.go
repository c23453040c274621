package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/tdhftu/snapchat-ads-tools/pkg/apiErrors"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

const (
	CronJobTypeTokenRefresh = "token-refresh"
	CronJobTypeRunRetention = "run-retention"
	CronJobTypeAll          = "all"
)

// CronJob is a scheduled job that can also be started by hand
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

type CronJobServices struct {
	TokenRefreshService CronJob
	RunRetentionService CronJob
}

func (s CronJobServices) jobs() map[string]CronJob {
	jobs := make(map[string]CronJob, 2)
	if s.TokenRefreshService != nil {
		jobs[CronJobTypeTokenRefresh] = s.TokenRefreshService
	}
	if s.RunRetentionService != nil {
		jobs[CronJobTypeRunRetention] = s.RunRetentionService
	}
	return jobs
}

// @Summary Run a scheduled job now
// @Tags cron
// @Produce json
// @Param type path string true "token-refresh, run-retention or all"
// @Success 200 {object} map[string]any
// @Failure 400 {object} apiErrors.APIError
// @Router /v1/cron/run/{type} [post]
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		jobs := services.jobs()

		switch cronType {
		case CronJobTypeAll:
			for _, job := range jobs {
				job.TriggerManualSync()
			}
		default:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type, accepted values: token-refresh, run-retention, all", nil)
				return
			}
			job.TriggerManualSync()
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("cron job triggered manually")
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "cron job started",
			"type":    cronType,
		})
	}
}

// @Summary Scheduled jobs status
// @Tags cron
// @Produce json
// @Success 200 {object} map[string]any
// @Router /v1/cron/status [get]
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}
		writeJSON(w, http.StatusOK, status)
	}
}
