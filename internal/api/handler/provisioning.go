package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/provisioning"
	"github.com/tdhftu/snapchat-ads-tools/pkg/apiErrors"
)

const defaultHistoryLimit = 20

// @Summary Start a provisioning run
// @Description Creates campaign, ad squad and ad on every selected ad account, one account at a time.
// @Tags provisioning
// @Accept json
// @Produce json
// @Param form body provisioning.Form true "Shared campaign and ad squad payload"
// @Success 202 {object} domain.Run
// @Success 204 "Nothing selected"
// @Failure 400 {object} apiErrors.APIError
// @Failure 422 {object} apiErrors.APIError
// @Failure 502 {object} apiErrors.APIError
// @Router /v1/provisioning/runs [post]
func SubmitRun(service provisioning.ProvisioningService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form provisioning.Form
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid provisioning payload", nil)
			return
		}

		run, err := service.Submit(r.Context(), form)
		if err != nil {
			writeServiceError(w, r, err, "failed to start provisioning run")
			return
		}

		if run == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Location", "/v1/provisioning/runs/"+run.ID)
		writeJSON(w, http.StatusAccepted, run)
	}
}

// @Summary Run status
// @Tags provisioning
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} domain.RunReport
// @Failure 404 {object} apiErrors.APIError
// @Router /v1/provisioning/runs/{id} [get]
func GetRun(service provisioning.ProvisioningService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		report, err := service.GetRun(r.Context(), runID)
		if err != nil {
			writeServiceError(w, r, err, "failed to read provisioning run")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

// @Summary Run history
// @Tags provisioning
// @Produce json
// @Param limit query int false "Maximum number of runs" default(20)
// @Success 200 {array} domain.Run
// @Failure 500 {object} apiErrors.APIError
// @Router /v1/provisioning/history [get]
func ListRuns(service provisioning.ProvisioningService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := uint64(defaultHistoryLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit must be a positive integer", nil)
				return
			}
			limit = parsed
		}

		runs, err := service.ListRuns(r.Context(), limit)
		if err != nil {
			writeServiceError(w, r, err, "failed to list provisioning runs")
			return
		}

		writeJSON(w, http.StatusOK, runs)
	}
}
