package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tdhftu/snapchat-ads-tools/internal/api/handler/router"
	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/authenticating"
	authmocks "github.com/tdhftu/snapchat-ads-tools/internal/usecases/authenticating/mocks"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/catalog"
	catalogmocks "github.com/tdhftu/snapchat-ads-tools/internal/usecases/catalog/mocks"
	usecasemocks "github.com/tdhftu/snapchat-ads-tools/internal/usecases/mocks"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/provisioning"
	provisioningmocks "github.com/tdhftu/snapchat-ads-tools/internal/usecases/provisioning/mocks"
	"github.com/tdhftu/snapchat-ads-tools/pkg/apiErrors"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
	"github.com/tdhftu/snapchat-ads-tools/pkg/middleware"
)

type testDeps struct {
	catalog      *catalogmocks.MockCatalogService
	platform     *provisioningmocks.MockPlatform
	provisioning *usecasemocks.MockProvisioningService
	auth         *authmocks.MockAuthenticator
}

func newTestRouter(t *testing.T) (http.Handler, testDeps) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		catalog:      catalogmocks.NewMockCatalogService(ctrl),
		platform:     provisioningmocks.NewMockPlatform(ctrl),
		provisioning: usecasemocks.NewMockProvisioningService(ctrl),
		auth:         authmocks.NewMockAuthenticator(ctrl),
	}

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Authentication(deps.auth)...),
		router.WithRoutes(Snapchat(deps.catalog, deps.platform)...),
		router.WithRoutes(Provisioning(deps.provisioning)...),
	)
	return rt, deps
}

// signedIn sets the claims AuthMiddleware would have attached
func signedIn(r *http.Request) *http.Request {
	claims := &domain.Claims{OperatorEmail: "ops@example.com"}
	return r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyOperator, claims))
}

func TestSnapchatRoutes(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		setup    func(deps testDeps)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "organizations are wrapped in the platform envelope",
			method: http.MethodGet,
			path:   "/api/organizations",
			setup: func(deps testDeps) {
				deps.catalog.EXPECT().ListOrganizations(gomock.Any()).Return([]domain.Organization{{ID: "org-1", Name: "Acme"}}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{
					"request_status": "SUCCESS",
					"organizations": [{"sub_request_status": "SUCCESS", "organization": {"id": "org-1", "name": "Acme"}}]
				}`, rec.Body.String())
			},
		},
		{
			name:   "read failure is a bad gateway",
			method: http.MethodGet,
			path:   "/api/organizations/org-1/adaccounts",
			setup: func(deps testDeps) {
				deps.catalog.EXPECT().ListAdAccounts(gomock.Any(), "org-1").
					Return(nil, catalog.NewCatalogError(catalog.ErrFetchAdAccounts, apiErrors.ErrExternalService, "org-1", "timeout"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadGateway, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrExternalService)
			},
		},
		{
			name:   "rejected campaign carries the reason",
			method: http.MethodPost,
			path:   "/api/campaigns/create",
			body:   `{"ad_account_id":"acc-1","name":"Spring","objective":"WEB_CONVERSION","status":"ACTIVE"}`,
			setup: func(deps testDeps) {
				deps.platform.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, draft domain.CampaignDraft) (*domain.Campaign, error) {
						assert.Equal(t, "acc-1", draft.AdAccountID)
						return nil, &domain.RejectedError{Entity: "campaign", Reason: "INSUFFICIENT_FUNDS"}
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{
					"request_status": "SUCCESS",
					"campaigns": [{"sub_request_status": "ERROR", "sub_request_error_reason": "INSUFFICIENT_FUNDS"}]
				}`, rec.Body.String())
			},
		},
		{
			name:   "created ad squad is returned",
			method: http.MethodPost,
			path:   "/api/adsquads/create",
			body:   `{"campaign_id":"c-1","name":"Squad"}`,
			setup: func(deps testDeps) {
				deps.platform.EXPECT().CreateAdSquad(gomock.Any(), gomock.Any()).Return(&domain.AdSquad{ID: "sq-1", CampaignID: "c-1"}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), `"id":"sq-1"`)
			},
		},
		{
			name:   "ad squad without campaign is refused",
			method: http.MethodPost,
			path:   "/api/adsquads/create",
			body:   `{"name":"Squad"}`,
			setup:  func(deps testDeps) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrMissingRequiredData)
			},
		},
		{
			name:   "transport failure on ad creation",
			method: http.MethodPost,
			path:   "/api/ads/create",
			body:   `{"ad_squad_id":"sq-1","creative_id":"cr-1"}`,
			setup: func(deps testDeps) {
				deps.platform.EXPECT().CreateAd(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadGateway, rec.Code)
			},
		},
		{
			name:   "creatives of an account",
			method: http.MethodPost,
			path:   "/api/adaccounts/acc-1/creatives",
			setup: func(deps testDeps) {
				deps.catalog.EXPECT().ListCreatives(gomock.Any(), "acc-1").Return([]domain.Creative{{ID: "cr-1", Headline: "Hello"}}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), `"creatives":[{"sub_request_status":"SUCCESS","creative":{`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, deps := newTestRouter(t)
			tt.setup(deps)

			req := signedIn(httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}

func TestSnapchatRoutes_requireOperator(t *testing.T) {
	rt, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/organizations", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProvisioningRoutes(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		body     string
		setup    func(deps testDeps)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "empty selection is a no-op",
			method: http.MethodPost,
			path:   "/v1/provisioning/runs",
			body:   `{"organization_id":"org-1","ad_account_ids":[]}`,
			setup: func(deps testDeps) {
				deps.provisioning.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
				assert.Empty(t, rec.Body.String())
			},
		},
		{
			name:   "accepted run points to its status",
			method: http.MethodPost,
			path:   "/v1/provisioning/runs",
			body:   `{"organization_id":"org-1","ad_account_ids":["acc-1"]}`,
			setup: func(deps testDeps) {
				deps.provisioning.EXPECT().Submit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, form provisioning.Form) (*domain.Run, error) {
						assert.Equal(t, []string{"acc-1"}, form.AdAccountIDs)
						return &domain.Run{ID: "run-1", State: domain.RunPending}, nil
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusAccepted, rec.Code)
				assert.Equal(t, "/v1/provisioning/runs/run-1", rec.Header().Get("Location"))
			},
		},
		{
			name:   "invalid form returns field errors",
			method: http.MethodPost,
			path:   "/v1/provisioning/runs",
			body:   `{"organization_id":"org-1","ad_account_ids":["acc-1"]}`,
			setup: func(deps testDeps) {
				deps.provisioning.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil,
					provisioning.NewProvisioningError(provisioning.ErrInvalidForm, apiErrors.ErrInvalidFormat, map[string]string{"campaign.name": "required"}))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), `"details":{"campaign.name":"required"}`)
			},
		},
		{
			name:     "malformed body",
			method:   http.MethodPost,
			path:     "/v1/provisioning/runs",
			body:     `{`,
			setup:    func(deps testDeps) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) { assert.Equal(t, http.StatusBadRequest, rec.Code) },
		},
		{
			name:   "unknown run",
			method: http.MethodGet,
			path:   "/v1/provisioning/runs/nope",
			setup: func(deps testDeps) {
				deps.provisioning.EXPECT().GetRun(gomock.Any(), "nope").
					Return(nil, provisioning.NewProvisioningError(provisioning.ErrRunNotFound, apiErrors.ErrNotFound, "nope"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
			},
		},
		{
			name:   "history uses the requested limit",
			method: http.MethodGet,
			path:   "/v1/provisioning/history?limit=5",
			setup: func(deps testDeps) {
				deps.provisioning.EXPECT().ListRuns(gomock.Any(), uint64(5)).Return([]*domain.Run{{ID: "run-1"}}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), `"id":"run-1"`)
			},
		},
		{
			name:     "history rejects a bad limit",
			method:   http.MethodGet,
			path:     "/v1/provisioning/history?limit=zero",
			setup:    func(deps testDeps) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) { assert.Equal(t, http.StatusBadRequest, rec.Code) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, deps := newTestRouter(t)
			tt.setup(deps)

			req := signedIn(httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}

func TestLogin(t *testing.T) {
	rt, deps := newTestRouter(t)

	deps.auth.EXPECT().Login("ops@example.com", "s3cret").Return(&domain.LoginResponse{Token: "jwt", ExpiresAt: 1700000000}, nil)
	deps.auth.EXPECT().Login("ops@example.com", "wrong").
		Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"ops@example.com","password":"s3cret"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"jwt","expires_at":1700000000}`, rec.Body.String())

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"email":"ops@example.com","password":"wrong"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidCredentials)
}

type fakeJob struct {
	triggered int
}

func (f *fakeJob) TriggerManualSync() { f.triggered++ }

func (f *fakeJob) GetStatus() map[string]any { return map[string]any{"triggered": f.triggered} }

func TestCronJobs(t *testing.T) {
	log.SetupTestLogger()
	refresh, retention := &fakeJob{}, &fakeJob{}
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{
		TokenRefreshService: refresh,
		RunRetentionService: retention,
	})...))

	serve := func(method, path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, signedIn(httptest.NewRequest(method, path, nil)))
		return rec
	}

	assert.Equal(t, http.StatusOK, serve(http.MethodPost, "/v1/cron/run/token-refresh").Code)
	assert.Equal(t, http.StatusOK, serve(http.MethodPost, "/v1/cron/run/all").Code)
	assert.Equal(t, http.StatusBadRequest, serve(http.MethodPost, "/v1/cron/run/unknown").Code)
	assert.Equal(t, 2, refresh.triggered)
	assert.Equal(t, 1, retention.triggered)

	status := serve(http.MethodGet, "/v1/cron/status")
	assert.JSONEq(t, `{"token-refresh":{"triggered":2},"run-retention":{"triggered":1}}`, status.Body.String())
}
