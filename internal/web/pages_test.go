package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/authenticating"
	authmocks "github.com/tdhftu/snapchat-ads-tools/internal/usecases/authenticating/mocks"
	catalogmocks "github.com/tdhftu/snapchat-ads-tools/internal/usecases/catalog/mocks"
	usecasemocks "github.com/tdhftu/snapchat-ads-tools/internal/usecases/mocks"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/provisioning"
	"github.com/tdhftu/snapchat-ads-tools/pkg/apiErrors"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
	"github.com/tdhftu/snapchat-ads-tools/pkg/middleware"
)

type pageDeps struct {
	auth         *authmocks.MockAuthenticator
	catalog      *catalogmocks.MockCatalogService
	provisioning *usecasemocks.MockProvisioningService
}

func newTestPages(t *testing.T) (*Pages, pageDeps) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	deps := pageDeps{
		auth:         authmocks.NewMockAuthenticator(ctrl),
		catalog:      catalogmocks.NewMockCatalogService(ctrl),
		provisioning: usecasemocks.NewMockProvisioningService(ctrl),
	}
	return NewPages(deps.auth, deps.catalog, deps.provisioning), deps
}

func signedIn(r *http.Request) *http.Request {
	claims := &domain.Claims{OperatorEmail: "ops@example.com"}
	return r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyOperator, claims))
}

func postForm(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return signedIn(req)
}

var testAccounts = []domain.AdAccount{
	{ID: "acc-1", Name: "Tom & Jerry", Status: domain.AdAccountStatusActive, Currency: "USD"},
	{ID: "acc-2", Name: "Paused shop", Status: "PAUSED", Currency: "EUR"},
}

func TestSafeNext(t *testing.T) {
	tests := []struct {
		next string
		want string
	}{
		{next: "", want: defaultNext},
		{next: "/campaigns/runs/abc", want: "/campaigns/runs/abc"},
		{next: "https://evil.example.com", want: defaultNext},
		{next: "//evil.example.com", want: defaultNext},
		{next: `/\evil.example.com`, want: defaultNext},
	}

	for _, tt := range tests {
		t.Run(tt.next, func(t *testing.T) {
			assert.Equal(t, tt.want, safeNext(tt.next))
		})
	}
}

func TestParseForm(t *testing.T) {
	values := url.Values{
		"organization_id":             {" org-1 "},
		"ad_account_ids":              {"acc-1", "acc-2"},
		"campaign_name":               {"Spring sale"},
		"campaign_objective":          {"WEB_CONVERSION"},
		"campaign_status":             {"PAUSED"},
		"campaign_start_time":         {"2024-03-01T10:30"},
		"campaign_daily_budget_micro": {"20 000 000"},
		"ad_squad_name":               {"Squad"},
		"ad_squad_daily_budget_micro": {"5000000"},
		"ad_squad_age_min_age":        {"18"},
		"ad_squad_age_max_age":        {"35"},
		"ad_squad_gender":             {"FEMALE"},
	}

	form, errs := parseForm(values)

	require.Empty(t, errs)
	assert.Equal(t, "org-1", form.OrganizationID)
	assert.Equal(t, []string{"acc-1", "acc-2"}, form.AdAccountIDs)
	assert.Equal(t, "Spring sale", form.Campaign.Name)
	assert.Equal(t, domain.LifecycleStatus("PAUSED"), form.Campaign.Status)
	require.NotNil(t, form.Campaign.StartTime)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC), *form.Campaign.StartTime)
	assert.Nil(t, form.Campaign.EndTime)
	require.NotNil(t, form.Campaign.DailyBudgetMicro)
	assert.Equal(t, int64(20000000), *form.Campaign.DailyBudgetMicro)
	assert.Nil(t, form.Campaign.LifetimeSpendCapMicro)
	assert.Equal(t, int64(5000000), form.AdSquad.DailyBudgetMicro)
	assert.Equal(t, 18, form.AdSquad.MinAge)
	assert.Equal(t, 35, form.AdSquad.MaxAge)
	assert.Equal(t, "FEMALE", form.AdSquad.Gender)
}

func TestParseForm_reportsUnparsableFields(t *testing.T) {
	_, errs := parseForm(url.Values{
		"campaign_end_time":    {"tomorrow"},
		"ad_squad_age_min_age": {"eighteen"},
	})

	assert.Equal(t, map[string]string{
		"campaign.end_time": "datetime",
		"ad_squad.min_age":  "number",
	}, errs)
}

func TestLoginSubmit(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(deps pageDeps)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "sets the session and follows next",
			setup: func(deps pageDeps) {
				deps.auth.EXPECT().Login("ops@example.com", "s3cret").Return(&domain.LoginResponse{Token: "jwt", ExpiresAt: time.Now().Add(time.Hour).Unix()}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusSeeOther, rec.Code)
				assert.Equal(t, "/campaigns/runs/abc", rec.Header().Get("Location"))

				cookies := rec.Result().Cookies()
				require.Len(t, cookies, 1)
				assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
				assert.Equal(t, "jwt", cookies[0].Value)
				assert.True(t, cookies[0].HttpOnly)
			},
		},
		{
			name: "wrong password renders the form again",
			setup: func(deps pageDeps) {
				deps.auth.EXPECT().Login("ops@example.com", "s3cret").
					Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Empty(t, rec.Result().Cookies())
				assert.Contains(t, rec.Body.String(), "Invalid email or password")
				assert.Contains(t, rec.Body.String(), `value="ops@example.com"`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, deps := newTestPages(t)
			tt.setup(deps)

			req := postForm("/login", url.Values{
				"email":    {"ops@example.com"},
				"password": {"s3cret"},
				"next":     {"/campaigns/runs/abc"},
			})
			rec := httptest.NewRecorder()
			pages.LoginSubmit().ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}

func TestLogout(t *testing.T) {
	pages, _ := newTestPages(t)

	rec := httptest.NewRecorder()
	pages.Logout().ServeHTTP(rec, signedIn(httptest.NewRequest(http.MethodPost, "/logout", nil)))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, middleware.LoginPath, rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestCreateCampaigns(t *testing.T) {
	pages, deps := newTestPages(t)
	deps.catalog.EXPECT().ListOrganizations(gomock.Any()).Return([]domain.Organization{{ID: "org-1", Name: "Acme"}}, nil)
	deps.catalog.EXPECT().ListAdAccounts(gomock.Any(), "org-1").Return(testAccounts, nil)

	rec := httptest.NewRecorder()
	pages.CreateCampaigns().ServeHTTP(rec, signedIn(httptest.NewRequest(http.MethodGet, "/campaigns/create?organization_id=org-1", nil)))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "Org Acme has 2 accounts.")
	assert.Contains(t, body, "Tom &amp; Jerry")
	assert.Contains(t, body, `name="ad_account_ids" value="acc-2"`)
	assert.Contains(t, body, "No action")
	assert.Contains(t, body, `action="/logout"`)
}

func TestCreateCampaigns_readFailureIsShown(t *testing.T) {
	pages, deps := newTestPages(t)
	deps.catalog.EXPECT().ListOrganizations(gomock.Any()).Return(nil, assert.AnError)

	rec := httptest.NewRecorder()
	pages.CreateCampaigns().ServeHTTP(rec, signedIn(httptest.NewRequest(http.MethodGet, "/campaigns/create", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not load organizations")
	assert.Contains(t, rec.Body.String(), "Please select your organization")
}

func TestSubmitCampaigns(t *testing.T) {
	values := url.Values{
		"organization_id": {"org-1"},
		"ad_account_ids":  {"acc-1"},
		"campaign_name":   {"Spring"},
	}

	tests := []struct {
		name     string
		values   url.Values
		setup    func(deps pageDeps)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "started run redirects to its status page",
			values: values,
			setup: func(deps pageDeps) {
				deps.provisioning.EXPECT().Submit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, form provisioning.Form) (*domain.Run, error) {
						assert.Equal(t, []string{"acc-1"}, form.AdAccountIDs)
						assert.Equal(t, "Spring", form.Campaign.Name)
						return &domain.Run{ID: "run-1"}, nil
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusSeeOther, rec.Code)
				assert.Equal(t, "/campaigns/runs/run-1", rec.Header().Get("Location"))
			},
		},
		{
			name:   "nothing selected goes back to the page",
			values: url.Values{"organization_id": {"org-1"}},
			setup: func(deps pageDeps) {
				deps.provisioning.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusSeeOther, rec.Code)
				assert.Equal(t, "/campaigns/create?organization_id=org-1", rec.Header().Get("Location"))
			},
		},
		{
			name:   "validation errors keep the selection",
			values: values,
			setup: func(deps pageDeps) {
				deps.provisioning.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil,
					provisioning.NewProvisioningError(provisioning.ErrInvalidForm, apiErrors.ErrInvalidFormat, map[string]string{"campaign.objective": "required"}))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := rec.Body.String()
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, body, "campaign.objective: required")
				assert.Contains(t, body, `value="acc-1" checked`)
			},
		},
		{
			name: "unparsable fields never reach the service",
			values: url.Values{
				"organization_id":      {"org-1"},
				"ad_account_ids":       {"acc-1"},
				"ad_squad_age_max_age": {"old"},
			},
			setup: func(deps pageDeps) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), "ad_squad.max_age: number")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, deps := newTestPages(t)
			deps.catalog.EXPECT().ListOrganizations(gomock.Any()).Return([]domain.Organization{{ID: "org-1", Name: "Acme"}}, nil).AnyTimes()
			deps.catalog.EXPECT().ListAdAccounts(gomock.Any(), "org-1").Return(testAccounts, nil).AnyTimes()
			tt.setup(deps)

			rec := httptest.NewRecorder()
			pages.SubmitCampaigns().ServeHTTP(rec, postForm("/campaigns/create", tt.values))

			tt.validate(t, rec)
		})
	}
}

func TestRunStatus(t *testing.T) {
	finishedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(deps pageDeps)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "running run refreshes itself",
			setup: func(deps pageDeps) {
				deps.provisioning.EXPECT().GetRun(gomock.Any(), "run-1").Return(&domain.RunReport{
					Run: domain.Run{ID: "run-1", OrganizationID: "org-1", State: domain.RunRunning},
					Rows: []domain.AccountRow{
						{AdAccount: testAccounts[0], Status: domain.PendingStatus("Creating campaign...")},
					},
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := rec.Body.String()
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, body, `<meta http-equiv="refresh" content="2">`)
				assert.Contains(t, body, "Creating campaign...")
				assert.Contains(t, body, domain.ClassPending)
			},
		},
		{
			name: "finished run stops refreshing",
			setup: func(deps pageDeps) {
				deps.provisioning.EXPECT().GetRun(gomock.Any(), "run-1").Return(&domain.RunReport{
					Run: domain.Run{ID: "run-1", OrganizationID: "org-1", State: domain.RunFinished, FinishedAt: &finishedAt},
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.NotContains(t, rec.Body.String(), "http-equiv")
				assert.Contains(t, rec.Body.String(), "finished 2024-03-01T12:00:00Z")
			},
		},
		{
			name: "unknown run",
			setup: func(deps pageDeps) {
				deps.provisioning.EXPECT().GetRun(gomock.Any(), "run-1").
					Return(nil, provisioning.NewProvisioningError(provisioning.ErrRunNotFound, apiErrors.ErrNotFound, "run-1"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.Contains(t, rec.Body.String(), "run not found")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, deps := newTestPages(t)
			tt.setup(deps)

			rt := httprouter.New()
			rt.Handler(http.MethodGet, "/campaigns/runs/:id", pages.RunStatus())

			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, signedIn(httptest.NewRequest(http.MethodGet, "/campaigns/runs/run-1", nil)))

			tt.validate(t, rec)
		})
	}
}

func TestAccountCampaigns(t *testing.T) {
	pages, deps := newTestPages(t)
	budget := int64(12500000)
	deps.catalog.EXPECT().ListCampaigns(gomock.Any(), "acc-1").Return([]domain.Campaign{
		{ID: "c-1", Name: "<Spring>", Status: domain.LifecycleActive, Objective: domain.ObjectiveWebConversion, DailyBudgetMicro: &budget},
	}, nil)

	rt := httprouter.New()
	rt.Handler(http.MethodGet, "/adaccounts/:id/campaigns", pages.AccountCampaigns())

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, signedIn(httptest.NewRequest(http.MethodGet, "/adaccounts/acc-1/campaigns", nil)))

	body := rec.Body.String()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "&lt;Spring&gt;")
	assert.Contains(t, body, "WEB_CONVERSION")
}
