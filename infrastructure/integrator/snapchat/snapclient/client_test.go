package snapclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	snapdomain "github.com/tdhftu/snapchat-ads-tools/infrastructure/integrator/snapchat/domain"
	"github.com/tdhftu/snapchat-ads-tools/internal/config"
	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func newTestClient(t *testing.T, handler http.Handler) (*SnapClient, *TokenManager) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Snapchat: config.Snapchat{
			APIURL:         server.URL + "/v1",
			AuthURL:        server.URL + "/oauth2/access_token",
			ClientID:       "client",
			ClientSecret:   "secret",
			RefreshToken:   "refresh-1",
			AccessToken:    "token-1",
			RequestTimeout: 5 * time.Second,
		},
	}

	tokenManager := NewTokenManager(cfg)
	client := NewClient(cfg, tokenManager).(*SnapClient)
	return client, tokenManager
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestSnapClient_GetOrganizations(t *testing.T) {
	var serverURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/me/organizations", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-1", r.Header.Get("Authorization"))

		if r.URL.Query().Get("cursor") == "" {
			writeJSON(w, http.StatusOK, `{
				"request_status": "SUCCESS",
				"request_id": "req-1",
				"paging": {"next_link": "`+serverURL+`/v1/me/organizations?cursor=2"},
				"organizations": [{"sub_request_status": "SUCCESS", "organization": {"id": "org-1", "name": "Acme"}}]
			}`)
			return
		}

		writeJSON(w, http.StatusOK, `{
			"request_status": "SUCCESS",
			"request_id": "req-2",
			"organizations": [{"sub_request_status": "SUCCESS", "organization": {"id": "org-2", "name": "Globex"}}]
		}`)
	})

	client, _ := newTestClient(t, mux)
	serverURL = client.Cfg.Snapchat.APIURL[:len(client.Cfg.Snapchat.APIURL)-len("/v1")]

	resp, err := client.GetOrganizations(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Organizations, 2)
	assert.Equal(t, "org-1", resp.Organizations[0].Organization.ID)
	assert.Equal(t, "Globex", resp.Organizations[1].Organization.Name)
	assert.Equal(t, "req-2", resp.RequestID)
	assert.Empty(t, resp.NextLink())
}

func TestSnapClient_RefreshesOnUnauthorized(t *testing.T) {
	var refreshes, calls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/access_token", func(w http.ResponseWriter, r *http.Request) {
		refreshes.Add(1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "refresh-1", r.PostForm.Get("refresh_token"))
		assert.Equal(t, "client", r.PostForm.Get("client_id"))

		writeJSON(w, http.StatusOK, `{"access_token": "token-2", "token_type": "Bearer", "expires_in": 1800, "refresh_token": "refresh-2"}`)
	})
	mux.HandleFunc("/v1/adaccounts/acc-1/campaigns", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Header.Get("Authorization") != "Bearer token-2" {
			writeJSON(w, http.StatusUnauthorized, `{"request_status": "ERROR", "debug_message": "expired"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"request_status": "SUCCESS", "campaigns": [{"campaign": {"id": "c-1", "name": "Spring"}}]}`)
	})

	client, tokenManager := newTestClient(t, mux)

	resp, err := client.GetCampaignsByAdAccountID(context.Background(), "acc-1")
	require.NoError(t, err)

	require.Len(t, resp.Campaigns, 1)
	assert.Equal(t, "c-1", resp.Campaigns[0].Campaign.ID)
	assert.Equal(t, int32(1), refreshes.Load())
	assert.Equal(t, int32(2), calls.Load())
	assert.False(t, tokenManager.ExpiresAt().IsZero())
}

func TestSnapClient_UnauthorizedTwiceFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/access_token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"access_token": "token-2", "expires_in": 1800}`)
	})
	mux.HandleFunc("/v1/me/organizations", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"request_status": "ERROR", "display_message": "Unauthorized"}`)
	})

	client, _ := newTestClient(t, mux)

	_, err := client.GetOrganizations(context.Background())
	require.Error(t, err)

	var apiErr *snapdomain.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "Unauthorized")
}

func TestSnapClient_CreateCampaigns(t *testing.T) {
	tests := []struct {
		name     string
		response string
		validate func(t *testing.T, resp *snapdomain.CampaignsResponse)
	}{
		{
			name:     "created",
			response: `{"request_status": "SUCCESS", "campaigns": [{"sub_request_status": "SUCCESS", "campaign": {"id": "c-9", "ad_account_id": "acc-1", "name": "Launch"}}]}`,
			validate: func(t *testing.T, resp *snapdomain.CampaignsResponse) {
				require.Len(t, resp.Campaigns, 1)
				require.NotNil(t, resp.Campaigns[0].Campaign)
				assert.Equal(t, "c-9", resp.Campaigns[0].Campaign.ID)
			},
		},
		{
			name:     "rejected",
			response: `{"request_status": "ERROR", "campaigns": [{"sub_request_status": "ERROR", "sub_request_error_reason": "INSUFFICIENT_FUNDS"}]}`,
			validate: func(t *testing.T, resp *snapdomain.CampaignsResponse) {
				require.Len(t, resp.Campaigns, 1)
				assert.Nil(t, resp.Campaigns[0].Campaign)
				assert.Equal(t, "INSUFFICIENT_FUNDS", resp.Campaigns[0].SubRequestErrorReason)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/v1/adaccounts/acc-1/campaigns", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				var body snapdomain.CreateCampaignsRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				require.Len(t, body.Campaigns, 1)
				assert.Equal(t, "acc-1", body.Campaigns[0].AdAccountID)
				assert.Equal(t, domain.ObjectiveBrandAwareness, body.Campaigns[0].Objective)

				writeJSON(w, http.StatusOK, tt.response)
			})

			client, _ := newTestClient(t, mux)

			draft := domain.CampaignDraft{
				AdAccountID: "acc-1",
				Name:        "Launch",
				Objective:   domain.ObjectiveBrandAwareness,
				Status:      domain.LifecyclePaused,
			}

			resp, err := client.CreateCampaigns(context.Background(), "acc-1", []domain.CampaignDraft{draft})
			require.NoError(t, err)
			tt.validate(t, resp)
		})
	}
}

func TestSnapClient_ServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/adsquads/sq-1/ads", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `oops`)
	})

	client, _ := newTestClient(t, mux)

	_, err := client.CreateAds(context.Background(), "sq-1", []domain.AdDraft{{AdSquadID: "sq-1"}})
	require.Error(t, err)

	var apiErr *snapdomain.ErrorResponse
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "oops", apiErr.Body)
}

func TestSnapClient_RejectionWithClientErrorStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
		validate func(t *testing.T, resp *snapdomain.AdSquadsResponse, err error)
	}{
		{
			name:     "rejected envelope is decoded",
			status:   http.StatusBadRequest,
			response: `{"request_status": "ERROR", "adsquads": [{"sub_request_status": "ERROR", "sub_request_error_reason": "Budget below minimum"}]}`,
			validate: func(t *testing.T, resp *snapdomain.AdSquadsResponse, err error) {
				require.NoError(t, err)
				require.Len(t, resp.AdSquads, 1)
				assert.Nil(t, resp.AdSquads[0].AdSquad)
				assert.Equal(t, "Budget below minimum", resp.RejectionReason())
			},
		},
		{
			name:     "error without sub request reason stays an api error",
			status:   http.StatusBadRequest,
			response: `{"request_status": "ERROR", "debug_message": "invalid campaign id"}`,
			validate: func(t *testing.T, resp *snapdomain.AdSquadsResponse, err error) {
				var apiErr *snapdomain.ErrorResponse
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
				assert.Contains(t, err.Error(), "invalid campaign id")
			},
		},
		{
			name:     "server error is never read as a rejection",
			status:   http.StatusInternalServerError,
			response: `{"request_status": "ERROR", "adsquads": [{"sub_request_status": "ERROR", "sub_request_error_reason": "internal"}]}`,
			validate: func(t *testing.T, resp *snapdomain.AdSquadsResponse, err error) {
				var apiErr *snapdomain.ErrorResponse
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/v1/campaigns/c-1/adsquads", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.response)
			})

			client, _ := newTestClient(t, mux)

			resp, err := client.CreateAdSquads(context.Background(), "c-1", []domain.AdSquadDraft{{CampaignID: "c-1", Name: "Squad"}})
			tt.validate(t, resp, err)
		})
	}
}
