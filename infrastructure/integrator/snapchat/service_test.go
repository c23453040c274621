package snapchat

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	snapdomain "github.com/tdhftu/snapchat-ads-tools/infrastructure/integrator/snapchat/domain"
	"github.com/tdhftu/snapchat-ads-tools/infrastructure/integrator/snapchat/snapclient"
	"github.com/tdhftu/snapchat-ads-tools/infrastructure/integrator/snapchat/snapclient/mocks"
	"github.com/tdhftu/snapchat-ads-tools/internal/config"
	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func TestSnapIntegrator_CreateCampaign(t *testing.T) {
	draft := domain.CampaignDraft{AdAccountID: "acc-1", Name: "Launch", Objective: domain.ObjectiveWebConversion, Status: domain.LifecycleActive}

	tests := []struct {
		name     string
		setup    func(client *mocks.MockClient)
		validate func(t *testing.T, campaign *domain.Campaign, err error)
	}{
		{
			name: "returns first campaign",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().CreateCampaigns(gomock.Any(), "acc-1", []domain.CampaignDraft{draft}).Return(&snapdomain.CampaignsResponse{
					Campaigns: []snapdomain.CampaignItem{{Campaign: &domain.Campaign{ID: "c-1"}}},
				}, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				require.NoError(t, err)
				assert.Equal(t, "c-1", campaign.ID)
			},
		},
		{
			name: "rejection carries the server reason",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().CreateCampaigns(gomock.Any(), "acc-1", gomock.Any()).Return(&snapdomain.CampaignsResponse{
					Campaigns: []snapdomain.CampaignItem{{SubRequest: snapdomain.SubRequest{SubRequestErrorReason: "INSUFFICIENT_FUNDS"}}},
				}, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.Nil(t, campaign)
				assert.Equal(t, "INSUFFICIENT_FUNDS", domain.RejectionReason(err))
			},
		},
		{
			name: "empty array is a rejection without reason",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().CreateCampaigns(gomock.Any(), "acc-1", gomock.Any()).Return(&snapdomain.CampaignsResponse{}, nil)
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				assert.ErrorIs(t, err, domain.ErrEmptyResult)
				assert.Empty(t, domain.RejectionReason(err))
			},
		},
		{
			name: "transport error is wrapped",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().CreateCampaigns(gomock.Any(), "acc-1", gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			validate: func(t *testing.T, campaign *domain.Campaign, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "create campaign")
				assert.NotErrorIs(t, err, domain.ErrEmptyResult)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			campaign, err := New(client).CreateCampaign(context.Background(), draft)
			tt.validate(t, campaign, err)
		})
	}
}

func TestSnapIntegrator_CreateAdSquadRequiresCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	_, err := New(client).CreateAdSquad(context.Background(), domain.AdSquadDraft{Name: "squad"})
	assert.ErrorIs(t, err, ErrMissingCampaignID)
}

func TestSnapIntegrator_FirstCreative(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().GetCreativesByAdAccountID(gomock.Any(), "acc-1").Return(&snapdomain.CreativesResponse{
		Creatives: []snapdomain.CreativeItem{
			{Creative: &domain.Creative{ID: "cr-1", Headline: "First"}},
			{Creative: &domain.Creative{ID: "cr-2", Headline: "Second"}},
		},
	}, nil)
	client.EXPECT().GetCreativesByAdAccountID(gomock.Any(), "acc-2").Return(&snapdomain.CreativesResponse{}, nil)

	integrator := New(client)

	creative, err := integrator.FirstCreative(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "cr-1", creative.ID)

	_, err = integrator.FirstCreative(context.Background(), "acc-2")
	var rejected *domain.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "creative", rejected.Entity)
}

func TestSnapIntegrator_ListAdAccountsSkipsEmptyItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().GetAdAccountsByOrganizationID(gomock.Any(), "org-1").Return(&snapdomain.AdAccountsResponse{
		AdAccounts: []snapdomain.AdAccountItem{
			{AdAccount: &domain.AdAccount{ID: "acc-1", Name: "One"}},
			{SubRequest: snapdomain.SubRequest{SubRequestErrorReason: "FORBIDDEN"}},
		},
	}, nil)

	accounts, err := New(client).ListAdAccounts(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Equal(t, []domain.AdAccount{{ID: "acc-1", Name: "One"}}, accounts)
}

func TestSnapIntegrator_CreateCampaignRejectedWithBadRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"request_status":"ERROR","campaigns":[{"sub_request_status":"ERROR","sub_request_error_reason":"INSUFFICIENT_FUNDS"}]}`)
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{Snapchat: config.Snapchat{
		APIURL:         server.URL,
		AccessToken:    "token-1",
		RequestTimeout: 5 * time.Second,
	}}
	integrator := New(snapclient.NewClient(cfg, snapclient.NewTokenManager(cfg)))

	campaign, err := integrator.CreateCampaign(context.Background(), domain.CampaignDraft{AdAccountID: "acc-1", Name: "Launch"})

	assert.Nil(t, campaign)
	var rejected *domain.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "INSUFFICIENT_FUNDS", rejected.Reason)
}
