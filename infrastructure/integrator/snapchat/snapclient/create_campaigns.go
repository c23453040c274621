package snapclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	snapdomain "github.com/tdhftu/snapchat-ads-tools/infrastructure/integrator/snapchat/domain"
	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
)

func (c *SnapClient) CreateCampaigns(ctx context.Context, adAccountID string, drafts []domain.CampaignDraft) (*snapdomain.CampaignsResponse, error) {
	endpoint := c.url(fmt.Sprintf("/adaccounts/%s/campaigns", url.PathEscape(adAccountID)))

	var response snapdomain.CampaignsResponse
	body := snapdomain.CreateCampaignsRequest{Campaigns: drafts}
	if err := c.do(ctx, http.MethodPost, endpoint, body, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
