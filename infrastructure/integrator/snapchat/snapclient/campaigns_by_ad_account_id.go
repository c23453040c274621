package snapclient

import (
	"context"
	"fmt"
	"net/url"

	snapdomain "github.com/tdhftu/snapchat-ads-tools/infrastructure/integrator/snapchat/domain"
)

func (c *SnapClient) GetCampaignsByAdAccountID(ctx context.Context, adAccountID string) (*snapdomain.CampaignsResponse, error) {
	result := &snapdomain.CampaignsResponse{}
	endpoint := c.url(fmt.Sprintf("/adaccounts/%s/campaigns", url.PathEscape(adAccountID)))

	err := getAllPages(ctx, c, endpoint, func(page snapdomain.CampaignsResponse) {
		result.Envelope = page.Envelope
		result.Campaigns = append(result.Campaigns, page.Campaigns...)
	})
	if err != nil {
		return nil, err
	}

	result.Paging = nil
	return result, nil
}
