package snapclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	snapdomain "github.com/tdhftu/snapchat-ads-tools/infrastructure/integrator/snapchat/domain"
	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
)

func (c *SnapClient) CreateAds(ctx context.Context, adSquadID string, drafts []domain.AdDraft) (*snapdomain.AdsResponse, error) {
	endpoint := c.url(fmt.Sprintf("/adsquads/%s/ads", url.PathEscape(adSquadID)))

	var response snapdomain.AdsResponse
	body := snapdomain.CreateAdsRequest{Ads: drafts}
	if err := c.do(ctx, http.MethodPost, endpoint, body, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
