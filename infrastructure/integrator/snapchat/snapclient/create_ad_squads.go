package snapclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	snapdomain "github.com/tdhftu/snapchat-ads-tools/infrastructure/integrator/snapchat/domain"
	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
)

func (c *SnapClient) CreateAdSquads(ctx context.Context, campaignID string, drafts []domain.AdSquadDraft) (*snapdomain.AdSquadsResponse, error) {
	endpoint := c.url(fmt.Sprintf("/campaigns/%s/adsquads", url.PathEscape(campaignID)))

	var response snapdomain.AdSquadsResponse
	body := snapdomain.CreateAdSquadsRequest{AdSquads: drafts}
	if err := c.do(ctx, http.MethodPost, endpoint, body, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
