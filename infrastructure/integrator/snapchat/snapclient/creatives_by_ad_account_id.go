package snapclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	snapdomain "github.com/tdhftu/snapchat-ads-tools/infrastructure/integrator/snapchat/domain"
)

// GetCreativesByAdAccountID reads the first page only; callers use the first creative
func (c *SnapClient) GetCreativesByAdAccountID(ctx context.Context, adAccountID string) (*snapdomain.CreativesResponse, error) {
	endpoint := c.url(fmt.Sprintf("/adaccounts/%s/creatives", url.PathEscape(adAccountID)))

	var response snapdomain.CreativesResponse
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
