package snapclient

import (
	"context"
	"fmt"
	"net/url"

	snapdomain "github.com/tdhftu/snapchat-ads-tools/infrastructure/integrator/snapchat/domain"
)

func (c *SnapClient) GetAdAccountsByOrganizationID(ctx context.Context, organizationID string) (*snapdomain.AdAccountsResponse, error) {
	result := &snapdomain.AdAccountsResponse{}
	endpoint := c.url(fmt.Sprintf("/organizations/%s/adaccounts", url.PathEscape(organizationID)))

	err := getAllPages(ctx, c, endpoint, func(page snapdomain.AdAccountsResponse) {
		result.Envelope = page.Envelope
		result.AdAccounts = append(result.AdAccounts, page.AdAccounts...)
	})
	if err != nil {
		return nil, err
	}

	result.Paging = nil
	return result, nil
}
