package snapclient

import (
	"context"

	snapdomain "github.com/tdhftu/snapchat-ads-tools/infrastructure/integrator/snapchat/domain"
)

func (c *SnapClient) GetOrganizations(ctx context.Context) (*snapdomain.OrganizationsResponse, error) {
	result := &snapdomain.OrganizationsResponse{}

	err := getAllPages(ctx, c, c.url("/me/organizations"), func(page snapdomain.OrganizationsResponse) {
		result.Envelope = page.Envelope
		result.Organizations = append(result.Organizations, page.Organizations...)
	})
	if err != nil {
		return nil, err
	}

	result.Paging = nil
	return result, nil
}
