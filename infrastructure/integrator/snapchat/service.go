package snapchat

import (
	"context"

	"github.com/pkg/errors"

	snapdomain "github.com/tdhftu/snapchat-ads-tools/infrastructure/integrator/snapchat/domain"
	"github.com/tdhftu/snapchat-ads-tools/infrastructure/integrator/snapchat/snapclient"
	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

// SnapIntegrator maps Marketing API envelopes into domain entities
type SnapIntegrator struct {
	Client snapclient.Client
}

func New(client snapclient.Client) *SnapIntegrator {
	return &SnapIntegrator{Client: client}
}

func (s *SnapIntegrator) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	resp, err := s.Client.GetOrganizations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list organizations")
	}

	organizations := make([]domain.Organization, 0, len(resp.Organizations))
	for _, item := range resp.Organizations {
		if item.Organization != nil {
			organizations = append(organizations, *item.Organization)
		}
	}
	return organizations, nil
}

func (s *SnapIntegrator) ListAdAccounts(ctx context.Context, organizationID string) ([]domain.AdAccount, error) {
	resp, err := s.Client.GetAdAccountsByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, errors.Wrapf(err, "list ad accounts of organization %s", organizationID)
	}

	accounts := make([]domain.AdAccount, 0, len(resp.AdAccounts))
	for _, item := range resp.AdAccounts {
		if item.AdAccount != nil {
			accounts = append(accounts, *item.AdAccount)
		}
	}
	return accounts, nil
}

func (s *SnapIntegrator) ListCampaigns(ctx context.Context, adAccountID string) ([]domain.Campaign, error) {
	resp, err := s.Client.GetCampaignsByAdAccountID(ctx, adAccountID)
	if err != nil {
		return nil, errors.Wrapf(err, "list campaigns of ad account %s", adAccountID)
	}

	campaigns := make([]domain.Campaign, 0, len(resp.Campaigns))
	for _, item := range resp.Campaigns {
		if item.Campaign != nil {
			campaigns = append(campaigns, *item.Campaign)
		}
	}
	return campaigns, nil
}

func (s *SnapIntegrator) ListCreatives(ctx context.Context, adAccountID string) ([]domain.Creative, error) {
	resp, err := s.Client.GetCreativesByAdAccountID(ctx, adAccountID)
	if err != nil {
		return nil, errors.Wrapf(err, "list creatives of ad account %s", adAccountID)
	}

	creatives := make([]domain.Creative, 0, len(resp.Creatives))
	for _, item := range resp.Creatives {
		if item.Creative != nil {
			creatives = append(creatives, *item.Creative)
		}
	}
	return creatives, nil
}

// CreateCampaign returns a *domain.RejectedError when the first element carries no campaign
func (s *SnapIntegrator) CreateCampaign(ctx context.Context, draft domain.CampaignDraft) (*domain.Campaign, error) {
	resp, err := s.Client.CreateCampaigns(ctx, draft.AdAccountID, []domain.CampaignDraft{draft})
	if err != nil {
		return nil, errors.Wrap(err, "create campaign")
	}

	if len(resp.Campaigns) == 0 || resp.Campaigns[0].Campaign == nil {
		return nil, rejected(ctx, "campaign", resp.Envelope, firstReason(resp.Campaigns, func(i snapdomain.CampaignItem) string {
			return i.SubRequestErrorReason
		}))
	}
	return resp.Campaigns[0].Campaign, nil
}

func (s *SnapIntegrator) CreateAdSquad(ctx context.Context, draft domain.AdSquadDraft) (*domain.AdSquad, error) {
	if draft.CampaignID == "" {
		return nil, ErrMissingCampaignID
	}

	resp, err := s.Client.CreateAdSquads(ctx, draft.CampaignID, []domain.AdSquadDraft{draft})
	if err != nil {
		return nil, errors.Wrap(err, "create ad squad")
	}

	if len(resp.AdSquads) == 0 || resp.AdSquads[0].AdSquad == nil {
		return nil, rejected(ctx, "adsquad", resp.Envelope, firstReason(resp.AdSquads, func(i snapdomain.AdSquadItem) string {
			return i.SubRequestErrorReason
		}))
	}
	return resp.AdSquads[0].AdSquad, nil
}

// FirstCreative returns the first creative of the account
func (s *SnapIntegrator) FirstCreative(ctx context.Context, adAccountID string) (*domain.Creative, error) {
	resp, err := s.Client.GetCreativesByAdAccountID(ctx, adAccountID)
	if err != nil {
		return nil, errors.Wrapf(err, "list creatives of ad account %s", adAccountID)
	}

	if len(resp.Creatives) == 0 || resp.Creatives[0].Creative == nil {
		return nil, rejected(ctx, "creative", resp.Envelope, firstReason(resp.Creatives, func(i snapdomain.CreativeItem) string {
			return i.SubRequestErrorReason
		}))
	}
	return resp.Creatives[0].Creative, nil
}

func (s *SnapIntegrator) CreateAd(ctx context.Context, draft domain.AdDraft) (*domain.Ad, error) {
	resp, err := s.Client.CreateAds(ctx, draft.AdSquadID, []domain.AdDraft{draft})
	if err != nil {
		return nil, errors.Wrap(err, "create ad")
	}

	if len(resp.Ads) == 0 || resp.Ads[0].Ad == nil {
		return nil, rejected(ctx, "ad", resp.Envelope, firstReason(resp.Ads, func(i snapdomain.AdItem) string {
			return i.SubRequestErrorReason
		}))
	}
	return resp.Ads[0].Ad, nil
}

// RefreshToken forces a new access token
func (s *SnapIntegrator) RefreshToken(ctx context.Context) error {
	return s.Client.RefreshToken(ctx)
}

func firstReason[T any](items []T, reason func(T) string) string {
	if len(items) == 0 {
		return ""
	}
	return reason(items[0])
}

func rejected(ctx context.Context, entity string, envelope snapdomain.Envelope, reason string) error {
	log.ForContext(ctx).WithFields(log.Fields{
		"entity":     entity,
		"request_id": envelope.RequestID,
		"reason":     reason,
	}).Warn("snapchat: no entity in response")

	return &domain.RejectedError{Entity: entity, Reason: reason}
}
