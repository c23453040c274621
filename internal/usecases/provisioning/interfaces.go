package provisioning

import (
	"context"

	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
)

// Platform creates the entities of the pipeline on the advertising platform.
// A business rejection is reported as *domain.RejectedError.
type Platform interface {
	CreateCampaign(ctx context.Context, draft domain.CampaignDraft) (*domain.Campaign, error)
	CreateAdSquad(ctx context.Context, draft domain.AdSquadDraft) (*domain.AdSquad, error)
	FirstCreative(ctx context.Context, adAccountID string) (*domain.Creative, error)
	CreateAd(ctx context.Context, draft domain.AdDraft) (*domain.Ad, error)
}

// AccountLister loads the ad accounts offered for selection
type AccountLister interface {
	ListAdAccounts(ctx context.Context, organizationID string) ([]domain.AdAccount, error)
}

// Observer is notified of every board change
type Observer interface {
	StatusChanged(ctx context.Context, event domain.StatusEvent)
}
