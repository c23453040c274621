package provisioning

import (
	"context"
	"time"

	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

// Status messages shown while an account moves through the pipeline
const (
	MessageCreatingCampaign = "Creating new campaign..."
	MessageCreatingAdSquad  = "Creating new adSquad..."
	MessageFetchingCreative = "Getting creatives..."
	MessageCreatingAd       = "Creating new ads..."
	MessageInterrupted      = "Run interrupted"

	FallbackCampaign = "Create campaign failed"
	FallbackAdSquad  = "Create adSquad failed"
	FallbackCreative = "No creative to create ads"
	FallbackAd       = "Create ad failed"
)

// accountPipeline carries what one account has created so far
type accountPipeline struct {
	adAccountID   string
	campaignDraft domain.CampaignDraft
	adSquadDraft  domain.AdSquadDraft

	campaign *domain.Campaign
	adSquad  *domain.AdSquad
	creative *domain.Creative
	ad       *domain.Ad
}

type step struct {
	stage    domain.Stage
	pending  string
	fallback string
	run      func(ctx context.Context, platform Platform, p *accountPipeline) error
}

// steps are the transitions CreatingCampaign -> CreatingAdSquad -> FetchingCreative -> CreatingAd -> Done.
// Any error moves the account to Failed and the remaining steps are skipped.
var steps = []step{
	{
		stage:    domain.StageCreatingCampaign,
		pending:  MessageCreatingCampaign,
		fallback: FallbackCampaign,
		run: func(ctx context.Context, platform Platform, p *accountPipeline) error {
			campaign, err := platform.CreateCampaign(ctx, p.campaignDraft.ForAccount(p.adAccountID))
			if err != nil {
				return err
			}
			if campaign == nil || campaign.ID == "" {
				return &domain.RejectedError{Entity: "campaign"}
			}
			p.campaign = campaign
			return nil
		},
	},
	{
		stage:    domain.StageCreatingAdSquad,
		pending:  MessageCreatingAdSquad,
		fallback: FallbackAdSquad,
		run: func(ctx context.Context, platform Platform, p *accountPipeline) error {
			adSquad, err := platform.CreateAdSquad(ctx, p.adSquadDraft.WithCampaign(p.campaign.ID))
			if err != nil {
				return err
			}
			if adSquad == nil || adSquad.ID == "" {
				return &domain.RejectedError{Entity: "adsquad"}
			}
			p.adSquad = adSquad
			return nil
		},
	},
	{
		stage:    domain.StageFetchingCreative,
		pending:  MessageFetchingCreative,
		fallback: FallbackCreative,
		run: func(ctx context.Context, platform Platform, p *accountPipeline) error {
			creative, err := platform.FirstCreative(ctx, p.adAccountID)
			if err != nil {
				return err
			}
			if creative == nil || creative.ID == "" {
				return &domain.RejectedError{Entity: "creative"}
			}
			p.creative = creative
			return nil
		},
	},
	{
		stage:    domain.StageCreatingAd,
		pending:  MessageCreatingAd,
		fallback: FallbackAd,
		run: func(ctx context.Context, platform Platform, p *accountPipeline) error {
			ad, err := platform.CreateAd(ctx, domain.NewAdDraft(p.adSquad.ID, *p.creative))
			if err != nil {
				return err
			}
			if ad == nil || ad.ID == "" {
				return &domain.RejectedError{Entity: "ad"}
			}
			p.ad = ad
			return nil
		},
	},
}

type reportFunc func(stage domain.Stage, status domain.Status)

func (p *accountPipeline) run(ctx context.Context, platform Platform, report reportFunc) domain.AccountOutcome {
	logger := log.ForContext(ctx).WithField("account_id", p.adAccountID)

	for _, current := range steps {
		report(current.stage, domain.PendingStatus(current.pending))

		if err := current.run(ctx, platform, p); err != nil {
			status := domain.ErrorStatus(failureMessage(err, current.fallback))
			logger.WithError(err).WithField("stage", current.stage).Warn("provisioning: stage failed")

			report(domain.StageFailed, status)
			return p.outcome(domain.StageFailed, current.stage, status)
		}
	}

	status := domain.SuccessStatus()
	report(domain.StageDone, status)
	return p.outcome(domain.StageDone, "", status)
}

// failureMessage prefers the platform's reason and falls back to the stage message
func failureMessage(err error, fallback string) string {
	if reason := domain.RejectionReason(err); reason != "" {
		return reason
	}
	return fallback
}

func (p *accountPipeline) outcome(stage, failedStage domain.Stage, status domain.Status) domain.AccountOutcome {
	outcome := domain.AccountOutcome{
		AdAccountID: p.adAccountID,
		Stage:       stage,
		FailedStage: failedStage,
		Status:      status,
		FinishedAt:  time.Now().UTC(),
	}
	if p.campaign != nil {
		outcome.CampaignID = p.campaign.ID
	}
	if p.adSquad != nil {
		outcome.AdSquadID = p.adSquad.ID
	}
	if p.creative != nil {
		outcome.CreativeID = p.creative.ID
	}
	if p.ad != nil {
		outcome.AdID = p.ad.ID
	}
	return outcome
}
