package domain

import "time"

type Objective string

const (
	ObjectiveWebConversion  Objective = "WEB_CONVERSION"
	ObjectiveBrandAwareness Objective = "BRAND_AWARENESS"
)

// LifecycleStatus is the delivery status shared by campaigns, ad squads and ads
type LifecycleStatus string

const (
	LifecycleActive LifecycleStatus = "ACTIVE"
	LifecyclePaused LifecycleStatus = "PAUSED"
)

type Campaign struct {
	ID                    string          `json:"id"`
	AdAccountID           string          `json:"ad_account_id"`
	Name                  string          `json:"name"`
	Objective             Objective       `json:"objective,omitempty"`
	Status                LifecycleStatus `json:"status"`
	StartTime             *time.Time      `json:"start_time,omitempty"`
	EndTime               *time.Time      `json:"end_time,omitempty"`
	DailyBudgetMicro      *int64          `json:"daily_budget_micro,omitempty"`
	LifetimeSpendCapMicro *int64          `json:"lifetime_spend_cap_micro,omitempty"`
}

// CampaignDraft is the create-campaign payload. Only AdAccountID changes between accounts of a run.
type CampaignDraft struct {
	AdAccountID           string          `json:"ad_account_id"`
	Name                  string          `json:"name"`
	Objective             Objective       `json:"objective"`
	Status                LifecycleStatus `json:"status"`
	StartTime             *time.Time      `json:"start_time,omitempty"`
	EndTime               *time.Time      `json:"end_time,omitempty"`
	DailyBudgetMicro      *int64          `json:"daily_budget_micro,omitempty"`
	LifetimeSpendCapMicro *int64          `json:"lifetime_spend_cap_micro,omitempty"`
}

// ForAccount returns a copy of the draft bound to adAccountID
func (d CampaignDraft) ForAccount(adAccountID string) CampaignDraft {
	d.AdAccountID = adAccountID
	return d
}
