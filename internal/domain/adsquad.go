package domain

import "time"

type DeliveryConstraint string

const (
	DeliveryDailyBudget    DeliveryConstraint = "DAILY_BUDGET"
	DeliveryLifetimeBudget DeliveryConstraint = "LIFETIME_BUDGET"
)

// Platform defaults applied to every ad squad created by the tool
const (
	AdSquadTypeSnapAds     = "SNAP_ADS"
	BidStrategyAutoBid     = "AUTO_BID"
	BillingEventImpression = "IMPRESSION"
	ChildAdTypeRemoteWeb   = "REMOTE_WEBPAGE"
	OptimizationGoalSwipes = "SWIPES"
	PlacementAutomatic     = "AUTOMATIC"
)

// TargetAll is the form value meaning "no restriction"; it is never sent upstream
const TargetAll = "ALL"

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

type OSType string

const (
	OSTypeIOS     OSType = "iOS"
	OSTypeAndroid OSType = "Android"
)

type ConnectionType string

const (
	ConnectionCell ConnectionType = "CELL"
	ConnectionWifi ConnectionType = "WIFI"
)

type AdSquad struct {
	ID         string          `json:"id"`
	CampaignID string          `json:"campaign_id"`
	Name       string          `json:"name"`
	Status     LifecycleStatus `json:"status"`
	Type       string          `json:"type,omitempty"`
}

type Demographic struct {
	Gender Gender `json:"gender,omitempty"`
	MinAge int    `json:"min_age,omitempty"`
	MaxAge int    `json:"max_age,omitempty"`
}

type Device struct {
	OSType         OSType         `json:"os_type,omitempty"`
	ConnectionType ConnectionType `json:"connection_type,omitempty"`
}

type Geo struct {
	CountryCode string `json:"country_code"`
}

type Targeting struct {
	Demographics []Demographic `json:"demographics,omitempty"`
	Devices      []Device      `json:"devices,omitempty"`
	Geos         []Geo         `json:"geos"`
}

type Placement struct {
	Config string `json:"config"`
}

type AdSquadDraft struct {
	CampaignID         string             `json:"campaign_id"`
	Name               string             `json:"name"`
	Status             LifecycleStatus    `json:"status"`
	StartTime          *time.Time         `json:"start_time,omitempty"`
	EndTime            *time.Time         `json:"end_time,omitempty"`
	Type               string             `json:"type"`
	BidStrategy        string             `json:"bid_strategy"`
	BillingEvent       string             `json:"billing_event"`
	AutoBid            bool               `json:"auto_bid"`
	TargetBid          bool               `json:"target_bid"`
	ChildAdType        string             `json:"child_ad_type"`
	OptimizationGoal   string             `json:"optimization_goal"`
	DeliveryConstraint DeliveryConstraint `json:"delivery_constraint"`
	DailyBudgetMicro   int64              `json:"daily_budget_micro"`
	PlacementV2        Placement          `json:"placement_v2"`
	Targeting          Targeting          `json:"targeting"`
}

// WithCampaign returns a copy of the draft attached to campaignID. Targeting slices are shared
// and must be treated as read-only.
func (d AdSquadDraft) WithCampaign(campaignID string) AdSquadDraft {
	d.CampaignID = campaignID
	return d
}
