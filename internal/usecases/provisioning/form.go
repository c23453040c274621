package provisioning

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())
	Validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	Validate.RegisterStructValidation(scheduleValidation, CampaignForm{}, AdSquadForm{})
}

// Form is the shared payload submitted once for every selected account
type Form struct {
	OrganizationID string       `json:"organization_id" yaml:"organization_id" validate:"required"`
	AdAccountIDs   []string     `json:"ad_account_ids" yaml:"ad_account_ids"`
	Campaign       CampaignForm `json:"campaign" yaml:"campaign"`
	AdSquad        AdSquadForm  `json:"ad_squad" yaml:"ad_squad"`
}

type CampaignForm struct {
	Name                  string                 `json:"name" yaml:"name" validate:"required,max=375"`
	Objective             domain.Objective       `json:"objective" yaml:"objective" validate:"required,oneof=WEB_CONVERSION BRAND_AWARENESS"`
	Status                domain.LifecycleStatus `json:"status" yaml:"status" validate:"required,oneof=ACTIVE PAUSED"`
	StartTime             *time.Time             `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime               *time.Time             `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	DailyBudgetMicro      *int64                 `json:"daily_budget_micro,omitempty" yaml:"daily_budget_micro,omitempty" validate:"omitempty,gte=0"`
	LifetimeSpendCapMicro *int64                 `json:"lifetime_spend_cap_micro,omitempty" yaml:"lifetime_spend_cap_micro,omitempty" validate:"omitempty,gte=0"`
}

type AdSquadForm struct {
	Name               string                    `json:"name" yaml:"name" validate:"required,max=375"`
	Status             domain.LifecycleStatus    `json:"status" yaml:"status" validate:"required,oneof=ACTIVE PAUSED"`
	StartTime          *time.Time                `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime            *time.Time                `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	DailyBudgetMicro   int64                     `json:"daily_budget_micro" yaml:"daily_budget_micro" validate:"gte=0"`
	DeliveryConstraint domain.DeliveryConstraint `json:"delivery_constraint" yaml:"delivery_constraint" validate:"required,oneof=DAILY_BUDGET LIFETIME_BUDGET"`
	MinAge             int                       `json:"min_age" yaml:"min_age" validate:"gte=13,lte=65"`
	MaxAge             int                       `json:"max_age" yaml:"max_age" validate:"gte=13,lte=65,gtefield=MinAge"`
	Gender             string                    `json:"gender" yaml:"gender" validate:"required,oneof=ALL MALE FEMALE"`
	OSType             string                    `json:"os_type" yaml:"os_type" validate:"required,oneof=ALL iOS Android"`
	ConnectionType     string                    `json:"connection_type" yaml:"connection_type" validate:"required,oneof=ALL CELL WIFI"`
}

// DefaultForm holds the values the creation page starts with
func DefaultForm() Form {
	return Form{
		Campaign: CampaignForm{
			Objective: domain.ObjectiveWebConversion,
			Status:    domain.LifecycleActive,
		},
		AdSquad: AdSquadForm{
			Status:             domain.LifecycleActive,
			DailyBudgetMicro:   5000000,
			DeliveryConstraint: domain.DeliveryDailyBudget,
			MinAge:             13,
			MaxAge:             50,
			Gender:             domain.TargetAll,
			OSType:             domain.TargetAll,
			ConnectionType:     domain.TargetAll,
		},
	}
}

func scheduleValidation(sl validator.StructLevel) {
	var start, end *time.Time
	switch form := sl.Current().Interface().(type) {
	case CampaignForm:
		start, end = form.StartTime, form.EndTime
	case AdSquadForm:
		start, end = form.StartTime, form.EndTime
	}

	if start != nil && end != nil && !end.After(*start) {
		sl.ReportError(end, "end_time", "EndTime", "gtfield", "start_time")
	}
}

// CampaignDraft builds the campaign payload. The ad account is set per account.
func (f Form) CampaignDraft() domain.CampaignDraft {
	return domain.CampaignDraft{
		Name:                  f.Campaign.Name,
		Objective:             f.Campaign.Objective,
		Status:                f.Campaign.Status,
		StartTime:             f.Campaign.StartTime,
		EndTime:               f.Campaign.EndTime,
		DailyBudgetMicro:      f.Campaign.DailyBudgetMicro,
		LifetimeSpendCapMicro: f.Campaign.LifetimeSpendCapMicro,
	}
}

// AdSquadDraft builds the ad squad payload without campaign_id
func (f Form) AdSquadDraft(countryCode string) domain.AdSquadDraft {
	squad := f.AdSquad

	demographic := domain.Demographic{MinAge: squad.MinAge, MaxAge: squad.MaxAge}
	if squad.Gender != domain.TargetAll {
		demographic.Gender = domain.Gender(squad.Gender)
	}

	device := domain.Device{}
	if squad.OSType != domain.TargetAll {
		device.OSType = domain.OSType(squad.OSType)
	}
	if squad.ConnectionType != domain.TargetAll {
		device.ConnectionType = domain.ConnectionType(squad.ConnectionType)
	}

	return domain.AdSquadDraft{
		Name:               squad.Name,
		Status:             squad.Status,
		StartTime:          squad.StartTime,
		EndTime:            squad.EndTime,
		Type:               domain.AdSquadTypeSnapAds,
		BidStrategy:        domain.BidStrategyAutoBid,
		BillingEvent:       domain.BillingEventImpression,
		AutoBid:            true,
		TargetBid:          false,
		ChildAdType:        domain.ChildAdTypeRemoteWeb,
		OptimizationGoal:   domain.OptimizationGoalSwipes,
		DeliveryConstraint: squad.DeliveryConstraint,
		DailyBudgetMicro:   squad.DailyBudgetMicro,
		PlacementV2:        domain.Placement{Config: domain.PlacementAutomatic},
		Targeting: domain.Targeting{
			Demographics: []domain.Demographic{demographic},
			Devices:      []domain.Device{device},
			Geos:         []domain.Geo{{CountryCode: countryCode}},
		},
	}
}

// FieldErrors flattens validator errors into json field name -> failed rule
func FieldErrors(err error) map[string]string {
	fields := map[string]string{}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fields
	}

	for _, fieldErr := range validationErrors {
		fields[fieldPath(fieldErr.Namespace())] = fieldErr.Tag()
	}
	return fields
}

// fieldPath drops the root struct name from a validator namespace
func fieldPath(namespace string) string {
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}
	return namespace
}
