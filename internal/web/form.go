package web

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/provisioning"
	"github.com/tdhftu/snapchat-ads-tools/pkg/utils"
)

// parseForm reads the creation page fields into a provisioning form.
// Values that cannot be parsed are reported by field and left at their zero value.
func parseForm(values url.Values) (provisioning.Form, map[string]string) {
	errs := make(map[string]string)
	form := provisioning.Form{
		OrganizationID: strings.TrimSpace(values.Get("organization_id")),
		AdAccountIDs:   values["ad_account_ids"],
	}

	form.Campaign = provisioning.CampaignForm{
		Name:                  strings.TrimSpace(values.Get("campaign_name")),
		Objective:             domain.Objective(values.Get("campaign_objective")),
		Status:                domain.LifecycleStatus(values.Get("campaign_status")),
		StartTime:             parseTime(values, "campaign_start_time", "campaign.start_time", errs),
		EndTime:               parseTime(values, "campaign_end_time", "campaign.end_time", errs),
		DailyBudgetMicro:      parseOptionalInt(values, "campaign_daily_budget_micro", "campaign.daily_budget_micro", errs),
		LifetimeSpendCapMicro: parseOptionalInt(values, "campaign_lifetime_spend_cap_micro", "campaign.lifetime_spend_cap_micro", errs),
	}

	form.AdSquad = provisioning.AdSquadForm{
		Name:               strings.TrimSpace(values.Get("ad_squad_name")),
		Status:             domain.LifecycleStatus(values.Get("ad_squad_status")),
		StartTime:          parseTime(values, "ad_squad_start_time", "ad_squad.start_time", errs),
		EndTime:            parseTime(values, "ad_squad_end_time", "ad_squad.end_time", errs),
		DeliveryConstraint: domain.DeliveryConstraint(values.Get("ad_squad_delivery_constraint")),
		Gender:             values.Get("ad_squad_gender"),
		OSType:             values.Get("ad_squad_os_type"),
		ConnectionType:     values.Get("ad_squad_connection_type"),
	}
	if budget := parseOptionalInt(values, "ad_squad_daily_budget_micro", "ad_squad.daily_budget_micro", errs); budget != nil {
		form.AdSquad.DailyBudgetMicro = *budget
	}
	if minAge := parseOptionalInt(values, "ad_squad_age_min_age", "ad_squad.min_age", errs); minAge != nil {
		form.AdSquad.MinAge = int(*minAge)
	}
	if maxAge := parseOptionalInt(values, "ad_squad_age_max_age", "ad_squad.max_age", errs); maxAge != nil {
		form.AdSquad.MaxAge = int(*maxAge)
	}

	return form, errs
}

func parseTime(values url.Values, name, field string, errs map[string]string) *time.Time {
	t, err := utils.ParseDateTime(values.Get(name), time.UTC)
	if err != nil {
		errs[field] = "datetime"
		return nil
	}
	return t
}

func parseOptionalInt(values url.Values, name, field string, errs map[string]string) *int64 {
	raw := strings.ReplaceAll(strings.TrimSpace(values.Get(name)), " ", "")
	if raw == "" {
		return nil
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		errs[field] = "number"
		return nil
	}
	return &n
}
