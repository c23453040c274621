package web

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/provisioning"
)

//go:generate templ generate

const datetimeLocalLayout = "2006-01-02T15:04"

type LayoutOptions struct {
	Title string
	// RefreshSeconds adds a meta refresh while a run is in progress
	RefreshSeconds int
	SignedIn       bool
}

type LoginView struct {
	Email string
	Next  string
	Error string
}

// CreateView is everything the campaign creation page shows
type CreateView struct {
	Organizations  []domain.Organization
	OrganizationID string
	Rows           []domain.AccountRow
	Selected       map[string]bool
	Form           provisioning.Form
	Errors         []string
	FieldErrors    map[string]string
}

func (v CreateView) organizationName() string {
	for _, organization := range v.Organizations {
		if organization.ID == v.OrganizationID {
			return organization.Name
		}
	}
	return ""
}

func (v CreateView) selectedNames() string {
	names := make([]string, 0, len(v.Selected))
	for _, row := range v.Rows {
		if v.Selected[row.AdAccount.ID] {
			names = append(names, row.AdAccount.Name)
		}
	}
	return strings.Join(names, ", ")
}

type CampaignsView struct {
	AdAccountID string
	Campaigns   []domain.Campaign
	Errors      []string
}

// fieldMessages lists field errors as "field: message", sorted by field
func fieldMessages(errs map[string]string) []string {
	if len(errs) == 0 {
		return nil
	}
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, field+": "+errs[field])
	}
	return messages
}

func objectiveOptions() []string {
	return []string{string(domain.ObjectiveWebConversion), string(domain.ObjectiveBrandAwareness)}
}

func lifecycleOptions() []string {
	return []string{string(domain.LifecycleActive), string(domain.LifecyclePaused)}
}

func deliveryOptions() []string {
	return []string{string(domain.DeliveryDailyBudget), string(domain.DeliveryLifetimeBudget)}
}

func genderOptions() []string {
	return []string{domain.TargetAll, string(domain.GenderMale), string(domain.GenderFemale)}
}

func osTypeOptions() []string {
	return []string{string(domain.OSTypeIOS), string(domain.OSTypeAndroid), domain.TargetAll}
}

func connectionOptions() []string {
	return []string{domain.TargetAll, string(domain.ConnectionCell), string(domain.ConnectionWifi)}
}

func optionLabel(option string) string {
	return strings.ReplaceAll(option, "_", " ")
}

func optionalInt(value *int64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatInt(*value, 10)
}

func datetimeLocal(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.UTC().Format(datetimeLocalLayout)
}

func runTimes(run domain.Run) string {
	text := "Started " + run.StartedAt.UTC().Format(time.RFC3339)
	if run.FinishedAt != nil {
		text += ", finished " + run.FinishedAt.UTC().Format(time.RFC3339)
	}
	return text
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04")
}
