package snapdomain

import "github.com/tdhftu/snapchat-ads-tools/internal/domain"

const (
	RequestStatusSuccess = "SUCCESS"
	RequestStatusError   = "ERROR"
)

// Envelope carries the fields shared by every Marketing API response
type Envelope struct {
	RequestStatus  string  `json:"request_status,omitempty"`
	RequestID      string  `json:"request_id,omitempty"`
	DebugMessage   string  `json:"debug_message,omitempty"`
	DisplayMessage string  `json:"display_message,omitempty"`
	ErrorCode      string  `json:"error_code,omitempty"`
	Paging         *Paging `json:"paging,omitempty"`
}

type Paging struct {
	NextLink string `json:"next_link,omitempty"`
}

// NextLink returns the url of the next page, empty on the last page
func (e Envelope) NextLink() string {
	if e.Paging == nil {
		return ""
	}
	return e.Paging.NextLink
}

// SubRequest is the per-element status wrapper
type SubRequest struct {
	SubRequestStatus      string `json:"sub_request_status,omitempty"`
	SubRequestErrorReason string `json:"sub_request_error_reason,omitempty"`
}

type OrganizationItem struct {
	SubRequest
	Organization *domain.Organization `json:"organization,omitempty"`
}

type OrganizationsResponse struct {
	Envelope
	Organizations []OrganizationItem `json:"organizations"`
}

type AdAccountItem struct {
	SubRequest
	AdAccount *domain.AdAccount `json:"adaccount,omitempty"`
}

type AdAccountsResponse struct {
	Envelope
	AdAccounts []AdAccountItem `json:"adaccounts"`
}

type CampaignItem struct {
	SubRequest
	Campaign *domain.Campaign `json:"campaign,omitempty"`
}

type CampaignsResponse struct {
	Envelope
	Campaigns []CampaignItem `json:"campaigns"`
}

type AdSquadItem struct {
	SubRequest
	AdSquad *domain.AdSquad `json:"adsquad,omitempty"`
}

type AdSquadsResponse struct {
	Envelope
	AdSquads []AdSquadItem `json:"adsquads"`
}

type CreativeItem struct {
	SubRequest
	Creative *domain.Creative `json:"creative,omitempty"`
}

type CreativesResponse struct {
	Envelope
	Creatives []CreativeItem `json:"creatives"`
}

type AdItem struct {
	SubRequest
	Ad *domain.Ad `json:"ad,omitempty"`
}

type AdsResponse struct {
	Envelope
	Ads []AdItem `json:"ads"`
}

// RejectionReason returns the reason of the first element, empty when there is none
func (r *CampaignsResponse) RejectionReason() string {
	if len(r.Campaigns) == 0 {
		return ""
	}
	return r.Campaigns[0].SubRequestErrorReason
}

func (r *AdSquadsResponse) RejectionReason() string {
	if len(r.AdSquads) == 0 {
		return ""
	}
	return r.AdSquads[0].SubRequestErrorReason
}

func (r *AdsResponse) RejectionReason() string {
	if len(r.Ads) == 0 {
		return ""
	}
	return r.Ads[0].SubRequestErrorReason
}

// Create request bodies

type CreateCampaignsRequest struct {
	Campaigns []domain.CampaignDraft `json:"campaigns"`
}

type CreateAdSquadsRequest struct {
	AdSquads []domain.AdSquadDraft `json:"adsquads"`
}

type CreateAdsRequest struct {
	Ads []domain.AdDraft `json:"ads"`
}
