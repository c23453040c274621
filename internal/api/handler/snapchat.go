package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	snapdomain "github.com/tdhftu/snapchat-ads-tools/infrastructure/integrator/snapchat/domain"
	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/catalog"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/provisioning"
	"github.com/tdhftu/snapchat-ads-tools/pkg/apiErrors"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

// The /api/* endpoints answer with the Marketing API envelopes, so each
// pipeline stage can also be driven one call at a time.

func success() snapdomain.Envelope {
	return snapdomain.Envelope{RequestStatus: snapdomain.RequestStatusSuccess}
}

func succeeded() snapdomain.SubRequest {
	return snapdomain.SubRequest{SubRequestStatus: snapdomain.RequestStatusSuccess}
}

// rejection turns a platform rejection into the sub request shape.
// Any other error is returned unchanged.
func rejection(err error) (snapdomain.SubRequest, error) {
	var rejected *domain.RejectedError
	if errors.As(err, &rejected) {
		return snapdomain.SubRequest{
			SubRequestStatus:      snapdomain.RequestStatusError,
			SubRequestErrorReason: rejected.Reason,
		}, nil
	}
	return snapdomain.SubRequest{}, err
}

func writeUpstreamError(w http.ResponseWriter, r *http.Request, err error, message string) {
	log.ForContext(r.Context()).WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrExternalService, message, err.Error())
}

// @Summary List organizations
// @Tags snapchat
// @Produce json
// @Success 200 {object} snapdomain.OrganizationsResponse
// @Failure 502 {object} apiErrors.APIError
// @Router /api/organizations [get]
func ListOrganizations(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		organizations, err := service.ListOrganizations(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "failed to list organizations")
			return
		}

		resp := snapdomain.OrganizationsResponse{
			Envelope:      success(),
			Organizations: make([]snapdomain.OrganizationItem, 0, len(organizations)),
		}
		for i := range organizations {
			resp.Organizations = append(resp.Organizations, snapdomain.OrganizationItem{
				SubRequest:   succeeded(),
				Organization: &organizations[i],
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// @Summary List the ad accounts of an organization
// @Tags snapchat
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} snapdomain.AdAccountsResponse
// @Failure 502 {object} apiErrors.APIError
// @Router /api/organizations/{id}/adaccounts [get]
func ListAdAccounts(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		organizationID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		accounts, err := service.ListAdAccounts(r.Context(), organizationID)
		if err != nil {
			writeServiceError(w, r, err, "failed to list ad accounts")
			return
		}

		resp := snapdomain.AdAccountsResponse{
			Envelope:   success(),
			AdAccounts: make([]snapdomain.AdAccountItem, 0, len(accounts)),
		}
		for i := range accounts {
			resp.AdAccounts = append(resp.AdAccounts, snapdomain.AdAccountItem{
				SubRequest: succeeded(),
				AdAccount:  &accounts[i],
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// @Summary List the campaigns of an ad account
// @Tags snapchat
// @Produce json
// @Param id path string true "Ad account ID"
// @Success 200 {object} snapdomain.CampaignsResponse
// @Failure 502 {object} apiErrors.APIError
// @Router /api/adaccounts/{id}/campaigns [get]
func ListCampaigns(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adAccountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaigns, err := service.ListCampaigns(r.Context(), adAccountID)
		if err != nil {
			writeServiceError(w, r, err, "failed to list campaigns")
			return
		}

		resp := snapdomain.CampaignsResponse{
			Envelope:  success(),
			Campaigns: make([]snapdomain.CampaignItem, 0, len(campaigns)),
		}
		for i := range campaigns {
			resp.Campaigns = append(resp.Campaigns, snapdomain.CampaignItem{
				SubRequest: succeeded(),
				Campaign:   &campaigns[i],
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// @Summary Fetch the creatives of an ad account
// @Tags snapchat
// @Produce json
// @Param id path string true "Ad account ID"
// @Success 200 {object} snapdomain.CreativesResponse
// @Failure 502 {object} apiErrors.APIError
// @Router /api/adaccounts/{id}/creatives [post]
func ListCreatives(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adAccountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		creatives, err := service.ListCreatives(r.Context(), adAccountID)
		if err != nil {
			writeServiceError(w, r, err, "failed to list creatives")
			return
		}

		resp := snapdomain.CreativesResponse{
			Envelope:  success(),
			Creatives: make([]snapdomain.CreativeItem, 0, len(creatives)),
		}
		for i := range creatives {
			resp.Creatives = append(resp.Creatives, snapdomain.CreativeItem{
				SubRequest: succeeded(),
				Creative:   &creatives[i],
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// @Summary Create a campaign
// @Tags snapchat
// @Accept json
// @Produce json
// @Param draft body domain.CampaignDraft true "Campaign"
// @Success 200 {object} snapdomain.CampaignsResponse
// @Failure 400 {object} apiErrors.APIError
// @Failure 502 {object} apiErrors.APIError
// @Router /api/campaigns/create [post]
func CreateCampaign(platform provisioning.Platform) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft domain.CampaignDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid campaign payload", nil)
			return
		}
		if draft.AdAccountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ad_account_id is required", nil)
			return
		}

		campaign, err := platform.CreateCampaign(r.Context(), draft)
		item := snapdomain.CampaignItem{SubRequest: succeeded(), Campaign: campaign}
		if err != nil {
			if item.SubRequest, err = rejection(err); err != nil {
				writeUpstreamError(w, r, err, "failed to create campaign")
				return
			}
		}

		writeJSON(w, http.StatusOK, snapdomain.CampaignsResponse{
			Envelope:  success(),
			Campaigns: []snapdomain.CampaignItem{item},
		})
	}
}

// @Summary Create an ad squad
// @Tags snapchat
// @Accept json
// @Produce json
// @Param draft body domain.AdSquadDraft true "Ad squad"
// @Success 200 {object} snapdomain.AdSquadsResponse
// @Failure 400 {object} apiErrors.APIError
// @Failure 502 {object} apiErrors.APIError
// @Router /api/adsquads/create [post]
func CreateAdSquad(platform provisioning.Platform) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft domain.AdSquadDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid ad squad payload", nil)
			return
		}
		if draft.CampaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "campaign_id is required", nil)
			return
		}

		adSquad, err := platform.CreateAdSquad(r.Context(), draft)
		item := snapdomain.AdSquadItem{SubRequest: succeeded(), AdSquad: adSquad}
		if err != nil {
			if item.SubRequest, err = rejection(err); err != nil {
				writeUpstreamError(w, r, err, "failed to create ad squad")
				return
			}
		}

		writeJSON(w, http.StatusOK, snapdomain.AdSquadsResponse{
			Envelope: success(),
			AdSquads: []snapdomain.AdSquadItem{item},
		})
	}
}

// @Summary Create an ad
// @Tags snapchat
// @Accept json
// @Produce json
// @Param draft body domain.AdDraft true "Ad"
// @Success 200 {object} snapdomain.AdsResponse
// @Failure 400 {object} apiErrors.APIError
// @Failure 502 {object} apiErrors.APIError
// @Router /api/ads/create [post]
func CreateAd(platform provisioning.Platform) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var draft domain.AdDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid ad payload", nil)
			return
		}
		if draft.AdSquadID == "" || draft.CreativeID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ad_squad_id and creative_id are required", nil)
			return
		}

		ad, err := platform.CreateAd(r.Context(), draft)
		item := snapdomain.AdItem{SubRequest: succeeded(), Ad: ad}
		if err != nil {
			if item.SubRequest, err = rejection(err); err != nil {
				writeUpstreamError(w, r, err, "failed to create ad")
				return
			}
		}

		writeJSON(w, http.StatusOK, snapdomain.AdsResponse{
			Envelope: success(),
			Ads:      []snapdomain.AdItem{item},
		})
	}
}
