package domain

const AdTypeRemoteWebpage = "REMOTE_WEBPAGE"

type Ad struct {
	ID         string          `json:"id"`
	AdSquadID  string          `json:"ad_squad_id"`
	CreativeID string          `json:"creative_id"`
	Name       string          `json:"name"`
	Status     LifecycleStatus `json:"status"`
	Type       string          `json:"type"`
}

type AdDraft struct {
	AdSquadID  string          `json:"ad_squad_id"`
	CreativeID string          `json:"creative_id"`
	Name       string          `json:"name"`
	Status     LifecycleStatus `json:"status"`
	Type       string          `json:"type"`
}

// NewAdDraft builds the ad created for a squad from the account's creative
func NewAdDraft(adSquadID string, creative Creative) AdDraft {
	return AdDraft{
		AdSquadID:  adSquadID,
		CreativeID: creative.ID,
		Name:       creative.Headline,
		Status:     LifecycleActive,
		Type:       AdTypeRemoteWebpage,
	}
}
