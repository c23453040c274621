package domain

type Creative struct {
	ID          string `json:"id"`
	AdAccountID string `json:"ad_account_id"`
	Name        string `json:"name"`
	Headline    string `json:"headline"`
	Type        string `json:"type,omitempty"`
	Brand       string `json:"brand_name,omitempty"`
}
