package domain

type Organization struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country,omitempty"`
	Type        string `json:"type,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
	AddressLine string `json:"address_line_1,omitempty"`
}

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusPaused   AdAccountStatus = "PAUSED"
	AdAccountStatusDisabled AdAccountStatus = "DISABLED"
)

type AdAccount struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Status         AdAccountStatus `json:"status"`
	Currency       string          `json:"currency"`
	OrganizationID string          `json:"organization_id,omitempty"`
	Type           string          `json:"type,omitempty"`
	Timezone       string          `json:"timezone,omitempty"`
}

// IsActive is used by the account table to badge active accounts
func (a AdAccount) IsActive() bool {
	return a.Status == AdAccountStatusActive
}
