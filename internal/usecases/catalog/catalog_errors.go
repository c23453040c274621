package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrOrganizationIDRequired = errors.New("organization ID is required")
	ErrAdAccountIDRequired    = errors.New("ad account ID is required")

	ErrFetchOrganizations = errors.New("error fetching organizations from Snapchat")
	ErrFetchAdAccounts    = errors.New("error fetching ad accounts from Snapchat")
	ErrFetchCampaigns     = errors.New("error fetching campaigns from Snapchat")
	ErrFetchCreatives     = errors.New("error fetching creatives from Snapchat")
)

// CatalogError carries the API code for a failed read
type CatalogError struct {
	Err      error
	Code     string
	EntityID string
	Details  string
}

func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func NewCatalogError(err error, code string, entityID string, details string) *CatalogError {
	return &CatalogError{
		Err:      err,
		Code:     code,
		EntityID: entityID,
		Details:  details,
	}
}
