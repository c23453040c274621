package provisioning

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidForm    = errors.New("invalid campaign form")
	ErrFetchAccounts  = errors.New("error fetching ad accounts")
	ErrUnknownAccount = errors.New("ad account does not belong to the organization")
	ErrGenerateID     = errors.New("error generating run id")
	ErrRunNotFound    = errors.New("run not found")
	ErrHistory        = errors.New("error reading run history")
)

// ProvisioningError carries the API code the handlers answer with
type ProvisioningError struct {
	Err     error
	Code    string
	Details any
}

func (e *ProvisioningError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}

func NewProvisioningError(err error, code string, details any) *ProvisioningError {
	return &ProvisioningError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
