package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyResult is returned when the platform answered without the expected entity
var ErrEmptyResult = errors.New("empty result")

// RejectedError is a business failure reported by the platform in a 200 response
type RejectedError struct {
	Entity string
	Reason string
}

func (e *RejectedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s rejected", e.Entity)
	}
	return fmt.Sprintf("%s rejected: %s", e.Entity, e.Reason)
}

func (e *RejectedError) Unwrap() error {
	return ErrEmptyResult
}

// RejectionReason returns the platform-supplied reason carried by err, if any
func RejectionReason(err error) string {
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected.Reason
	}
	return ""
}
