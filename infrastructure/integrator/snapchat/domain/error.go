package snapdomain

import (
	"fmt"
	"net/http"
)

// ErrorResponse is the body returned with a non-2xx status
type ErrorResponse struct {
	Envelope
	StatusCode int    `json:"-"`
	Body       string `json:"-"`
	// Raw is the undecoded response body
	Raw []byte `json:"-"`
}

func (e *ErrorResponse) Error() string {
	message := e.DisplayMessage
	if message == "" {
		message = e.DebugMessage
	}
	if message == "" {
		message = e.Body
	}
	return fmt.Sprintf("snapchat api status %d: %s", e.StatusCode, message)
}

// IsTokenExpired reports whether the access token was rejected
func (e *ErrorResponse) IsTokenExpired() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsClientError reports a 4xx answer other than an expired token
func (e *ErrorResponse) IsClientError() bool {
	return e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError && !e.IsTokenExpired()
}
