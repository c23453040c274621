package utils

import (
	"strings"
	"time"
)

// datetimeLocalLayout is the value format of an HTML datetime-local input
const datetimeLocalLayout = "2006-01-02T15:04"

// ParseDateTime accepts RFC3339 or datetime-local values. An empty string yields nil.
func ParseDateTime(value string, loc *time.Location) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return &t, nil
	}

	if loc == nil {
		loc = time.UTC
	}

	t, err := time.ParseInLocation(datetimeLocalLayout, value, loc)
	if err != nil {
		return nil, err
	}

	t = t.UTC()
	return &t, nil
}
