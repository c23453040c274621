package domain

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatus_Class(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		class  string
	}{
		{name: "idle is neutral", status: IdleStatus(), class: ClassNeutral},
		{name: "pending", status: PendingStatus("Creating new campaign..."), class: ClassPending},
		{name: "error", status: ErrorStatus("INSUFFICIENT_FUNDS"), class: ClassError},
		{name: "success resets to neutral", status: SuccessStatus(), class: ClassNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.class, tt.status.Class())
		})
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, IdleStatus().Terminal())
	assert.False(t, PendingStatus("x").Terminal())
	assert.True(t, ErrorStatus("x").Terminal())
	assert.True(t, SuccessStatus().Terminal())
	assert.Equal(t, "Done", SuccessStatus().Message)
	assert.Equal(t, "No action", IdleStatus().Message)
}

func TestRejectionReason(t *testing.T) {
	err := errors.Wrap(&RejectedError{Entity: "campaign", Reason: "INSUFFICIENT_FUNDS"}, "create campaign")

	assert.Equal(t, "INSUFFICIENT_FUNDS", RejectionReason(err))
	assert.ErrorIs(t, err, ErrEmptyResult)
	assert.Empty(t, RejectionReason(errors.New("boom")))
}

func TestNewAdDraft(t *testing.T) {
	draft := NewAdDraft("sq-1", Creative{ID: "cr-1", Headline: "Summer sale"})

	assert.Equal(t, AdDraft{
		AdSquadID:  "sq-1",
		CreativeID: "cr-1",
		Name:       "Summer sale",
		Status:     LifecycleActive,
		Type:       AdTypeRemoteWebpage,
	}, draft)
}

func TestParseStatusKind(t *testing.T) {
	for _, kind := range []StatusKind{StatusIdle, StatusPending, StatusError, StatusSuccess} {
		text, err := kind.MarshalText()
		assert.NoError(t, err)
		assert.Equal(t, kind, ParseStatusKind(string(text)))
	}
	assert.Equal(t, StatusIdle, ParseStatusKind("unknown"))
}
