package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
)

func TestInsertRunQuery(t *testing.T) {
	startedAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	run := &domain.Run{
		ID:             "run-1",
		OrganizationID: "org-1",
		AdAccountIDs:   []string{"acc-1", "acc-2"},
		State:          domain.RunPending,
		StartedAt:      startedAt,
	}

	query, args, err := insertRunQuery(run)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO provisioning_runs (id,organization_id,ad_account_ids,state,started_at) VALUES ($1,$2,$3,$4,$5)", query)
	require.Len(t, args, 5)
	assert.Equal(t, "run-1", args[0])
	assert.Equal(t, pq.Array([]string{"acc-1", "acc-2"}), args[2])
	assert.Equal(t, "PENDING", args[3])
	assert.Equal(t, startedAt, args[4])
}

func TestUpsertOutcomeQuery(t *testing.T) {
	outcome := domain.AccountOutcome{
		AdAccountID:   "acc-1",
		AdAccountName: "Main",
		Stage:         domain.StageFailed,
		FailedStage:   domain.StageCreatingCampaign,
		Status:        domain.ErrorStatus("INSUFFICIENT_FUNDS"),
	}

	query, args, err := upsertOutcomeQuery("run-1", 2, outcome)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO provisioning_outcomes (run_id,ad_account_id,"))
	assert.Contains(t, query, "ON CONFLICT (run_id, ad_account_id) DO UPDATE")
	require.Len(t, args, 13)
	assert.Equal(t, 2, args[3])
	assert.Equal(t, "FAILED", args[4])
	assert.Equal(t, "CREATING_CAMPAIGN", args[5])
	assert.Equal(t, "error", args[6])
	assert.Equal(t, "INSUFFICIENT_FUNDS", args[7])
}
