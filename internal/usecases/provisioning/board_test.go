package provisioning

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
)

func TestBoard_SetStatusReplacesOnlyTargetRow(t *testing.T) {
	board := NewBoard(organizationAccounts)
	before := board.Rows()

	row, ok := board.SetStatus("acc2", domain.PendingStatus(MessageCreatingAdSquad))
	assert.True(t, ok)
	assert.Equal(t, organizationAccounts[1], row.AdAccount)

	after := board.Rows()
	assert.Empty(t, cmp.Diff(before[0], after[0]))
	assert.Empty(t, cmp.Diff(before[2], after[2]))
	assert.Equal(t, domain.PendingStatus(MessageCreatingAdSquad), after[1].Status)

	// snapshots are not affected by later writes
	board.SetStatus("acc1", domain.SuccessStatus())
	assert.Equal(t, domain.IdleStatus(), after[0].Status)
}

func TestBoard_UnknownAndDuplicateAccounts(t *testing.T) {
	board := NewBoard(append(organizationAccounts, organizationAccounts[0]))

	assert.Len(t, board.Rows(), 3)
	assert.False(t, board.Has("acc9"))

	_, ok := board.SetStatus("acc9", domain.ErrorStatus("x"))
	assert.False(t, ok)
}
