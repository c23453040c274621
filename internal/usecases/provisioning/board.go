package provisioning

import (
	"sync"

	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
)

// Board holds the status rows of one run. Rows are replaced whole, by account id,
// and readers only ever receive copies.
type Board struct {
	mu    sync.RWMutex
	order []string
	rows  map[string]domain.AccountRow
}

func NewBoard(accounts []domain.AdAccount) *Board {
	board := &Board{
		order: make([]string, 0, len(accounts)),
		rows:  make(map[string]domain.AccountRow, len(accounts)),
	}

	for _, account := range accounts {
		if _, exists := board.rows[account.ID]; exists {
			continue
		}
		board.order = append(board.order, account.ID)
		board.rows[account.ID] = domain.AccountRow{AdAccount: account, Status: domain.IdleStatus()}
	}

	return board
}

func (b *Board) Has(adAccountID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.rows[adAccountID]
	return ok
}

// SetStatus replaces the row of adAccountID. Unknown ids are ignored.
func (b *Board) SetStatus(adAccountID string, status domain.Status) (domain.AccountRow, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	row, ok := b.rows[adAccountID]
	if !ok {
		return domain.AccountRow{}, false
	}

	updated := domain.AccountRow{AdAccount: row.AdAccount, Status: status}
	b.rows[adAccountID] = updated
	return updated, true
}

func (b *Board) Row(adAccountID string) (domain.AccountRow, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	row, ok := b.rows[adAccountID]
	return row, ok
}

// Rows returns a snapshot in the order accounts were loaded
func (b *Board) Rows() []domain.AccountRow {
	b.mu.RLock()
	defer b.mu.RUnlock()

	rows := make([]domain.AccountRow, 0, len(b.order))
	for _, id := range b.order {
		rows = append(rows, b.rows[id])
	}
	return rows
}
