package memrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/repository"
)

// Tx works on a private copy of the store that Commit swaps in
type Tx struct {
	store  *Store
	state  *state
	closed bool
}

var _ repository.WalletTx = (*Tx)(nil)
var _ repository.RollsTx = (*Tx)(nil)
var _ repository.CaseTx = (*Tx)(nil)
var _ repository.InventoryTx = (*Tx)(nil)

func (t *Tx) Commit(ctx context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.closed = true
	defer t.store.mu.Unlock()
	if t.store.CommitErr != nil {
		return t.store.CommitErr
	}
	t.store.state = t.state
	return nil
}

func (t *Tx) Rollback(ctx context.Context) error {
	if t.closed {
		return repository.ErrTxClosed
	}
	t.closed = true
	t.store.mu.Unlock()
	return nil
}

func (t *Tx) GetUserForUpdate(ctx context.Context, telegramID int64) (*domain.User, error) {
	u, ok := t.state.users[telegramID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (t *Tx) AdjustBalance(ctx context.Context, telegramID int64, delta decimal.Decimal) (decimal.Decimal, error) {
	u, ok := t.state.users[telegramID]
	if !ok {
		return decimal.Zero, domain.ErrUserNotFound
	}
	next := u.Balance.Add(delta)
	if next.Sign() < 0 {
		return decimal.Zero, domain.ErrInsufficientBalance
	}
	u.Balance = next
	t.state.users[telegramID] = u
	return next, nil
}

func (t *Tx) SetBalance(ctx context.Context, telegramID int64, balance decimal.Decimal) error {
	u, ok := t.state.users[telegramID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Balance = balance
	t.state.users[telegramID] = u
	return nil
}

func (t *Tx) IncrementGamesPlayed(ctx context.Context, telegramID int64) error {
	u, ok := t.state.users[telegramID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.GamesPlayed++
	t.state.users[telegramID] = u
	return nil
}

func (t *Tx) InsertGameHistory(ctx context.Context, entry *domain.GameHistory) (int64, error) {
	row := *entry
	row.ID = t.state.id()
	row.CreatedAt = t.store.now()
	t.state.games = append(t.state.games, row)
	return row.ID, nil
}

func (t *Tx) InsertRound(ctx context.Context, number int64, result domain.Color) error {
	t.state.rounds = append(t.state.rounds, round{number: number, result: result})
	return nil
}

func (t *Tx) InsertInventoryItem(ctx context.Context, item *domain.InventoryItem) (int64, error) {
	row := *item
	row.ID = t.state.id()
	row.CreatedAt = t.store.now()
	t.state.inventory[row.ID] = row
	return row.ID, nil
}

func (t *Tx) GetInventoryItemForUpdate(ctx context.Context, telegramID, itemID int64) (*domain.InventoryItem, error) {
	item, ok := t.state.inventory[itemID]
	if !ok || item.UserID != telegramID {
		return nil, domain.ErrItemNotFound
	}
	return &item, nil
}

func (t *Tx) DeleteInventoryItem(ctx context.Context, itemID int64) error {
	if _, ok := t.state.inventory[itemID]; !ok {
		return domain.ErrItemNotFound
	}
	delete(t.state.inventory, itemID)
	return nil
}

func (t *Tx) AddTotalDeposited(ctx context.Context, telegramID int64, amount decimal.Decimal) error {
	u, ok := t.state.users[telegramID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.TotalDeposited = u.TotalDeposited.Add(amount)
	t.state.users[telegramID] = u
	return nil
}

func (t *Tx) AdjustRefBalance(ctx context.Context, telegramID int64, delta decimal.Decimal) (decimal.Decimal, error) {
	u, ok := t.state.users[telegramID]
	if !ok {
		return decimal.Zero, domain.ErrUserNotFound
	}
	next := u.RefBalance.Add(delta)
	if next.Sign() < 0 {
		return decimal.Zero, domain.ErrInsufficientBalance
	}
	u.RefBalance = next
	t.state.users[telegramID] = u
	return next, nil
}

func (t *Tx) SetRefPercent(ctx context.Context, telegramID int64, percent int) error {
	u, ok := t.state.users[telegramID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.RefPercent = percent
	t.state.users[telegramID] = u
	return nil
}

func (t *Tx) InsertDeposit(ctx context.Context, deposit *domain.Deposit) (int64, error) {
	row := *deposit
	row.ID = t.state.id()
	row.CreatedAt = t.store.now()
	t.state.deposits[row.ID] = row
	return row.ID, nil
}

func (t *Tx) GetDepositByMemoForUpdate(ctx context.Context, memo string) (*domain.Deposit, error) {
	for _, d := range t.state.deposits {
		if d.Memo == memo {
			return &d, nil
		}
	}
	return nil, domain.ErrDepositNotFound
}

func (t *Tx) UpdateDepositStatus(ctx context.Context, depositID int64, status domain.DepositStatus) error {
	d, ok := t.state.deposits[depositID]
	if !ok {
		return domain.ErrDepositNotFound
	}
	d.Status = status
	t.state.deposits[depositID] = d
	return nil
}

func (t *Tx) InsertWithdrawal(ctx context.Context, w *domain.Withdrawal) (int64, error) {
	row := *w
	row.ID = t.state.id()
	row.CreatedAt = t.store.now()
	row.UpdatedAt = row.CreatedAt
	t.state.withdrawals[row.ID] = row
	return row.ID, nil
}

func (t *Tx) GetWithdrawalForUpdate(ctx context.Context, withdrawalID int64) (*domain.Withdrawal, error) {
	w, ok := t.state.withdrawals[withdrawalID]
	if !ok {
		return nil, domain.ErrWithdrawalNotFound
	}
	return &w, nil
}

func (t *Tx) UpdateWithdrawal(ctx context.Context, withdrawalID int64, status domain.WithdrawalStatus, note string) error {
	w, ok := t.state.withdrawals[withdrawalID]
	if !ok {
		return domain.ErrWithdrawalNotFound
	}
	w.Status = status
	w.AdminNote = note
	w.UpdatedAt = t.store.now()
	t.state.withdrawals[withdrawalID] = w
	return nil
}
