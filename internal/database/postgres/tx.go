package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/repository"
)

// tx implements every repository transaction interface over one pgx.Tx
type tx struct {
	tx pgx.Tx
}

func (t *tx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *tx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return repository.ErrTxClosed
	}
	return err
}

func (t *tx) GetUserForUpdate(ctx context.Context, telegramID int64) (*domain.User, error) {
	return scanUser(t.tx.QueryRow(ctx, SQLSelectUserForUpdate, telegramID))
}

// AdjustBalance adds delta and returns the new balance. A negative result violates the
// balance check constraint and is reported as insufficient balance.
func (t *tx) AdjustBalance(ctx context.Context, telegramID int64, delta decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := t.tx.QueryRow(ctx, SQLAdjustBalance, telegramID, delta).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrUserNotFound
		}
		if isPgError(err, PgErrorCodeCheckViolation) {
			return decimal.Zero, domain.ErrInsufficientBalance
		}
		return decimal.Zero, fmt.Errorf("%s: %w", ErrMsgFailedToAdjustBalance, err)
	}
	return balance, nil
}

func (t *tx) SetBalance(ctx context.Context, telegramID int64, balance decimal.Decimal) error {
	return t.execOne(ctx, domain.ErrUserNotFound, ErrMsgFailedToAdjustBalance, SQLSetBalance, telegramID, balance)
}

func (t *tx) IncrementGamesPlayed(ctx context.Context, telegramID int64) error {
	return t.execOne(ctx, domain.ErrUserNotFound, ErrMsgFailedToUpdateUser, SQLIncGames, telegramID)
}

func (t *tx) InsertGameHistory(ctx context.Context, entry *domain.GameHistory) (int64, error) {
	details, err := marshalDetails(entry.Details)
	if err != nil {
		return 0, err
	}
	err = t.tx.QueryRow(ctx, SQLInsertGameHistory,
		entry.UserID, string(entry.GameType), entry.Stake, entry.Result, entry.Multiplier, details,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertHistory, err)
	}
	return entry.ID, nil
}

func (t *tx) InsertRound(ctx context.Context, round int64, result domain.Color) error {
	if _, err := t.tx.Exec(ctx, SQLInsertRound, round, string(result)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRound, err)
	}
	return nil
}

func (t *tx) InsertInventoryItem(ctx context.Context, item *domain.InventoryItem) (int64, error) {
	err := t.tx.QueryRow(ctx, SQLInsertInventory,
		item.UserID, item.GiftName, item.GiftImage, item.SellPrice,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertInventory, err)
	}
	return item.ID, nil
}

func (t *tx) GetInventoryItemForUpdate(ctx context.Context, telegramID, itemID int64) (*domain.InventoryItem, error) {
	item, err := scanInventoryItem(t.tx.QueryRow(ctx, SQLSelectInventoryForUpdate, itemID, telegramID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventory, err)
	}
	return &item, nil
}

func (t *tx) DeleteInventoryItem(ctx context.Context, itemID int64) error {
	return t.execOne(ctx, domain.ErrItemNotFound, ErrMsgFailedToListInventory, SQLDeleteInventory, itemID)
}

func (t *tx) AddTotalDeposited(ctx context.Context, telegramID int64, amount decimal.Decimal) error {
	return t.execOne(ctx, domain.ErrUserNotFound, ErrMsgFailedToUpdateUser, SQLAddTotalDeposited, telegramID, amount)
}

func (t *tx) AdjustRefBalance(ctx context.Context, telegramID int64, delta decimal.Decimal) (decimal.Decimal, error) {
	var refBalance decimal.Decimal
	err := t.tx.QueryRow(ctx, SQLAdjustRefBalance, telegramID, delta).Scan(&refBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrUserNotFound
		}
		if isPgError(err, PgErrorCodeCheckViolation) {
			return decimal.Zero, domain.ErrInsufficientBalance
		}
		return decimal.Zero, fmt.Errorf("%s: %w", ErrMsgFailedToAdjustBalance, err)
	}
	return refBalance, nil
}

func (t *tx) SetRefPercent(ctx context.Context, telegramID int64, percent int) error {
	return t.execOne(ctx, domain.ErrUserNotFound, ErrMsgFailedToUpdateUser, SQLSetRefPercent, telegramID, percent)
}

func (t *tx) InsertDeposit(ctx context.Context, deposit *domain.Deposit) (int64, error) {
	err := t.tx.QueryRow(ctx, SQLInsertDeposit,
		deposit.UserID, deposit.Amount, string(deposit.Method), string(deposit.Status), deposit.Memo,
	).Scan(&deposit.ID, &deposit.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertDeposit, err)
	}
	return deposit.ID, nil
}

func (t *tx) GetDepositByMemoForUpdate(ctx context.Context, memo string) (*domain.Deposit, error) {
	var (
		d              domain.Deposit
		method, status string
	)
	err := t.tx.QueryRow(ctx, SQLSelectDepositByMemoForUpdate, memo).
		Scan(&d.ID, &d.UserID, &d.Amount, &method, &status, &d.Memo, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDepositNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateDeposit, err)
	}
	d.Method = domain.DepositMethod(method)
	d.Status = domain.DepositStatus(status)
	return &d, nil
}

func (t *tx) UpdateDepositStatus(ctx context.Context, depositID int64, status domain.DepositStatus) error {
	return t.execOne(ctx, domain.ErrDepositNotFound, ErrMsgFailedToUpdateDeposit, SQLUpdateDepositStatus, depositID, string(status))
}

func (t *tx) InsertWithdrawal(ctx context.Context, w *domain.Withdrawal) (int64, error) {
	err := t.tx.QueryRow(ctx, SQLInsertWithdrawal,
		w.UserID, w.Amount, w.WalletAddress, string(w.Status),
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToInsertWithdrawal, err)
	}
	return w.ID, nil
}

func (t *tx) GetWithdrawalForUpdate(ctx context.Context, withdrawalID int64) (*domain.Withdrawal, error) {
	w, err := scanWithdrawal(t.tx.QueryRow(ctx, SQLSelectWithdrawalForUpdate, withdrawalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWithdrawalNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateWithdrawal, err)
	}
	return &w, nil
}

func (t *tx) UpdateWithdrawal(ctx context.Context, withdrawalID int64, status domain.WithdrawalStatus, note string) error {
	return t.execOne(ctx, domain.ErrWithdrawalNotFound, ErrMsgFailedToUpdateWithdrawal, SQLUpdateWithdrawal, withdrawalID, string(status), note)
}

// execOne runs a statement that must touch exactly one row
func (t *tx) execOne(ctx context.Context, notFound error, errMsg, sql string, args ...any) error {
	tag, err := t.tx.Exec(ctx, sql, args...)
	if err != nil {
		if isPgError(err, PgErrorCodeCheckViolation) {
			return domain.ErrInsufficientBalance
		}
		return fmt.Errorf("%s: %w", errMsg, err)
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}
