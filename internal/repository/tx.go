package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
)

// ErrTxClosed is returned by Rollback once the transaction has been committed
var ErrTxClosed = errors.New("transaction already closed")

// Tx defines the balance operations every game transaction needs
type Tx interface {
	GetUserForUpdate(ctx context.Context, telegramID int64) (*domain.User, error)
	AdjustBalance(ctx context.Context, telegramID int64, delta decimal.Decimal) (decimal.Decimal, error)
	SetBalance(ctx context.Context, telegramID int64, balance decimal.Decimal) error
	IncrementGamesPlayed(ctx context.Context, telegramID int64) error
	InsertGameHistory(ctx context.Context, entry *domain.GameHistory) (int64, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// RollsTx extends Tx with round persistence
type RollsTx interface {
	Tx
	InsertRound(ctx context.Context, round int64, result domain.Color) error
}

// CaseTx extends Tx with inventory inserts
type CaseTx interface {
	Tx
	InsertInventoryItem(ctx context.Context, item *domain.InventoryItem) (int64, error)
}

// InventoryTx extends Tx with inventory row locking
type InventoryTx interface {
	Tx
	GetInventoryItemForUpdate(ctx context.Context, telegramID, itemID int64) (*domain.InventoryItem, error)
	DeleteInventoryItem(ctx context.Context, itemID int64) error
}

// WalletTx extends Tx with deposit, withdrawal and referral ledger operations
type WalletTx interface {
	Tx
	AddTotalDeposited(ctx context.Context, telegramID int64, amount decimal.Decimal) error
	AdjustRefBalance(ctx context.Context, telegramID int64, delta decimal.Decimal) (decimal.Decimal, error)
	SetRefPercent(ctx context.Context, telegramID int64, percent int) error
	InsertDeposit(ctx context.Context, deposit *domain.Deposit) (int64, error)
	GetDepositByMemoForUpdate(ctx context.Context, memo string) (*domain.Deposit, error)
	UpdateDepositStatus(ctx context.Context, depositID int64, status domain.DepositStatus) error
	InsertWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (int64, error)
	GetWithdrawalForUpdate(ctx context.Context, withdrawalID int64) (*domain.Withdrawal, error)
	UpdateWithdrawal(ctx context.Context, withdrawalID int64, status domain.WithdrawalStatus, note string) error
}
