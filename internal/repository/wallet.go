package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
)

// Wallet defines the data access required by deposits and withdrawals
type Wallet interface {
	GetUser(ctx context.Context, telegramID int64) (*domain.User, error)
	BeginWalletTx(ctx context.Context) (WalletTx, error)
	ListWithdrawals(ctx context.Context, telegramID int64) ([]domain.Withdrawal, error)
	ExpirePendingDeposits(ctx context.Context, olderThan time.Time) (int64, error)
}

// Referral defines the data access required by the referral program
type Referral interface {
	GetUser(ctx context.Context, telegramID int64) (*domain.User, error)
	ListReferrals(ctx context.Context, referrerID int64) ([]domain.Referral, error)
	BeginWalletTx(ctx context.Context) (WalletTx, error)
}

// Leaderboard defines the data access required by the leaderboard
type Leaderboard interface {
	TopDepositors(ctx context.Context, limit int) ([]domain.User, error)
}

// Admin defines the data access required by the admin console
type Admin interface {
	GetUser(ctx context.Context, telegramID int64) (*domain.User, error)
	CountUsers(ctx context.Context) (int, error)
	CountOnlineSince(ctx context.Context, since time.Time) (int, error)
	SumDeposited(ctx context.Context) (decimal.Decimal, error)
	SearchUsers(ctx context.Context, query string, limit int) ([]domain.User, error)
	ListGameHistory(ctx context.Context, telegramID int64, limit int) ([]domain.GameHistory, error)
	RecentGames(ctx context.Context, limit int) ([]domain.GameHistory, error)
	ListWithdrawals(ctx context.Context, telegramID int64) ([]domain.Withdrawal, error)
	ListPendingWithdrawals(ctx context.Context) ([]domain.Withdrawal, error)
	ListInventory(ctx context.Context, telegramID int64) ([]domain.InventoryItem, error)
	BeginWalletTx(ctx context.Context) (WalletTx, error)
}
