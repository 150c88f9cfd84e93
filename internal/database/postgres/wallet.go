package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/giftroll/internal/repository"
)

// WalletRepository backs deposits, withdrawals, referrals and the admin console
type WalletRepository struct {
	*UserRepository
}

// NewWalletRepository creates a new WalletRepository
func NewWalletRepository(db *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{UserRepository: NewUserRepository(db)}
}

// BeginWalletTx starts a transaction for ledger operations
func (r *WalletRepository) BeginWalletTx(ctx context.Context) (repository.WalletTx, error) {
	return r.begin(ctx)
}

// ExpirePendingDeposits marks stale pending deposits expired and returns how many changed
func (r *WalletRepository) ExpirePendingDeposits(ctx context.Context, olderThan time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, SQLExpirePendingDeposits, olderThan)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateDeposit, err)
	}
	return tag.RowsAffected(), nil
}
