package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/repository"
)

// GameRepository backs the rolls table, gift upgrade, cases and inventory
type GameRepository struct {
	*UserRepository
}

// NewGameRepository creates a new GameRepository
func NewGameRepository(db *pgxpool.Pool) *GameRepository {
	return &GameRepository{UserRepository: NewUserRepository(db)}
}

// BeginTx starts a plain balance transaction
func (r *GameRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	return r.begin(ctx)
}

// BeginRollsTx starts a transaction for round settlement
func (r *GameRepository) BeginRollsTx(ctx context.Context) (repository.RollsTx, error) {
	return r.begin(ctx)
}

// BeginCaseTx starts a transaction for a case opening
func (r *GameRepository) BeginCaseTx(ctx context.Context) (repository.CaseTx, error) {
	return r.begin(ctx)
}

// BeginInventoryTx starts a transaction for selling or withdrawing a gift
func (r *GameRepository) BeginInventoryTx(ctx context.Context) (repository.InventoryTx, error) {
	return r.begin(ctx)
}

// RecentRounds returns the last settled round number and up to limit results, newest first
func (r *GameRepository) RecentRounds(ctx context.Context, limit int) (int64, []domain.Color, error) {
	rows, err := r.db.Query(ctx, SQLRecentRounds, limit)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRounds, err)
	}
	defer rows.Close()

	var (
		last    int64
		results []domain.Color
	)
	for rows.Next() {
		var (
			round  int64
			result string
		)
		if err := rows.Scan(&round, &result); err != nil {
			return 0, nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRounds, err)
		}
		if round > last {
			last = round
		}
		results = append(results, domain.Color(result))
	}
	if err := rows.Err(); err != nil {
		return 0, nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRounds, err)
	}

	return last, results, nil
}

func (r *UserRepository) begin(ctx context.Context) (*tx, error) {
	pgxTx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &tx{tx: pgxTx}, nil
}

var (
	_ repository.User        = (*UserRepository)(nil)
	_ repository.Leaderboard = (*UserRepository)(nil)
	_ repository.Rolls       = (*GameRepository)(nil)
	_ repository.Upgrade     = (*GameRepository)(nil)
	_ repository.Cases       = (*GameRepository)(nil)
	_ repository.Inventory   = (*GameRepository)(nil)
	_ repository.Wallet      = (*WalletRepository)(nil)
	_ repository.Referral    = (*WalletRepository)(nil)
	_ repository.Admin       = (*WalletRepository)(nil)
)
