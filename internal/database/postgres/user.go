package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
)

// UserRepository implements the user-facing read and write queries
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetUser retrieves a user by telegram id
func (r *UserRepository) GetUser(ctx context.Context, telegramID int64) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, SQLSelectUser, telegramID))
}

// CreateUser inserts a new user and fills in the database timestamps
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	err := r.db.QueryRow(ctx, SQLInsertUser,
		user.TelegramID, user.FirstName, user.LastName, user.Username, user.PhotoURL,
		user.Balance, user.RefID, user.RefPercent,
	).Scan(&user.CreatedAt, &user.LastOnline)
	if err != nil {
		if isPgError(err, PgErrorCodeUniqueViolation) {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateUser, err)
	}
	return nil
}

// TouchUser refreshes profile fields and last_online
func (r *UserRepository) TouchUser(ctx context.Context, user *domain.User) error {
	tag, err := r.db.Exec(ctx, SQLTouchUser,
		user.TelegramID, user.FirstName, user.LastName, user.Username, user.PhotoURL)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUser, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ListGameHistory returns the latest games for a user
func (r *UserRepository) ListGameHistory(ctx context.Context, telegramID int64, limit int) ([]domain.GameHistory, error) {
	rows, err := r.db.Query(ctx, SQLListGameHistory, telegramID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListHistory, err)
	}
	return collect(rows, scanGameHistory)
}

// RecentGames returns the latest games across all users
func (r *UserRepository) RecentGames(ctx context.Context, limit int) ([]domain.GameHistory, error) {
	rows, err := r.db.Query(ctx, SQLRecentGames, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListHistory, err)
	}
	return collect(rows, scanGameHistory)
}

// TopDepositors ranks users by lifetime deposits
func (r *UserRepository) TopDepositors(ctx context.Context, limit int) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, SQLTopDepositors, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return collect(rows, scanUserValue)
}

// ListReferrals returns the users invited by referrerID
func (r *UserRepository) ListReferrals(ctx context.Context, referrerID int64) ([]domain.Referral, error) {
	rows, err := r.db.Query(ctx, SQLListReferrals, referrerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return collect(rows, func(row scanner) (domain.Referral, error) {
		var ref domain.Referral
		err := row.Scan(&ref.Name, &ref.Username, &ref.TotalDeposited)
		return ref, err
	})
}

// SearchUsers matches username or first name, or an exact telegram id
func (r *UserRepository) SearchUsers(ctx context.Context, query string, limit int) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, SQLSearchUsers, "%"+query+"%", query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return collect(rows, scanUserValue)
}

// CountUsers returns the number of registered users
func (r *UserRepository) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, SQLCountUsers).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToQueryStats, err)
	}
	return n, nil
}

// CountOnlineSince returns the number of users seen after since
func (r *UserRepository) CountOnlineSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, SQLCountOnlineSince, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToQueryStats, err)
	}
	return n, nil
}

// SumDeposited returns the lifetime deposits of all users
func (r *UserRepository) SumDeposited(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, SQLSumDeposited).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", ErrMsgFailedToQueryStats, err)
	}
	return total, nil
}

// ListInventory returns the gifts a user holds
func (r *UserRepository) ListInventory(ctx context.Context, telegramID int64) ([]domain.InventoryItem, error) {
	rows, err := r.db.Query(ctx, SQLListInventory, telegramID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListInventory, err)
	}
	return collect(rows, scanInventoryItem)
}

// ListWithdrawals returns a user's withdrawal requests, newest first
func (r *UserRepository) ListWithdrawals(ctx context.Context, telegramID int64) ([]domain.Withdrawal, error) {
	rows, err := r.db.Query(ctx, SQLListWithdrawals, telegramID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListWithdrawals, err)
	}
	return collect(rows, scanWithdrawal)
}

// ListPendingWithdrawals returns requests awaiting review, oldest first
func (r *UserRepository) ListPendingWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	rows, err := r.db.Query(ctx, SQLListPendingWithdrawals)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListWithdrawals, err)
	}
	return collect(rows, scanWithdrawal)
}

func scanUserValue(row scanner) (domain.User, error) {
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, err
	}
	return *u, nil
}
