package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/event"
	"github.com/osse101/giftroll/internal/logger"
	"github.com/osse101/giftroll/internal/repository"
)

// Service backs the operator endpoints
type Service interface {
	Stats(ctx context.Context) (*domain.AdminStats, error)
	UserDetail(ctx context.Context, telegramID int64) (*domain.AdminUserDetail, error)
	// UpdateUser applies balance_add, then balance_set, then ref_percent
	UpdateUser(ctx context.Context, telegramID int64, update domain.UserUpdate) (*domain.User, error)
	SearchUsers(ctx context.Context, query string) ([]domain.User, error)
	PendingWithdrawals(ctx context.Context) ([]domain.Withdrawal, error)
	ApproveWithdrawal(ctx context.Context, withdrawalID int64) (*domain.Withdrawal, error)
	// RejectWithdrawal refunds the amount to the user's balance
	RejectWithdrawal(ctx context.Context, withdrawalID int64, note string) (*domain.Withdrawal, error)
	RecentGames(ctx context.Context) ([]domain.GameHistory, error)
}

type service struct {
	repo     repository.Admin
	eventBus event.Bus
	now      func() time.Time
}

// NewService creates a new admin service
func NewService(repo repository.Admin, eventBus event.Bus) Service {
	return &service{repo: repo, eventBus: eventBus, now: time.Now}
}

func (s *service) Stats(ctx context.Context) (*domain.AdminStats, error) {
	now := s.now()

	total, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCount, err)
	}
	day, err := s.repo.CountOnlineSince(ctx, now.Add(-OnlineDayWindow))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCount, err)
	}
	recent, err := s.repo.CountOnlineSince(ctx, now.Add(-OnlineNowWindow))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCount, err)
	}
	deposited, err := s.repo.SumDeposited(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSum, err)
	}

	return &domain.AdminStats{
		TotalUsers:     total,
		Online24h:      day,
		Online5m:       recent,
		TotalDeposited: domain.RoundMoney(deposited),
	}, nil
}

func (s *service) UserDetail(ctx context.Context, telegramID int64) (*domain.AdminUserDetail, error) {
	user, err := s.repo.GetUser(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	games, err := s.repo.ListGameHistory(ctx, telegramID, DetailGamesLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListGames, err)
	}
	withdrawals, err := s.repo.ListWithdrawals(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListWithdr, err)
	}
	inventory, err := s.repo.ListInventory(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListInv, err)
	}

	return &domain.AdminUserDetail{
		User:        user,
		Games:       nonNil(games),
		Withdrawals: nonNil(withdrawals),
		Inventory:   nonNil(inventory),
	}, nil
}

func (s *service) UpdateUser(ctx context.Context, telegramID int64, update domain.UserUpdate) (*domain.User, error) {
	if update.RefPercent != nil && (*update.RefPercent < 0 || *update.RefPercent > 100) {
		return nil, domain.ErrInvalidInput
	}

	tx, err := s.repo.BeginWalletTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetUserForUpdate(ctx, telegramID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if update.BalanceAdd != nil {
		if _, err := tx.AdjustBalance(ctx, telegramID, domain.RoundMoney(*update.BalanceAdd)); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateUser, err)
		}
	}
	if update.BalanceSet != nil {
		if err := tx.SetBalance(ctx, telegramID, domain.RoundMoney(*update.BalanceSet)); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateUser, err)
		}
	}
	if update.RefPercent != nil {
		if err := tx.SetRefPercent(ctx, telegramID, *update.RefPercent); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateUser, err)
		}
	}

	user, err := tx.GetUserForUpdate(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	logger.FromContext(ctx).Info(LogMsgUserUpdated, "telegramID", telegramID, "balance", user.Balance, "refPercent", user.RefPercent)
	return user, nil
}

func (s *service) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	users, err := s.repo.SearchUsers(ctx, query, SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSearch, err)
	}
	return nonNil(users), nil
}

func (s *service) PendingWithdrawals(ctx context.Context) ([]domain.Withdrawal, error) {
	withdrawals, err := s.repo.ListPendingWithdrawals(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListWithdr, err)
	}
	return nonNil(withdrawals), nil
}

func (s *service) ApproveWithdrawal(ctx context.Context, withdrawalID int64) (*domain.Withdrawal, error) {
	return s.resolve(ctx, withdrawalID, domain.WithdrawalApproved, "")
}

func (s *service) RejectWithdrawal(ctx context.Context, withdrawalID int64, note string) (*domain.Withdrawal, error) {
	return s.resolve(ctx, withdrawalID, domain.WithdrawalRejected, note)
}

func (s *service) resolve(ctx context.Context, withdrawalID int64, status domain.WithdrawalStatus, note string) (*domain.Withdrawal, error) {
	tx, err := s.repo.BeginWalletTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	w, err := tx.GetWithdrawalForUpdate(ctx, withdrawalID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetWithdraw, err)
	}
	if w.Status != domain.WithdrawalPending {
		return nil, domain.ErrWithdrawalProcessed
	}
	if err := tx.UpdateWithdrawal(ctx, withdrawalID, status, note); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToResolve, err)
	}

	var username string
	user, err := tx.GetUserForUpdate(ctx, w.UserID)
	switch {
	case err == nil:
		username = user.Username
		if status == domain.WithdrawalRejected {
			if _, err := tx.AdjustBalance(ctx, w.UserID, w.Amount); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextFailedToRefund, err)
			}
		}
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	w.Status = status
	w.AdminNote = note
	log := logger.FromContext(ctx)
	log.Info(LogMsgWithdrawalResolved, "requestID", withdrawalID, "status", status)

	if s.eventBus != nil {
		if err := s.eventBus.Publish(ctx, event.NewWithdrawalEvent(event.WithdrawalResolved, *w, username)); err != nil {
			log.Warn(LogMsgPublishFailed, "requestID", withdrawalID, "error", err)
		}
	}
	return w, nil
}

func (s *service) RecentGames(ctx context.Context) ([]domain.GameHistory, error) {
	games, err := s.repo.RecentGames(ctx, RecentGamesLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListGames, err)
	}
	return nonNil(games), nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
