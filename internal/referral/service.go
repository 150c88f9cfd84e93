package referral

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/logger"
	"github.com/osse101/giftroll/internal/repository"
)

// Service runs the referral program
type Service interface {
	// Summary lists invited users. An unknown user gets an empty summary with default terms.
	Summary(ctx context.Context, telegramID int64) (*domain.ReferralSummary, error)
	Withdraw(ctx context.Context, telegramID int64) (*domain.ReferralWithdrawResult, error)
}

type service struct {
	repo repository.Referral
}

// NewService creates a new referral service
func NewService(repo repository.Referral) Service {
	return &service{repo: repo}
}

func (s *service) Summary(ctx context.Context, telegramID int64) (*domain.ReferralSummary, error) {
	summary := &domain.ReferralSummary{
		Referrals:  []domain.Referral{},
		RefBalance: decimal.Zero,
		RefPercent: domain.DefaultRefPercent,
	}

	user, err := s.repo.GetUser(ctx, telegramID)
	switch {
	case err == nil:
		summary.RefBalance = domain.RoundMoney(user.RefBalance)
		summary.RefPercent = user.RefPercent
	case errors.Is(err, domain.ErrUserNotFound):
		return summary, nil
	default:
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}

	refs, err := s.repo.ListReferrals(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListReferral, err)
	}
	if refs != nil {
		summary.Referrals = refs
	}
	summary.TotalReferred = len(summary.Referrals)
	return summary, nil
}

func (s *service) Withdraw(ctx context.Context, telegramID int64) (*domain.ReferralWithdrawResult, error) {
	tx, err := s.repo.BeginWalletTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, err := tx.GetUserForUpdate(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	amount := user.RefBalance
	if amount.LessThan(domain.MinReferralWithdrawal) {
		return nil, domain.ErrBelowMinReferral
	}

	if _, err := tx.AdjustRefBalance(ctx, telegramID, amount.Neg()); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToTransfer, err)
	}
	newBalance, err := tx.AdjustBalance(ctx, telegramID, amount)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToTransfer, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	logger.FromContext(ctx).Info(LogMsgReferralWithdrawn, "telegramID", telegramID, "amount", amount)
	return &domain.ReferralWithdrawResult{
		NewBalance: domain.RoundMoney(newBalance),
		Withdrawn:  domain.RoundMoney(amount),
	}, nil
}
