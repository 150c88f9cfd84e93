package upgrade

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/logger"
	"github.com/osse101/giftroll/internal/metrics"
	"github.com/osse101/giftroll/internal/random"
	"github.com/osse101/giftroll/internal/repository"
)

// Service plays the gift upgrade game
type Service interface {
	Spin(ctx context.Context, telegramID int64, stake, multiplier decimal.Decimal) (*domain.SpinResult, error)
}

type service struct {
	repo repository.Upgrade
	intn random.Intn
}

// NewService creates a new upgrade service
func NewService(repo repository.Upgrade) Service {
	return &service{repo: repo, intn: random.Secure}
}

func (s *service) Spin(ctx context.Context, telegramID int64, stake, multiplier decimal.Decimal) (*domain.SpinResult, error) {
	if multiplier.LessThan(domain.MinUpgradeMultiplier) || multiplier.GreaterThan(domain.MaxUpgradeMultiplier) {
		return nil, domain.ErrInvalidMultiplier
	}
	stake = domain.RoundMoney(stake)
	if stake.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	chance := domain.WinChance(multiplier)
	won, err := random.Chance(s.intn, chance.InexactFloat64())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToDraw, err)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, err := tx.GetUserForUpdate(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if user.Balance.LessThan(stake) {
		return nil, domain.ErrInsufficientBalance
	}

	net := stake.Neg()
	if won {
		net = domain.RoundMoney(stake.Mul(multiplier)).Sub(stake)
	}

	newBalance, err := tx.AdjustBalance(ctx, telegramID, net)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToApply, err)
	}
	if err := tx.IncrementGamesPlayed(ctx, telegramID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToApply, err)
	}

	percent := chance.Mul(decimal.NewFromInt(100)).Round(1)
	historyID, err := tx.InsertGameHistory(ctx, &domain.GameHistory{
		UserID:     telegramID,
		GameType:   domain.GameTypeGiftUpgrade,
		Stake:      stake,
		Result:     net,
		Multiplier: multiplier,
		Details: map[string]any{
			DetailWon:       won,
			DetailWinChance: percent.InexactFloat64(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToApply, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	outcome := OutcomeLose
	if won {
		outcome = OutcomeWin
	}
	metrics.UpgradeSpins.WithLabelValues(outcome).Inc()
	logger.FromContext(ctx).Info(LogMsgSpinResolved, "telegramID", telegramID, "stake", stake, "multiplier", multiplier, "won", won)

	return &domain.SpinResult{
		Won:        won,
		Stake:      stake,
		Multiplier: multiplier,
		WinChance:  percent,
		Result:     net,
		NewBalance: domain.RoundMoney(newBalance),
		HistoryID:  historyID,
	}, nil
}
