package cases

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/cooldown"
	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/logger"
	"github.com/osse101/giftroll/internal/metrics"
	"github.com/osse101/giftroll/internal/random"
	"github.com/osse101/giftroll/internal/repository"
)

// Service opens cases
type Service interface {
	Catalog() []domain.Case
	CheckAccess(ctx context.Context, telegramID int64) (*domain.CaseAccess, error)
	OpenCase(ctx context.Context, telegramID int64, caseType domain.CaseType) (*domain.CaseResult, error)
	FreeCaseStatus(ctx context.Context, telegramID int64) (*domain.FreeCaseStatus, error)
}

type service struct {
	repo      repository.Cases
	cooldowns cooldown.Service
	catalog   *Catalog
	intn      random.Intn
}

// NewService creates a new case service
func NewService(repo repository.Cases, cooldowns cooldown.Service, catalog *Catalog) Service {
	return &service{
		repo:      repo,
		cooldowns: cooldowns,
		catalog:   catalog,
		intn:      random.Secure,
	}
}

func (s *service) Catalog() []domain.Case {
	return s.catalog.List()
}

func (s *service) CheckAccess(ctx context.Context, telegramID int64) (*domain.CaseAccess, error) {
	user, err := s.repo.GetUser(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if user.TotalDeposited.LessThan(domain.MinCaseDeposit) {
		return &domain.CaseAccess{Access: false, Message: domain.ErrMsgCasesLocked}, nil
	}
	return &domain.CaseAccess{Access: true}, nil
}

func (s *service) OpenCase(ctx context.Context, telegramID int64, caseType domain.CaseType) (*domain.CaseResult, error) {
	cs, ok := s.catalog.Get(caseType)
	if !ok {
		return nil, domain.ErrUnknownCase
	}
	if !cs.IsFree() {
		return s.open(ctx, telegramID, cs)
	}

	var result *domain.CaseResult
	err := s.cooldowns.EnforceCooldown(ctx, telegramID, cooldown.ActionFreeCase, func() error {
		var err error
		result, err = s.open(ctx, telegramID, cs)
		return err
	})
	var onCooldown cooldown.ErrOnCooldown
	if errors.As(err, &onCooldown) {
		return nil, fmt.Errorf("%w: %s", domain.ErrFreeCaseCooldown, onCooldown.Error())
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *service) open(ctx context.Context, telegramID int64, cs domain.Case) (*domain.CaseResult, error) {
	tx, err := s.repo.BeginCaseTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, err := tx.GetUserForUpdate(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if !cs.IsFree() && user.TotalDeposited.LessThan(domain.MinCaseDeposit) {
		return nil, domain.ErrCasesLocked
	}
	if user.Balance.LessThan(cs.Cost) {
		return nil, domain.ErrInsufficientBalance
	}

	idx, err := random.PickWeighted(s.intn, s.catalog.weights[cs.Type])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToDraw, err)
	}
	reward := cs.Rewards[idx]
	reward.Chance = 0

	delta := cs.Cost.Neg()
	if reward.Kind == domain.RewardTON {
		delta = delta.Add(reward.Value)
	}
	newBalance, err := tx.AdjustBalance(ctx, telegramID, delta)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToApply, err)
	}

	result := &domain.CaseResult{Reward: reward, NewBalance: domain.RoundMoney(newBalance)}

	if reward.Kind == domain.RewardNFT {
		id, err := tx.InsertInventoryItem(ctx, &domain.InventoryItem{
			UserID:    telegramID,
			GiftName:  reward.Name,
			GiftImage: reward.Image,
			SellPrice: reward.Value,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToApply, err)
		}
		result.InventoryID = &id
	}

	if err := tx.IncrementGamesPlayed(ctx, telegramID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToApply, err)
	}

	won := decimal.Zero
	if reward.Kind != domain.RewardNothing {
		won = reward.Value
	}
	if _, err := tx.InsertGameHistory(ctx, &domain.GameHistory{
		UserID:     telegramID,
		GameType:   domain.GameTypeMutants,
		Stake:      cs.Cost,
		Result:     won.Sub(cs.Cost),
		Multiplier: decimal.Zero,
		Details: map[string]any{
			DetailCaseType: string(cs.Type),
			DetailReward:   reward.Name,
		},
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToApply, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	metrics.CasesOpened.WithLabelValues(string(cs.Type), string(reward.Kind)).Inc()
	logger.FromContext(ctx).Info(LogMsgCaseOpened, "telegramID", telegramID, "case", cs.Type, "reward", reward.Name)
	return result, nil
}

func (s *service) FreeCaseStatus(ctx context.Context, telegramID int64) (*domain.FreeCaseStatus, error) {
	onCooldown, remaining, err := s.cooldowns.CheckCooldown(ctx, telegramID, cooldown.ActionFreeCase)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCheckFree, err)
	}
	if !onCooldown {
		remaining = 0
	}
	status := domain.NewFreeCaseStatus(remaining)
	return &status, nil
}
