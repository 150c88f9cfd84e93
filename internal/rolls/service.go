package rolls

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/event"
	"github.com/osse101/giftroll/internal/logger"
	"github.com/osse101/giftroll/internal/metrics"
	"github.com/osse101/giftroll/internal/random"
	"github.com/osse101/giftroll/internal/repository"
)

// Service runs the shared rolls table
type Service interface {
	// Restore loads the round counter and history from storage and opens a fresh round
	Restore(ctx context.Context) error
	State(ctx context.Context) domain.RoundSnapshot
	PlaceBet(ctx context.Context, telegramID int64, color domain.Color, amount decimal.Decimal) (*domain.RollsBetResponse, error)
	// Settle closes the open round, pays it out and opens the next one
	Settle(ctx context.Context) (*domain.SettledRound, error)
	RoundEndsAt() time.Time
}

// Config tunes round timing
type Config struct {
	RoundDuration time.Duration
	BetCutoff     time.Duration
}

type service struct {
	repo     repository.Rolls
	eventBus event.Bus
	config   Config
	now      func() time.Time
	intn     random.Intn

	mu          sync.Mutex
	lastRound   int64
	roundEnds   time.Time
	bets        map[int64]domain.RollsBet
	history     []domain.Color
	lastResult  domain.Color
	lastPayouts map[string]domain.Payout
}

// NewService creates a rolls service with the first round already open
func NewService(repo repository.Rolls, eventBus event.Bus, config Config) Service {
	return newService(repo, eventBus, config, time.Now, random.Secure)
}

func newService(repo repository.Rolls, eventBus event.Bus, config Config, now func() time.Time, intn random.Intn) *service {
	if config.RoundDuration <= 0 {
		config.RoundDuration = DefaultRoundDuration
	}
	if config.BetCutoff <= 0 {
		config.BetCutoff = DefaultBetCutoff
	}
	return &service{
		repo:        repo,
		eventBus:    eventBus,
		config:      config,
		now:         now,
		intn:        intn,
		roundEnds:   now().Add(config.RoundDuration),
		bets:        make(map[int64]domain.RollsBet),
		lastPayouts: make(map[string]domain.Payout),
	}
}

func (s *service) Restore(ctx context.Context) error {
	last, history, err := s.repo.RecentRounds(ctx, domain.RollsHistoryCap)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToRestore, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRound = last
	s.history = history
	if len(history) > 0 {
		s.lastResult = history[0]
	}
	s.roundEnds = s.now().Add(s.config.RoundDuration)

	logger.FromContext(ctx).Info(LogMsgRoundsRestored, "round", last, "history", len(history))
	return nil
}

func (s *service) RoundEndsAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roundEnds
}

func (s *service) State(_ context.Context) domain.RoundSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.roundEnds.Sub(s.now())
	if remaining < 0 {
		remaining = 0
	}

	tail := s.history
	if len(tail) > domain.RollsSnapshotHistory {
		tail = tail[:domain.RollsSnapshotHistory]
	}
	history := append([]domain.Color{}, tail...)
	red, blue, green := domain.CountColors(history)

	payouts := make(map[string]domain.Payout, len(s.lastPayouts))
	for k, v := range s.lastPayouts {
		payouts[k] = v
	}

	return domain.RoundSnapshot{
		Round:       s.lastRound,
		Countdown:   decimal.NewFromFloat(remaining.Seconds()).Round(2).InexactFloat64(),
		LastResult:  s.lastResult,
		History:     history,
		RedCount:    red,
		BlueCount:   blue,
		GreenCount:  green,
		LastPayouts: payouts,
	}
}

// PlaceBet holds the table lock for the whole debit so a settlement can never see a
// half-placed bet.
func (s *service) PlaceBet(ctx context.Context, telegramID int64, color domain.Color, amount decimal.Decimal) (*domain.RollsBetResponse, error) {
	if !color.Valid() {
		return nil, domain.ErrInvalidColor
	}
	amount = domain.RoundMoney(amount)
	if amount.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bets[telegramID]; ok {
		return nil, domain.ErrBetAlreadyPlaced
	}
	if s.roundEnds.Sub(s.now()) < s.config.BetCutoff {
		return nil, domain.ErrBettingClosed
	}

	tx, err := s.repo.BeginRollsTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, err := tx.GetUserForUpdate(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if user.Balance.LessThan(amount) {
		return nil, domain.ErrInsufficientBalance
	}

	newBalance, err := tx.AdjustBalance(ctx, telegramID, amount.Neg())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToDebit, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	bet := domain.RollsBet{Color: color, Amount: amount}
	s.bets[telegramID] = bet

	metrics.RollsBets.WithLabelValues(string(color)).Inc()
	metrics.RollsWagered.Add(amount.InexactFloat64())
	logger.FromContext(ctx).Info(LogMsgBetPlaced, "telegramID", telegramID, "color", color, "amount", amount, "round", s.lastRound+1)

	return &domain.RollsBetResponse{
		Success:    true,
		NewBalance: domain.RoundMoney(newBalance),
		Bet:        bet,
		Round:      s.lastRound + 1,
	}, nil
}

func (s *service) Settle(ctx context.Context) (*domain.SettledRound, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	settled, err := s.settleLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgRoundSettled, "round", settled.Round, "result", settled.Result, "bets", len(settled.Bets))

	if s.eventBus != nil {
		if err := s.eventBus.Publish(ctx, event.NewRoundSettledEvent(*settled)); err != nil {
			log.Warn(LogMsgPublishFailed, "round", settled.Round, "error", err)
		}
	}
	return settled, nil
}

// settleLocked persists the round in one transaction. On failure the in-memory round is
// left open so the next attempt settles the same bets under the same number.
func (s *service) settleLocked(ctx context.Context) (*domain.SettledRound, error) {
	result, err := drawColor(s.intn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToDraw, err)
	}

	round := s.lastRound + 1
	payouts := make(map[int64]domain.Payout, len(s.bets))

	tx, err := s.repo.BeginRollsTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.InsertRound(ctx, round, result); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSettle, err)
	}

	for uid, bet := range s.bets {
		payout, err := s.payBet(ctx, tx, uid, round, bet, result)
		if errors.Is(err, domain.ErrUserNotFound) {
			logger.FromContext(ctx).Warn(LogMsgBettorMissing, "telegramID", uid, "round", round)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToSettle, err)
		}
		payouts[uid] = payout
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	settled := &domain.SettledRound{
		Round:   round,
		Result:  result,
		Bets:    s.bets,
		Payouts: payouts,
	}

	s.lastRound = round
	s.lastResult = result
	s.history = append([]domain.Color{result}, s.history...)
	if len(s.history) > domain.RollsHistoryCap {
		s.history = s.history[:domain.RollsHistoryCap]
	}
	s.lastPayouts = make(map[string]domain.Payout, len(payouts))
	for uid, p := range payouts {
		s.lastPayouts[strconv.FormatInt(uid, 10)] = p
	}
	s.bets = make(map[int64]domain.RollsBet)
	s.roundEnds = s.now().Add(s.config.RoundDuration)

	return settled, nil
}

func (s *service) payBet(ctx context.Context, tx repository.RollsTx, uid, round int64, bet domain.RollsBet, result domain.Color) (domain.Payout, error) {
	payout := domain.Payout{Won: false, Amount: decimal.Zero, Mult: decimal.Zero}
	net := bet.Amount.Neg()

	if bet.Color == result {
		mult := result.Multiplier()
		winnings := domain.RoundMoney(bet.Amount.Mul(mult))
		if _, err := tx.AdjustBalance(ctx, uid, winnings); err != nil {
			return payout, err
		}
		payout = domain.Payout{Won: true, Amount: winnings, Mult: mult}
		net = winnings.Sub(bet.Amount)
	}

	if err := tx.IncrementGamesPlayed(ctx, uid); err != nil {
		return payout, err
	}

	_, err := tx.InsertGameHistory(ctx, &domain.GameHistory{
		UserID:     uid,
		GameType:   domain.GameTypeRolls,
		Stake:      bet.Amount,
		Result:     domain.RoundMoney(net),
		Multiplier: payout.Mult,
		Details: map[string]any{
			DetailRound:  round,
			DetailColor:  string(bet.Color),
			DetailResult: string(result),
		},
	})
	return payout, err
}
