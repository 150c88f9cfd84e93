package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/event"
	"github.com/osse101/giftroll/internal/logger"
	"github.com/osse101/giftroll/internal/repository"
)

// Service moves money in and out of player balances
type Service interface {
	DepositStars(ctx context.Context, telegramID, stars int64) (*domain.DepositResult, error)
	// CreateTONInvoice opens a pending deposit the player pays by sending TON with the memo
	CreateTONInvoice(ctx context.Context, telegramID int64, amount decimal.Decimal) (*domain.TONInvoice, error)
	ConfirmTONDeposit(ctx context.Context, telegramID int64, memo string) (*domain.DepositResult, error)
	// Withdraw debits the balance now and queues the payout for admin review
	Withdraw(ctx context.Context, telegramID int64, amount decimal.Decimal, wallet string) (*domain.WithdrawResult, error)
	ListWithdrawals(ctx context.Context, telegramID int64) ([]domain.WithdrawalView, error)
	ExpireStaleDeposits(ctx context.Context) (int64, error)
}

// Config holds wallet settings
type Config struct {
	TONAddress        string
	PendingDepositTTL time.Duration
}

type service struct {
	repo     repository.Wallet
	eventBus event.Bus
	config   Config
	now      func() time.Time
}

// NewService creates a new wallet service
func NewService(repo repository.Wallet, eventBus event.Bus, config Config) Service {
	if config.PendingDepositTTL <= 0 {
		config.PendingDepositTTL = DefaultPendingDepositTTL
	}
	if config.TONAddress == "" {
		logger.Warn(LogMsgNoWalletConfigured)
	}
	return &service{repo: repo, eventBus: eventBus, config: config, now: time.Now}
}

func (s *service) DepositStars(ctx context.Context, telegramID, stars int64) (*domain.DepositResult, error) {
	if stars <= 0 {
		return nil, domain.ErrInvalidStars
	}
	amount := domain.StarsToTON(decimal.NewFromInt(stars))

	tx, err := s.repo.BeginWalletTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, err := tx.GetUserForUpdate(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if _, err := tx.InsertDeposit(ctx, &domain.Deposit{
		UserID: telegramID,
		Amount: amount,
		Method: domain.DepositStars,
		Status: domain.DepositCompleted,
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToRecord, err)
	}

	newBalance, err := s.credit(ctx, tx, user, amount)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	s.publishDeposit(ctx, telegramID, amount, domain.DepositStars)
	return &domain.DepositResult{NewBalance: newBalance, Credited: amount}, nil
}

func (s *service) CreateTONInvoice(ctx context.Context, telegramID int64, amount decimal.Decimal) (*domain.TONInvoice, error) {
	amount = domain.RoundMoney(amount)
	if amount.Sign() <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	memo := fmt.Sprintf(MemoFmt, telegramID, s.now().Unix())

	tx, err := s.repo.BeginWalletTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetUserForUpdate(ctx, telegramID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}

	// a repeat within the same second reuses the open invoice
	existing, err := tx.GetDepositByMemoForUpdate(ctx, memo)
	switch {
	case err == nil:
		return &domain.TONInvoice{Memo: memo, Address: s.config.TONAddress, Amount: existing.Amount}, nil
	case !errors.Is(err, domain.ErrDepositNotFound):
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetDeposit, err)
	}

	if _, err := tx.InsertDeposit(ctx, &domain.Deposit{
		UserID: telegramID,
		Amount: amount,
		Method: domain.DepositTON,
		Status: domain.DepositPending,
		Memo:   memo,
	}); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToRecord, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	logger.FromContext(ctx).Info(LogMsgInvoiceCreated, "telegramID", telegramID, "memo", memo, "amount", amount)
	return &domain.TONInvoice{Memo: memo, Address: s.config.TONAddress, Amount: amount}, nil
}

func (s *service) ConfirmTONDeposit(ctx context.Context, telegramID int64, memo string) (*domain.DepositResult, error) {
	tx, err := s.repo.BeginWalletTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	deposit, err := tx.GetDepositByMemoForUpdate(ctx, memo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetDeposit, err)
	}
	if deposit.UserID != telegramID {
		return nil, domain.ErrDepositNotFound
	}
	if deposit.Status != domain.DepositPending {
		return nil, domain.ErrDepositNotPending
	}

	user, err := tx.GetUserForUpdate(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if err := tx.UpdateDepositStatus(ctx, deposit.ID, domain.DepositCompleted); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToRecord, err)
	}

	newBalance, err := s.credit(ctx, tx, user, deposit.Amount)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	s.publishDeposit(ctx, telegramID, deposit.Amount, domain.DepositTON)
	return &domain.DepositResult{NewBalance: newBalance, Credited: deposit.Amount}, nil
}

// credit adds a deposit to the balance and lifetime total and pays the referrer's share
func (s *service) credit(ctx context.Context, tx repository.WalletTx, user *domain.User, amount decimal.Decimal) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	newBalance, err := tx.AdjustBalance(ctx, user.TelegramID, amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", ErrContextFailedToCredit, err)
	}
	if err := tx.AddTotalDeposited(ctx, user.TelegramID, amount); err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", ErrContextFailedToCredit, err)
	}

	if user.RefID != nil {
		referrer, err := tx.GetUserForUpdate(ctx, *user.RefID)
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			log.Warn(LogMsgReferrerMissing, "telegramID", user.TelegramID, "refID", *user.RefID)
		case err != nil:
			return decimal.Zero, fmt.Errorf("%s: %w", ErrContextFailedToPayReferrer, err)
		default:
			share := domain.ReferralShare(amount, referrer.RefPercent)
			if share.Sign() > 0 {
				if _, err := tx.AdjustRefBalance(ctx, referrer.TelegramID, share); err != nil {
					return decimal.Zero, fmt.Errorf("%s: %w", ErrContextFailedToPayReferrer, err)
				}
				log.Info(LogMsgReferrerPaid, "refID", referrer.TelegramID, "share", share)
			}
		}
	}

	log.Info(LogMsgDepositCredited, "telegramID", user.TelegramID, "amount", amount)
	return domain.RoundMoney(newBalance), nil
}

func (s *service) publishDeposit(ctx context.Context, telegramID int64, amount decimal.Decimal, method domain.DepositMethod) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, event.NewDepositCreditedEvent(telegramID, amount, method)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", event.DepositCredited, "error", err)
	}
}

func (s *service) Withdraw(ctx context.Context, telegramID int64, amount decimal.Decimal, wallet string) (*domain.WithdrawResult, error) {
	amount = domain.RoundMoney(amount)
	if amount.LessThan(domain.MinWithdrawal) {
		return nil, domain.ErrBelowMinWithdrawal
	}
	if wallet == "" {
		return nil, domain.ErrWalletRequired
	}

	tx, err := s.repo.BeginWalletTx(ctx)
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
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToWithdraw, err)
	}
	withdrawal := domain.Withdrawal{
		UserID:        telegramID,
		Amount:        amount,
		WalletAddress: wallet,
		Status:        domain.WithdrawalPending,
	}
	id, err := tx.InsertWithdrawal(ctx, &withdrawal)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToWithdraw, err)
	}
	withdrawal.ID = id

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgWithdrawalCreated, "telegramID", telegramID, "amount", amount, "requestID", id)
	if s.eventBus != nil {
		if err := s.eventBus.Publish(ctx, event.NewWithdrawalEvent(event.WithdrawalRequest, withdrawal, user.Username)); err != nil {
			log.Warn(LogMsgPublishFailed, "type", event.WithdrawalRequest, "error", err)
		}
	}

	return &domain.WithdrawResult{NewBalance: domain.RoundMoney(newBalance), RequestID: id}, nil
}

func (s *service) ListWithdrawals(ctx context.Context, telegramID int64) ([]domain.WithdrawalView, error) {
	withdrawals, err := s.repo.ListWithdrawals(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToList, err)
	}
	views := make([]domain.WithdrawalView, 0, len(withdrawals))
	for _, w := range withdrawals {
		views = append(views, w.View())
	}
	return views, nil
}

func (s *service) ExpireStaleDeposits(ctx context.Context) (int64, error) {
	n, err := s.repo.ExpirePendingDeposits(ctx, s.now().Add(-s.config.PendingDepositTTL))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToExpire, err)
	}
	return n, nil
}
