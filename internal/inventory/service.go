package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/event"
	"github.com/osse101/giftroll/internal/logger"
	"github.com/osse101/giftroll/internal/repository"
)

// Service manages gifts won from cases
type Service interface {
	List(ctx context.Context, telegramID int64) ([]domain.InventoryItem, error)
	Sell(ctx context.Context, telegramID, itemID int64) (*domain.SellResult, error)
	// WithdrawGift removes the gift and notifies the admin, who transfers it by hand
	WithdrawGift(ctx context.Context, telegramID, itemID int64) (*domain.GiftWithdrawal, error)
}

type service struct {
	repo     repository.Inventory
	eventBus event.Bus
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory, eventBus event.Bus) Service {
	return &service{repo: repo, eventBus: eventBus}
}

func (s *service) List(ctx context.Context, telegramID int64) ([]domain.InventoryItem, error) {
	items, err := s.repo.ListInventory(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToList, err)
	}
	if items == nil {
		items = []domain.InventoryItem{}
	}
	return items, nil
}

func (s *service) Sell(ctx context.Context, telegramID, itemID int64) (*domain.SellResult, error) {
	tx, err := s.repo.BeginInventoryTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	item, err := tx.GetInventoryItemForUpdate(ctx, telegramID, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetItem, err)
	}
	if err := tx.DeleteInventoryItem(ctx, item.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSell, err)
	}
	newBalance, err := tx.AdjustBalance(ctx, telegramID, item.SellPrice)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSell, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	logger.FromContext(ctx).Info(LogMsgGiftSold, "telegramID", telegramID, "item", item.GiftName, "price", item.SellPrice)
	return &domain.SellResult{NewBalance: domain.RoundMoney(newBalance), Sold: item.SellPrice}, nil
}

func (s *service) WithdrawGift(ctx context.Context, telegramID, itemID int64) (*domain.GiftWithdrawal, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginInventoryTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	item, err := tx.GetInventoryItemForUpdate(ctx, telegramID, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetItem, err)
	}
	user, err := tx.GetUserForUpdate(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetUser, err)
	}
	if err := tx.DeleteInventoryItem(ctx, item.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToWithdraw, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	log.Info(LogMsgGiftWithdrawn, "telegramID", telegramID, "item", item.GiftName)
	if s.eventBus != nil {
		if err := s.eventBus.Publish(ctx, event.NewGiftWithdrawalEvent(telegramID, user.Username, item.GiftName)); err != nil {
			log.Warn(LogMsgPublishFailed, "telegramID", telegramID, "error", err)
		}
	}

	return &domain.GiftWithdrawal{Message: fmt.Sprintf(GiftWithdrawalMessageFmt, item.GiftName)}, nil
}
