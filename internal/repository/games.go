package repository

import (
	"context"

	"github.com/osse101/giftroll/internal/domain"
)

// Rolls defines the data access required by the rolls table
type Rolls interface {
	BeginRollsTx(ctx context.Context) (RollsTx, error)
	GetUser(ctx context.Context, telegramID int64) (*domain.User, error)
	// RecentRounds returns the newest round number and results, newest first
	RecentRounds(ctx context.Context, limit int) (lastRound int64, history []domain.Color, err error)
}

// Upgrade defines the data access required by the gift upgrade game
type Upgrade interface {
	BeginTx(ctx context.Context) (Tx, error)
}

// Cases defines the data access required by case openings
type Cases interface {
	GetUser(ctx context.Context, telegramID int64) (*domain.User, error)
	BeginCaseTx(ctx context.Context) (CaseTx, error)
}

// Inventory defines the data access required by the gift inventory
type Inventory interface {
	ListInventory(ctx context.Context, telegramID int64) ([]domain.InventoryItem, error)
	BeginInventoryTx(ctx context.Context) (InventoryTx, error)
}
