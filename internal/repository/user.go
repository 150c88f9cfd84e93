package repository

import (
	"context"

	"github.com/osse101/giftroll/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	GetUser(ctx context.Context, telegramID int64) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error
	TouchUser(ctx context.Context, user *domain.User) error
	ListGameHistory(ctx context.Context, telegramID int64, limit int) ([]domain.GameHistory, error)
}
