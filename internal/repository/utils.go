package repository

import (
	"context"
	"errors"

	"github.com/osse101/giftroll/internal/logger"
)

type rollbacker interface {
	Rollback(ctx context.Context) error
}

// SafeRollback rolls back a transaction and logs any error
func SafeRollback(ctx context.Context, tx rollbacker) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
