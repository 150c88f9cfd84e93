package cooldown

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/giftroll/internal/logger"
)

// postgresBackend stores cooldowns in user_cooldowns and serialises enforcement with a
// transaction scoped advisory lock, so several API instances can share it.
type postgresBackend struct {
	db     *pgxpool.Pool
	config Config
	now    func() time.Time
}

// NewPostgresService creates a cooldown service backed by the user_cooldowns table
func NewPostgresService(db *pgxpool.Pool, config Config) Service {
	return &postgresBackend{db: db, config: config, now: time.Now}
}

func (b *postgresBackend) CheckCooldown(ctx context.Context, telegramID int64, action string) (bool, time.Duration, error) {
	if b.config.DevMode {
		return false, 0, nil
	}
	last, err := lastUsed(ctx, b.db, telegramID, action)
	if err != nil {
		return false, 0, fmt.Errorf(ErrMsgCheckCooldownFailed, err)
	}
	left := remainingAfter(b.now(), last, b.config.Duration(action))
	return left > 0, left, nil
}

// EnforceCooldown rejects early on an unlocked read, then rechecks under the advisory
// lock so two concurrent openers cannot both pass.
func (b *postgresBackend) EnforceCooldown(ctx context.Context, telegramID int64, action string, fn func() error) error {
	log := logger.FromContext(ctx).With("action", action)

	if onCooldown, left, err := b.CheckCooldown(ctx, telegramID, action); err != nil {
		return err
	} else if onCooldown {
		return ErrOnCooldown{Action: action, Remaining: left}
	}

	tx, err := b.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if b.config.DevMode {
		log.Debug(LogMsgDevModeBypass)
	} else {
		if _, err := tx.Exec(ctx, SQLAdvisoryLock, lockKey(telegramID, action)); err != nil {
			return fmt.Errorf(ErrMsgAcquireLockFailed, err)
		}
		last, err := lastUsed(ctx, tx, telegramID, action)
		if err != nil {
			return fmt.Errorf(ErrMsgGetCooldownTxFailed, err)
		}
		if left := remainingAfter(b.now(), last, b.config.Duration(action)); left > 0 {
			log.Debug(LogMsgRaceConditionDetected, "remaining", left)
			return ErrOnCooldown{Action: action, Remaining: left}
		}
	}

	if err := fn(); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, SQLUpsertCooldown, telegramID, action, b.now()); err != nil {
		return fmt.Errorf(ErrMsgUpdateCooldownFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Debug(LogMsgCooldownEnforced)
	return nil
}

func (b *postgresBackend) ResetCooldown(ctx context.Context, telegramID int64, action string) error {
	if _, err := b.db.Exec(ctx, SQLDeleteCooldown, telegramID, action); err != nil {
		return fmt.Errorf(ErrMsgResetCooldownFailed, err)
	}
	return nil
}

func (b *postgresBackend) GetLastUsed(ctx context.Context, telegramID int64, action string) (*time.Time, error) {
	return lastUsed(ctx, b.db, telegramID, action)
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func lastUsed(ctx context.Context, q rowQuerier, telegramID int64, action string) (*time.Time, error) {
	var at time.Time
	err := q.QueryRow(ctx, SQLSelectLastUsed, telegramID, action).Scan(&at)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetLastUsedFailed, err)
	}
	return &at, nil
}

// lockKey derives a non-negative advisory lock key from a player and action.
// Collisions only serialise unrelated openers.
func lockKey(telegramID int64, action string) int64 {
	h := fnv.New64a()
	var id [8]byte
	binary.BigEndian.PutUint64(id[:], uint64(telegramID))
	_, _ = h.Write(id[:])
	_, _ = h.Write([]byte(action))
	return int64(h.Sum64() & LockKeyMask)
}
