package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type expirerFunc func(ctx context.Context) (int64, error)

func (f expirerFunc) ExpireStaleDeposits(ctx context.Context) (int64, error) { return f(ctx) }

type refresherFunc func(ctx context.Context) error

func (f refresherFunc) Refresh(ctx context.Context) error { return f(ctx) }

func TestDepositExpiryJob(t *testing.T) {
	job := NewDepositExpiryJob(expirerFunc(func(ctx context.Context) (int64, error) { return 3, nil }))
	assert.NoError(t, job.Process(context.Background()))

	boom := errors.New("boom")
	job = NewDepositExpiryJob(expirerFunc(func(ctx context.Context) (int64, error) { return 0, boom }))
	assert.ErrorIs(t, job.Process(context.Background()), boom)
}

func TestLeaderboardRefreshJob(t *testing.T) {
	called := false
	job := NewLeaderboardRefreshJob(refresherFunc(func(ctx context.Context) error {
		called = true
		return nil
	}))
	assert.NoError(t, job.Process(context.Background()))
	assert.True(t, called)
}
