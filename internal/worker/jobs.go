package worker

import (
	"context"

	"github.com/osse101/giftroll/internal/logger"
)

// DepositExpirer expires TON deposits nobody confirmed
type DepositExpirer interface {
	ExpireStaleDeposits(ctx context.Context) (int64, error)
}

// DepositExpiryJob marks stale pending deposits expired
type DepositExpiryJob struct {
	wallet DepositExpirer
}

// NewDepositExpiryJob creates a new DepositExpiryJob
func NewDepositExpiryJob(wallet DepositExpirer) *DepositExpiryJob {
	return &DepositExpiryJob{wallet: wallet}
}

func (j *DepositExpiryJob) Name() string { return JobNameDepositExpiry }

func (j *DepositExpiryJob) Process(ctx context.Context) error {
	n, err := j.wallet.ExpireStaleDeposits(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		logger.FromContext(ctx).Info(LogMsgDepositsExpired, "count", n)
	}
	return nil
}

// LeaderboardRefresher rebuilds the cached leaderboard
type LeaderboardRefresher interface {
	Refresh(ctx context.Context) error
}

// LeaderboardRefreshJob keeps the leaderboard cache warm
type LeaderboardRefreshJob struct {
	leaderboard LeaderboardRefresher
}

// NewLeaderboardRefreshJob creates a new LeaderboardRefreshJob
func NewLeaderboardRefreshJob(leaderboard LeaderboardRefresher) *LeaderboardRefreshJob {
	return &LeaderboardRefreshJob{leaderboard: leaderboard}
}

func (j *LeaderboardRefreshJob) Name() string { return JobNameLeaderboardRefresh }

func (j *LeaderboardRefreshJob) Process(ctx context.Context) error {
	if err := j.leaderboard.Refresh(ctx); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgLeaderboardRefreshed)
	return nil
}
