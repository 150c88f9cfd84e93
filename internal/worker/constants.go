package worker

import "time"

// Pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerJobDone   = "Worker job finished"
	LogMsgWorkerQueueFull = "Worker queue full, job skipped"
	ErrMsgJobPanicked     = "job panicked: %v"
	DefaultJobTimeout     = 30 * time.Second
)

// Round worker
const (
	LogMsgRoundRestoreFailed     = "Failed to restore rolls rounds on startup"
	LogMsgSchedulingSettlement   = "Scheduling rolls settlement"
	LogMsgSettlementFailed       = "Rolls settlement failed, retrying"
	LogMsgRoundWorkerStopping    = "Stopping round worker"
	LogMsgRoundWorkerStopped     = "Round worker stopped"
	LogMsgRoundWorkerStopTimeout = "Round worker did not stop before the deadline"

	// SettlementRetryDelay is how long a failed settlement waits before the next attempt
	SettlementRetryDelay = time.Second
)

// Jobs
const (
	JobNameDepositExpiry      = "deposit_expiry"
	JobNameLeaderboardRefresh = "leaderboard_refresh"

	LogMsgDepositsExpired      = "Expired stale TON deposits"
	LogMsgLeaderboardRefreshed = "Leaderboard cache refreshed"
)
