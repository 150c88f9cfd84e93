package admin

import "time"

const (
	OnlineDayWindow  = 24 * time.Hour
	OnlineNowWindow  = 5 * time.Minute
	SearchLimit      = 20
	DetailGamesLimit = 20
	RecentGamesLimit = 50
)

// Error context
const (
	ErrContextFailedToGetUser     = "failed to get user"
	ErrContextFailedToCount       = "failed to count users"
	ErrContextFailedToSum         = "failed to sum deposits"
	ErrContextFailedToSearch      = "failed to search users"
	ErrContextFailedToListGames   = "failed to list games"
	ErrContextFailedToListWithdr  = "failed to list withdrawals"
	ErrContextFailedToListInv     = "failed to list inventory"
	ErrContextFailedToBeginTx     = "failed to begin admin transaction"
	ErrContextFailedToUpdateUser  = "failed to update user"
	ErrContextFailedToResolve     = "failed to resolve withdrawal"
	ErrContextFailedToRefund      = "failed to refund withdrawal"
	ErrContextFailedToCommitTx    = "failed to commit admin transaction"
	ErrContextFailedToGetWithdraw = "failed to get withdrawal"
)

// Log messages
const (
	LogMsgUserUpdated        = "Admin updated user"
	LogMsgWithdrawalResolved = "Withdrawal resolved"
	LogMsgPublishFailed      = "Failed to publish withdrawal resolution"
)
