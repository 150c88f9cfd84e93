package rolls

import "time"

// Defaults used when Config leaves a field zero
const (
	DefaultRoundDuration = 10 * time.Second
	DefaultBetCutoff     = time.Second
)

// Error context
const (
	ErrContextFailedToBeginTx  = "failed to begin rolls transaction"
	ErrContextFailedToGetUser  = "failed to get user"
	ErrContextFailedToDebit    = "failed to debit stake"
	ErrContextFailedToCommitTx = "failed to commit rolls transaction"
	ErrContextFailedToDraw     = "failed to draw result"
	ErrContextFailedToSettle   = "failed to settle round"
	ErrContextFailedToRestore  = "failed to restore rounds"
)

// Log messages
const (
	LogMsgBetPlaced      = "Rolls bet placed"
	LogMsgRoundSettled   = "Rolls round settled"
	LogMsgBettorMissing  = "Rolls bettor no longer exists, skipping payout"
	LogMsgPublishFailed  = "Failed to publish round settled event"
	LogMsgRoundsRestored = "Rolls history restored"
)

// History details keys
const (
	DetailRound  = "round"
	DetailColor  = "color"
	DetailResult = "result"
)
