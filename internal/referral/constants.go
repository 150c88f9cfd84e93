package referral

// Error context
const (
	ErrContextFailedToGetUser      = "failed to get user"
	ErrContextFailedToListReferral = "failed to list referrals"
	ErrContextFailedToBeginTx      = "failed to begin referral transaction"
	ErrContextFailedToTransfer     = "failed to transfer referral balance"
	ErrContextFailedToCommitTx     = "failed to commit referral transaction"
)

// Log messages
const (
	LogMsgReferralWithdrawn = "Referral balance moved to main balance"
)
