package wallet

import "time"

// DefaultPendingDepositTTL is how long a TON invoice stays confirmable
const DefaultPendingDepositTTL = 24 * time.Hour

// MemoFmt is DEP-{telegram id}-{unix seconds}
const MemoFmt = "DEP-%d-%d"

// Error context
const (
	ErrContextFailedToBeginTx     = "failed to begin wallet transaction"
	ErrContextFailedToGetUser     = "failed to get user"
	ErrContextFailedToCredit      = "failed to credit deposit"
	ErrContextFailedToRecord      = "failed to record deposit"
	ErrContextFailedToGetDeposit  = "failed to get deposit"
	ErrContextFailedToWithdraw    = "failed to create withdrawal"
	ErrContextFailedToCommitTx    = "failed to commit wallet transaction"
	ErrContextFailedToList        = "failed to list withdrawals"
	ErrContextFailedToExpire      = "failed to expire pending deposits"
	ErrContextFailedToPayReferrer = "failed to pay referrer"
)

// Log messages
const (
	LogMsgDepositCredited    = "Deposit credited"
	LogMsgInvoiceCreated     = "TON invoice created"
	LogMsgWithdrawalCreated  = "Withdrawal requested"
	LogMsgReferrerPaid       = "Referrer credited"
	LogMsgReferrerMissing    = "Referrer no longer exists"
	LogMsgPublishFailed      = "Failed to publish wallet event"
	LogMsgNoWalletConfigured = "TON_WALLET_ADDRESS is not set, invoices carry an empty address"
)
