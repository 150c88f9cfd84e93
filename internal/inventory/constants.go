package inventory

// GiftWithdrawalMessageFmt is the instruction shown after a gift is queued for transfer
const GiftWithdrawalMessageFmt = "Write \"Hi\" to the admin and name your gift: %s"

// Error context
const (
	ErrContextFailedToList     = "failed to list inventory"
	ErrContextFailedToBeginTx  = "failed to begin inventory transaction"
	ErrContextFailedToGetItem  = "failed to get inventory item"
	ErrContextFailedToGetUser  = "failed to get user"
	ErrContextFailedToSell     = "failed to sell gift"
	ErrContextFailedToWithdraw = "failed to withdraw gift"
	ErrContextFailedToCommitTx = "failed to commit inventory transaction"
)

// Log messages
const (
	LogMsgGiftSold      = "Gift sold"
	LogMsgGiftWithdrawn = "Gift queued for transfer"
	LogMsgPublishFailed = "Failed to publish gift withdrawal event"
)
