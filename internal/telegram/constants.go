package telegram

import "time"

const (
	DefaultBaseURL    = "https://api.telegram.org"
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 500 * time.Millisecond
	maxJitter         = 100 * time.Millisecond
	sendMessageMethod = "sendMessage"
)

// Log messages
const (
	LogMsgRetrying         = "Retrying Telegram request"
	LogMsgRequestFailed    = "Telegram request failed"
	LogMsgServerError      = "Telegram server error, will retry"
	LogMsgNotifierDisabled = "BOT_TOKEN is not set, Telegram notifications are disabled"
	LogMsgNoAdminChat      = "ADMIN_CHAT_ID is not set, admin notifications are skipped"
	LogMsgNotifyFailed     = "Failed to send Telegram notification"
	LogMsgInvalidPayload   = "Ignoring event with unexpected payload"
)

// Message templates
const (
	MsgDepositFmt            = "💰 Deposit: %s TON via %s\nUser ID: %d"
	MsgWithdrawalRequestFmt  = "📤 Withdrawal request #%d\nUser: %s (ID: %d)\nAmount: %s TON\nWallet: %s"
	MsgWithdrawalApprovedFmt = "✅ Withdrawal approved: %s TON"
	MsgWithdrawalRejectedFmt = "❌ Withdrawal rejected: %s TON"
	MsgWithdrawalNoteFmt     = "\nNote: %s"
	MsgGiftWithdrawalFmt     = "🎁 Gift withdrawal\nUser: %s (ID: %d)\nGift: %s"
)
