package miniapp

import "time"

// Client defaults
const (
	DefaultAPIURL       = "http://localhost:8080"
	DefaultPollInterval = 500 * time.Millisecond
	DefaultTimeout      = 10 * time.Second
	DefaultMaxRetries   = 3
	DefaultRetryDelay   = 500 * time.Millisecond
	DefaultLogLevel     = "WARN"
	maxJitter           = 100 * time.Millisecond

	// SpinAnimation and CaseAnimation are how long the reels run before the result is shown
	SpinAnimation = 4 * time.Second
	CaseAnimation = 3600 * time.Millisecond

	// FreeCaseTick is how often the free case countdown is redrawn
	FreeCaseTick = time.Second
)

// Display limits
const (
	StripSize    = 15
	HistoryLimit = 20
)

// Demo profile used when the host gives no identity
const (
	DemoTelegramID = 12345
	DemoFirstName  = "Demo"
	DemoUsername   = "demouser"
)

// Offline profile figures used when /api/init cannot be reached
const (
	OfflineBalance        = "1.5"
	OfflineTotalDeposited = "10"
	OfflineRefBalance     = "0.45"
	OfflineRefPercent     = 10
)

// API paths
const (
	pathInit           = "/api/init"
	pathBalance        = "/api/balance/%d"
	pathHistory        = "/api/history/%d"
	pathRollsState     = "/api/rolls/state"
	pathRollsBet       = "/api/rolls/bet"
	pathSpin           = "/api/roulette/spin"
	pathCases          = "/api/mutants/cases"
	pathCaseCheck      = "/api/mutants/check"
	pathCaseOpen       = "/api/mutants/open"
	pathFreeCaseStatus = "/api/free_case_status/%d"
	pathInventory      = "/api/inventory/%d"
	pathSell           = "/api/inventory/sell"
	pathWithdrawGift   = "/api/inventory/withdraw_gift"
	pathLeaderboard    = "/api/leaderboard"
	pathReferrals      = "/api/referrals/%d"
	pathRefWithdraw    = "/api/referrals/withdraw"
	pathDepositStars   = "/api/deposit/stars"
	pathDepositTON     = "/api/deposit/ton"
	pathDepositConfirm = "/api/deposit/confirm"
	pathWithdraw       = "/api/withdraw"
	pathWithdrawals    = "/api/withdrawals/%d"
)

// Log messages
const (
	LogMsgRetrying        = "Retrying API request"
	LogMsgRequestFailed   = "API request failed"
	LogMsgServerError     = "Server error, will retry"
	LogMsgInitFailed      = "Init failed, using offline profile"
	LogMsgPollSkipped     = "Rolls poll skipped"
	LogMsgBalanceRefresh  = "Balance refresh failed"
	LogMsgPollStarted     = "Rolls polling started"
	LogMsgPollStopped     = "Rolls polling stopped"
	LogMsgFreeCaseCheck   = "Free case status check failed"
	LogMsgSettlementFound = "Applied settlement for local bet"
)

// User-facing messages
const (
	MsgNetworkError         = "Network error, please try again"
	MsgInvalidAmount        = "Enter a valid amount"
	MsgInvalidColor         = "Pick red, blue or green"
	MsgInsufficientBalance  = "Insufficient balance"
	MsgBetAlreadyPlaced     = "Bet already placed"
	MsgBusy                 = "Please wait for the current action to finish"
	MsgInvalidMultiplier    = "Multiplier must be between 1.3 and 20"
	MsgMinStars             = "Minimum deposit is 100 stars"
	MsgMinWithdrawal        = "Minimum withdrawal is 10 TON"
	MsgWalletRequired       = "Enter a wallet address"
	MsgMinRefWithdrawal     = "Minimum referral withdrawal is 3 TON"
	MsgUnknownCase          = "Unknown case"
	MsgMemoRequired         = "Enter the deposit memo"
	MsgFreeCaseLockedPrefix = "Free case available in "
	MsgLost                 = "lost"
	MsgWonFmt               = "won +%s (%s×)"
)
