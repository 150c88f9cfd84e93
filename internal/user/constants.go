package user

// HistoryLimit is how many game rows the history endpoint returns
const HistoryLimit = 20

// Error context
const (
	ErrContextFailedToGetUser    = "failed to get user"
	ErrContextFailedToCreateUser = "failed to create user"
	ErrContextFailedToTouchUser  = "failed to update user"
	ErrContextFailedToGetHistory = "failed to get game history"
)

// Log messages
const (
	LogMsgUserCreated       = "User created"
	LogMsgReferralAttached  = "Referral attached"
	LogMsgReferralIgnored   = "Referral start param ignored"
	LogMsgCreateRaceResolve = "User created concurrently, touching instead"
)
