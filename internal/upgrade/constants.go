package upgrade

// Error context
const (
	ErrContextFailedToBeginTx  = "failed to begin upgrade transaction"
	ErrContextFailedToGetUser  = "failed to get user"
	ErrContextFailedToDraw     = "failed to draw upgrade outcome"
	ErrContextFailedToApply    = "failed to apply upgrade result"
	ErrContextFailedToCommitTx = "failed to commit upgrade transaction"
)

// Log messages
const (
	LogMsgSpinResolved = "Gift upgrade resolved"
)

// Metric outcomes
const (
	OutcomeWin  = "win"
	OutcomeLose = "lose"
)

// History details keys
const (
	DetailWon       = "won"
	DetailWinChance = "win_chance"
)
