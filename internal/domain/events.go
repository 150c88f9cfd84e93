package domain

// Event type names published on the bus
const (
	EventTypeRoundSettled       = "rolls.settled"
	EventTypeDepositCredited    = "deposit.credited"
	EventTypeWithdrawalRequest  = "withdrawal.requested"
	EventTypeWithdrawalResolved = "withdrawal.resolved"
	EventTypeGiftWithdrawal     = "gift.withdrawal"
)
