package domain

import "github.com/shopspring/decimal"

// Gift upgrade limits
var (
	MinUpgradeMultiplier = decimal.RequireFromString("1.3")
	MaxUpgradeMultiplier = decimal.NewFromInt(20)
	MinWinChance         = decimal.RequireFromString("0.05")
	MaxWinChance         = decimal.RequireFromString("0.95")
)

// UpgradeMultipliers are the presets offered by the spin screen
var UpgradeMultipliers = []string{"1.3", "1.5", "2", "3", "5", "7", "10", "15", "20"}

// WinChance is 1/multiplier clamped to [0.05, 0.95]
func WinChance(multiplier decimal.Decimal) decimal.Decimal {
	if multiplier.Sign() <= 0 {
		return MaxWinChance
	}
	chance := decimal.NewFromInt(1).DivRound(multiplier, 8)
	if chance.LessThan(MinWinChance) {
		return MinWinChance
	}
	if chance.GreaterThan(MaxWinChance) {
		return MaxWinChance
	}
	return chance
}

// SpinRequest is a gift upgrade attempt
type SpinRequest struct {
	TelegramID int64           `json:"telegram_id" validate:"required"`
	Stake      decimal.Decimal `json:"stake"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

// SpinResult is the outcome of a gift upgrade
type SpinResult struct {
	Won        bool            `json:"won"`
	Stake      decimal.Decimal `json:"stake"`
	Multiplier decimal.Decimal `json:"multiplier"`
	WinChance  decimal.Decimal `json:"win_chance"`
	Result     decimal.Decimal `json:"result"`
	NewBalance decimal.Decimal `json:"new_balance"`
	HistoryID  int64           `json:"history_id"`
}
