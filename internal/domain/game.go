package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GameType identifies the game a history row belongs to
type GameType string

const (
	GameTypeGiftUpgrade GameType = "gift_upgrade"
	GameTypeRolls       GameType = "rolls"
	GameTypeMutants     GameType = "mutants"
)

// GameHistory is one played game for a user
type GameHistory struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	GameType   GameType        `json:"game_type"`
	Stake      decimal.Decimal `json:"stake"`
	Result     decimal.Decimal `json:"result"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Details    map[string]any  `json:"details,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
