package domain

import "github.com/shopspring/decimal"

// LeaderboardSize is how many players the leaderboard shows
const LeaderboardSize = 35

// LeaderboardEntry is one ranked player
type LeaderboardEntry struct {
	Rank           int             `json:"rank"`
	Name           string          `json:"name"`
	Username       string          `json:"username"`
	PhotoURL       string          `json:"photo_url"`
	TotalDeposited decimal.Decimal `json:"total_deposited"`
}
