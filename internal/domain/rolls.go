package domain

import (
	"github.com/shopspring/decimal"
)

// Color is a rolls chip colour
type Color string

const (
	ColorRed   Color = "red"
	ColorBlue  Color = "blue"
	ColorGreen Color = "green"
)

// Chip deck used to draw a round outcome
const (
	RedChips   = 49
	BlueChips  = 49
	GreenChips = 2
)

// Rolls limits
const (
	RollsHistoryCap      = 100
	RollsSnapshotHistory = 20
)

var (
	greenMultiplier = decimal.NewFromInt(10)
	colorMultiplier = decimal.NewFromInt(2)
)

// Valid reports whether c is one of the playable colours
func (c Color) Valid() bool {
	switch c {
	case ColorRed, ColorBlue, ColorGreen:
		return true
	}
	return false
}

// Multiplier returns the payout multiplier for a winning bet on c
func (c Color) Multiplier() decimal.Decimal {
	if c == ColorGreen {
		return greenMultiplier
	}
	return colorMultiplier
}

// RollsBet is one participant's wager in the open round
type RollsBet struct {
	Color  Color           `json:"color"`
	Amount decimal.Decimal `json:"amount"`
}

// Payout is a settled bet for one participant
type Payout struct {
	Won    bool            `json:"won"`
	Amount decimal.Decimal `json:"amount"`
	Mult   decimal.Decimal `json:"mult"`
}

// RoundSnapshot is the polled state of the rolls table. Round is the
// sequence number of the most recently settled round (0 before the first).
type RoundSnapshot struct {
	Round       int64             `json:"round"`
	Countdown   float64           `json:"countdown"`
	LastResult  Color             `json:"last_result,omitempty"`
	History     []Color           `json:"history"`
	RedCount    int               `json:"red_count"`
	BlueCount   int               `json:"blue_count"`
	GreenCount  int               `json:"green_count"`
	LastPayouts map[string]Payout `json:"last_payouts"`
}

// SettledRound is the outcome of one closed round
type SettledRound struct {
	Round   int64
	Result  Color
	Bets    map[int64]RollsBet
	Payouts map[int64]Payout
}

// RollsBetRequest places a bet on the open round
type RollsBetRequest struct {
	TelegramID int64           `json:"telegram_id" validate:"required"`
	Color      Color           `json:"color" validate:"required,color"`
	Amount     decimal.Decimal `json:"amount"`
}

// RollsBetResponse is returned when a bet is accepted
type RollsBetResponse struct {
	Success    bool            `json:"success"`
	NewBalance decimal.Decimal `json:"new_balance"`
	Bet        RollsBet        `json:"bet"`
	Round      int64           `json:"round"`
}

// CountColors counts each colour in history
func CountColors(history []Color) (red, blue, green int) {
	for _, c := range history {
		switch c {
		case ColorRed:
			red++
		case ColorBlue:
			blue++
		case ColorGreen:
			green++
		}
	}
	return red, blue, green
}
