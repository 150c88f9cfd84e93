package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultRefPercent is the referral share given to new users
const DefaultRefPercent = 10

// User is a Mini App player keyed by telegram id
type User struct {
	TelegramID     int64           `json:"telegram_id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Username       string          `json:"username"`
	PhotoURL       string          `json:"photo_url"`
	Balance        decimal.Decimal `json:"balance"`
	TotalDeposited decimal.Decimal `json:"total_deposited"`
	GamesPlayed    int             `json:"games_played"`
	RefID          *int64          `json:"ref_id,omitempty"`
	RefPercent     int             `json:"ref_percent"`
	RefBalance     decimal.Decimal `json:"ref_balance"`
	CreatedAt      time.Time       `json:"created_at"`
	LastOnline     time.Time       `json:"last_online"`
}

// DisplayName returns the first name, falling back to the username
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	if u.Username != "" {
		return u.Username
	}
	return "Player"
}

// InitRequest is sent by the Mini App when it opens
type InitRequest struct {
	TelegramID int64  `json:"telegram_id" validate:"required"`
	FirstName  string `json:"first_name" validate:"max=64"`
	LastName   string `json:"last_name" validate:"max=64"`
	Username   string `json:"username" validate:"max=64"`
	PhotoURL   string `json:"photo_url" validate:"omitempty,url,max=512"`
	StartParam string `json:"start_param" validate:"max=64"`
}

// BalanceView is the balance endpoint payload
type BalanceView struct {
	Balance    decimal.Decimal `json:"balance"`
	RefBalance decimal.Decimal `json:"ref_balance"`
}
