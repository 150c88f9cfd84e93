package domain

import "github.com/shopspring/decimal"

// AdminStats summarises the player base
type AdminStats struct {
	TotalUsers     int             `json:"total_users"`
	Online24h      int             `json:"online_24h"`
	Online5m       int             `json:"online_5m"`
	TotalDeposited decimal.Decimal `json:"total_deposited"`
}

// UserUpdate is an admin edit. Nil fields are left alone.
type UserUpdate struct {
	BalanceAdd *decimal.Decimal `json:"balance_add,omitempty"`
	BalanceSet *decimal.Decimal `json:"balance_set,omitempty"`
	RefPercent *int             `json:"ref_percent,omitempty" validate:"omitempty,min=0,max=100"`
}

// RejectRequest carries the admin note for a rejected withdrawal
type RejectRequest struct {
	Note string `json:"note" validate:"max=500"`
}

// AdminUserDetail is a user with recent activity
type AdminUserDetail struct {
	User        *User           `json:"user"`
	Games       []GameHistory   `json:"games"`
	Withdrawals []Withdrawal    `json:"withdrawals"`
	Inventory   []InventoryItem `json:"inventory"`
}
