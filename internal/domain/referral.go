package domain

import "github.com/shopspring/decimal"

// ReferralStartPrefix marks a referral start_param, e.g. ref_123
const ReferralStartPrefix = "ref_"

// Referral is one invited user
type Referral struct {
	Name           string          `json:"name"`
	Username       string          `json:"username"`
	TotalDeposited decimal.Decimal `json:"total_deposited"`
}

// ReferralSummary is the referral screen payload
type ReferralSummary struct {
	Referrals     []Referral      `json:"referrals"`
	TotalReferred int             `json:"total_referred"`
	RefBalance    decimal.Decimal `json:"ref_balance"`
	RefPercent    int             `json:"ref_percent"`
}

// ReferralWithdrawResult is returned after ref_balance moves to balance
type ReferralWithdrawResult struct {
	NewBalance decimal.Decimal `json:"new_balance"`
	Withdrawn  decimal.Decimal `json:"withdrawn"`
}

// ReferralShare is the referrer's cut of a deposit
func ReferralShare(amount decimal.Decimal, percent int) decimal.Decimal {
	return RoundMoney(amount.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100)))
}

// ReferralWithdrawRequest moves the referral balance into the main balance
type ReferralWithdrawRequest struct {
	TelegramID int64 `json:"telegram_id" validate:"required"`
}
