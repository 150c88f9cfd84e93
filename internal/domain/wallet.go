package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositMethod is how funds arrived
type DepositMethod string

const (
	DepositTON   DepositMethod = "ton"
	DepositStars DepositMethod = "stars"
)

// DepositStatus tracks a deposit
type DepositStatus string

const (
	DepositPending   DepositStatus = "pending"
	DepositCompleted DepositStatus = "completed"
	DepositExpired   DepositStatus = "expired"
)

// WithdrawalStatus tracks a withdrawal request
type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalApproved WithdrawalStatus = "approved"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

// Wallet limits
var (
	StarsPerBatch         = decimal.NewFromInt(100)
	TONPerStarsBatch      = decimal.RequireFromString("1.099")
	MinStarsDeposit       = decimal.NewFromInt(100)
	MinWithdrawal         = decimal.NewFromInt(10)
	MinReferralWithdrawal = decimal.NewFromInt(3)
)

// WithdrawalDateLayout renders request dates as day.month hour:minute
const WithdrawalDateLayout = "02.01 15:04"

// StarsToTON converts Telegram stars to TON at 1.099 TON per 100 stars
func StarsToTON(stars decimal.Decimal) decimal.Decimal {
	return RoundMoney(stars.Mul(TONPerStarsBatch).Div(StarsPerBatch))
}

// Deposit is one incoming payment
type Deposit struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    DepositMethod   `json:"method"`
	Status    DepositStatus   `json:"status"`
	Memo      string          `json:"memo,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Withdrawal is a payout request reviewed by an admin
type Withdrawal struct {
	ID            int64            `json:"id"`
	UserID        int64            `json:"user_id"`
	Amount        decimal.Decimal  `json:"amount"`
	WalletAddress string           `json:"wallet_address"`
	Status        WithdrawalStatus `json:"status"`
	AdminNote     string           `json:"admin_note,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// WithdrawalView is a withdrawal as shown to its owner
type WithdrawalView struct {
	ID     int64            `json:"id"`
	Amount decimal.Decimal  `json:"amount"`
	Wallet string           `json:"wallet"`
	Status WithdrawalStatus `json:"status"`
	Note   string           `json:"note,omitempty"`
	Date   string           `json:"date"`
}

// View projects a withdrawal for its owner
func (w Withdrawal) View() WithdrawalView {
	return WithdrawalView{
		ID:     w.ID,
		Amount: w.Amount,
		Wallet: w.WalletAddress,
		Status: w.Status,
		Note:   w.AdminNote,
		Date:   w.CreatedAt.Format(WithdrawalDateLayout),
	}
}

// StarsDepositRequest credits a stars purchase
type StarsDepositRequest struct {
	TelegramID int64 `json:"telegram_id" validate:"required"`
	Stars      int64 `json:"stars" validate:"required,min=1"`
}

// TONDepositRequest opens a pending TON deposit
type TONDepositRequest struct {
	TelegramID int64           `json:"telegram_id" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"gt=0"`
}

// ConfirmDepositRequest completes a pending TON deposit
type ConfirmDepositRequest struct {
	TelegramID int64  `json:"telegram_id" validate:"required"`
	Memo       string `json:"memo" validate:"required,startswith=DEP-"`
}

// WithdrawRequest asks for a payout
type WithdrawRequest struct {
	TelegramID int64           `json:"telegram_id" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Wallet     string          `json:"wallet" validate:"required,min=10,max=128"`
}

// DepositResult is returned after a deposit is credited
type DepositResult struct {
	NewBalance decimal.Decimal `json:"new_balance"`
	Credited   decimal.Decimal `json:"credited"`
}

// TONInvoice tells the user where and how to send TON
type TONInvoice struct {
	Memo    string          `json:"memo"`
	Address string          `json:"address"`
	Amount  decimal.Decimal `json:"amount"`
}

// WithdrawResult is returned after a withdrawal is queued
type WithdrawResult struct {
	NewBalance decimal.Decimal `json:"new_balance"`
	RequestID  int64           `json:"request_id"`
}
