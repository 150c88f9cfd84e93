package sse

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
)

// RoundSettledPayload tells open tables a round closed. Payouts are keyed by telegram id.
type RoundSettledPayload struct {
	Round   int64                    `json:"round"`
	Result  domain.Color             `json:"result"`
	Payouts map[string]domain.Payout `json:"payouts"`
}

// DepositPayload tells a user their deposit landed
type DepositPayload struct {
	TelegramID int64           `json:"telegram_id"`
	Amount     decimal.Decimal `json:"amount"`
}
