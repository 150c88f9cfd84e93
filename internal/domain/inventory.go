package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is a gift won from a case
type InventoryItem struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	GiftName  string          `json:"gift_name"`
	GiftImage string          `json:"gift_image"`
	SellPrice decimal.Decimal `json:"sell_price"`
	CreatedAt time.Time       `json:"created_at"`
}

// InventoryActionRequest targets one inventory row
type InventoryActionRequest struct {
	TelegramID int64 `json:"telegram_id" validate:"required"`
	ItemID     int64 `json:"item_id" validate:"required"`
}

// SellResult is returned after selling a gift
type SellResult struct {
	NewBalance decimal.Decimal `json:"new_balance"`
	Sold       decimal.Decimal `json:"sold"`
}

// GiftWithdrawal is returned after a gift is queued for transfer
type GiftWithdrawal struct {
	Message string `json:"message"`
}
