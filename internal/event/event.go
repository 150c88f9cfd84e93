package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
)

// Type represents the type of an event
type Type string

// Event types
const (
	RoundSettled       Type = domain.EventTypeRoundSettled
	DepositCredited    Type = domain.EventTypeDepositCredited
	WithdrawalRequest  Type = domain.EventTypeWithdrawalRequest
	WithdrawalResolved Type = domain.EventTypeWithdrawalResolved
	GiftWithdrawal     Type = domain.EventTypeGiftWithdrawal
)

// Event is a versioned message on the bus
type Event struct {
	Version  string         `json:"version"`
	Type     Type           `json:"type"`
	Payload  any            `json:"payload"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// RoundSettledPayloadV1 is published after a rolls round is paid out
type RoundSettledPayloadV1 struct {
	Round     int64                    `json:"round"`
	Result    domain.Color             `json:"result"`
	Payouts   map[string]domain.Payout `json:"payouts"`
	Timestamp int64                    `json:"timestamp"`
}

// DepositPayloadV1 is published when a deposit is credited
type DepositPayloadV1 struct {
	TelegramID int64                `json:"telegram_id"`
	Amount     decimal.Decimal      `json:"amount"`
	Method     domain.DepositMethod `json:"method"`
	Timestamp  int64                `json:"timestamp"`
}

// WithdrawalPayloadV1 is published when a withdrawal is requested or resolved
type WithdrawalPayloadV1 struct {
	RequestID  int64                   `json:"request_id"`
	TelegramID int64                   `json:"telegram_id"`
	Username   string                  `json:"username,omitempty"`
	Amount     decimal.Decimal         `json:"amount"`
	Wallet     string                  `json:"wallet"`
	Status     domain.WithdrawalStatus `json:"status"`
	Note       string                  `json:"note,omitempty"`
	Timestamp  int64                   `json:"timestamp"`
}

// GiftWithdrawalPayloadV1 is published when a user asks for a gift to be transferred
type GiftWithdrawalPayloadV1 struct {
	TelegramID int64  `json:"telegram_id"`
	Username   string `json:"username,omitempty"`
	GiftName   string `json:"gift_name"`
	Timestamp  int64  `json:"timestamp"`
}

// NewRoundSettledEvent builds a rolls.settled event. Payout keys are telegram ids as strings.
func NewRoundSettledEvent(settled domain.SettledRound) Event {
	payouts := make(map[string]domain.Payout, len(settled.Payouts))
	for uid, p := range settled.Payouts {
		payouts[fmt.Sprint(uid)] = p
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    RoundSettled,
		Payload: RoundSettledPayloadV1{
			Round:     settled.Round,
			Result:    settled.Result,
			Payouts:   payouts,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewDepositCreditedEvent builds a deposit.credited event
func NewDepositCreditedEvent(telegramID int64, amount decimal.Decimal, method domain.DepositMethod) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DepositCredited,
		Payload: DepositPayloadV1{
			TelegramID: telegramID,
			Amount:     amount,
			Method:     method,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewWithdrawalEvent builds a withdrawal.requested or withdrawal.resolved event
func NewWithdrawalEvent(eventType Type, w domain.Withdrawal, username string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: WithdrawalPayloadV1{
			RequestID:  w.ID,
			TelegramID: w.UserID,
			Username:   username,
			Amount:     w.Amount,
			Wallet:     w.WalletAddress,
			Status:     w.Status,
			Note:       w.AdminNote,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewGiftWithdrawalEvent builds a gift.withdrawal event
func NewGiftWithdrawalEvent(telegramID int64, username, giftName string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GiftWithdrawal,
		Payload: GiftWithdrawalPayloadV1{
			TelegramID: telegramID,
			Username:   username,
			GiftName:   giftName,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
