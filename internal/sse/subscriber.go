package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/giftroll/internal/event"
)

// Subscriber bridges the event bus to the hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers the bus handlers
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.RoundSettled, s.handleRoundSettled)
	s.bus.Subscribe(event.DepositCredited, s.handleDeposit)

	slog.Info(LogMsgSubscriberReady, "types", []string{string(event.RoundSettled), string(event.DepositCredited)})
}

func (s *Subscriber) handleRoundSettled(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.RoundSettledPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeRoundSettled, RoundSettledPayload{
		Round:   payload.Round,
		Result:  payload.Result,
		Payouts: payload.Payouts,
	})
	return nil
}

func (s *Subscriber) handleDeposit(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.DepositPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeDeposit, DepositPayload{
		TelegramID: payload.TelegramID,
		Amount:     payload.Amount,
	})
	return nil
}
