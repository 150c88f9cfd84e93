package metrics

import (
	"context"

	"github.com/osse101/giftroll/internal/event"
	"github.com/osse101/giftroll/internal/logger"
)

// EventMetricsCollector turns bus events into counters
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every event type the collector counts
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range []event.Type{
		event.RoundSettled,
		event.DepositCredited,
		event.WithdrawalRequest,
		event.WithdrawalResolved,
		event.GiftWithdrawal,
	} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent records metrics for one event. It never fails.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.RoundSettled:
		payload, err := event.DecodePayload[event.RoundSettledPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgInvalidPayload, "type", evt.Type, "error", err)
			return nil
		}
		RollsRounds.WithLabelValues(string(payload.Result)).Inc()

	case event.DepositCredited:
		payload, err := event.DecodePayload[event.DepositPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgInvalidPayload, "type", evt.Type, "error", err)
			return nil
		}
		Deposits.WithLabelValues(string(payload.Method)).Inc()
		DepositedTON.WithLabelValues(string(payload.Method)).Add(payload.Amount.InexactFloat64())

	case event.WithdrawalRequest, event.WithdrawalResolved:
		payload, err := event.DecodePayload[event.WithdrawalPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgInvalidPayload, "type", evt.Type, "error", err)
			return nil
		}
		Withdrawals.WithLabelValues(string(payload.Status)).Inc()

	case event.GiftWithdrawal:
		GiftWithdrawals.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
