package telegram

import (
	"context"
	"fmt"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/event"
	"github.com/osse101/giftroll/internal/logger"
)

// Sender delivers one text message
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// Notifier sends admin and user notifications for wallet events
type Notifier struct {
	sender      Sender
	adminChatID int64
}

// NewNotifier creates a notifier. Admin messages are skipped when adminChatID is zero.
func NewNotifier(sender Sender, adminChatID int64) *Notifier {
	return &Notifier{sender: sender, adminChatID: adminChatID}
}

// Register subscribes the notifier to the bus
func (n *Notifier) Register(bus event.Bus) {
	bus.Subscribe(event.DepositCredited, n.HandleEvent)
	bus.Subscribe(event.WithdrawalRequest, n.HandleEvent)
	bus.Subscribe(event.WithdrawalResolved, n.HandleEvent)
	bus.Subscribe(event.GiftWithdrawal, n.HandleEvent)
}

// HandleEvent formats and sends the message for one event. Send failures are logged, not returned.
func (n *Notifier) HandleEvent(ctx context.Context, evt event.Event) error {
	chatID, text, ok := n.render(ctx, evt)
	if !ok {
		return nil
	}
	if err := n.sender.SendMessage(ctx, chatID, text); err != nil {
		logger.FromContext(ctx).Warn(LogMsgNotifyFailed, "type", evt.Type, "chatID", chatID, "error", err)
	}
	return nil
}

func (n *Notifier) render(ctx context.Context, evt event.Event) (int64, string, bool) {
	log := logger.FromContext(ctx)

	switch evt.Type {
	case event.DepositCredited:
		p, err := event.DecodePayload[event.DepositPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgInvalidPayload, "type", evt.Type, "error", err)
			return 0, "", false
		}
		return n.admin(fmt.Sprintf(MsgDepositFmt, domain.FormatBalance(p.Amount), p.Method, p.TelegramID))

	case event.WithdrawalRequest:
		p, err := event.DecodePayload[event.WithdrawalPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgInvalidPayload, "type", evt.Type, "error", err)
			return 0, "", false
		}
		return n.admin(fmt.Sprintf(MsgWithdrawalRequestFmt,
			p.RequestID, displayName(p.Username), p.TelegramID, domain.FormatBalance(p.Amount), p.Wallet))

	case event.WithdrawalResolved:
		p, err := event.DecodePayload[event.WithdrawalPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgInvalidPayload, "type", evt.Type, "error", err)
			return 0, "", false
		}
		tmpl := MsgWithdrawalRejectedFmt
		if p.Status == domain.WithdrawalApproved {
			tmpl = MsgWithdrawalApprovedFmt
		}
		text := fmt.Sprintf(tmpl, domain.FormatBalance(p.Amount))
		if p.Note != "" {
			text += fmt.Sprintf(MsgWithdrawalNoteFmt, p.Note)
		}
		return p.TelegramID, text, true

	case event.GiftWithdrawal:
		p, err := event.DecodePayload[event.GiftWithdrawalPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgInvalidPayload, "type", evt.Type, "error", err)
			return 0, "", false
		}
		return n.admin(fmt.Sprintf(MsgGiftWithdrawalFmt, displayName(p.Username), p.TelegramID, p.GiftName))
	}
	return 0, "", false
}

func (n *Notifier) admin(text string) (int64, string, bool) {
	if n.adminChatID == 0 {
		return 0, "", false
	}
	return n.adminChatID, text, true
}

func displayName(username string) string {
	if username == "" {
		return "-"
	}
	return "@" + username
}
