package bootstrap

import (
	"log/slog"

	"github.com/osse101/giftroll/internal/config"
	"github.com/osse101/giftroll/internal/event"
	"github.com/osse101/giftroll/internal/leaderboard"
	"github.com/osse101/giftroll/internal/metrics"
	"github.com/osse101/giftroll/internal/sse"
	"github.com/osse101/giftroll/internal/telegram"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus    event.Bus
	Hub         *sse.Hub
	Leaderboard leaderboard.Service
	Config      *config.Config
}

// RegisterEventHandlers attaches every bus subscriber: metrics, the rolls stream,
// leaderboard cache invalidation and, when a bot token is set, Telegram notifications.
// It returns the notifier, or nil when notifications are disabled.
func RegisterEventHandlers(deps EventHandlerDependencies) *telegram.Notifier {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgStreamSubscriberRegistered)
	}

	deps.Leaderboard.Subscribe(deps.EventBus)
	slog.Info(LogMsgLeaderboardSubscribed)

	client := telegram.NewClient(deps.Config.BotToken)
	if !client.Enabled() {
		slog.Warn(LogMsgNotifierDisabled)
		return nil
	}
	notifier := telegram.NewNotifier(client, deps.Config.AdminChatID)
	notifier.Register(deps.EventBus)
	slog.Info(LogMsgNotifierRegistered, "admin_chat_id", deps.Config.AdminChatID)
	return notifier
}
