package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/giftroll/internal/event"
	"github.com/osse101/giftroll/internal/scheduler"
	"github.com/osse101/giftroll/internal/server"
	"github.com/osse101/giftroll/internal/sse"
	"github.com/osse101/giftroll/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown. Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	RoundWorker        *worker.RoundWorker
	Scheduler          *scheduler.Scheduler
	JobPool            *worker.Pool
	Hub                *sse.Hub
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops the HTTP server, then the timers and jobs, then flushes the
// event publisher so notifications for already committed work still go out.
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.RoundWorker != nil {
		if err := c.RoundWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgRoundWorkerShutdownFailed, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.JobPool != nil {
		c.JobPool.Stop()
	}
	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
