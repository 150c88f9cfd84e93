package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/giftroll/internal/config"
	"github.com/osse101/giftroll/internal/event"
)

// InitializeEventSystem creates the in-memory bus and the resilient publisher services
// publish through. Subscribers attach to either; both dispatch to the same handlers.
func InitializeEventSystem(cfg *config.Config) (*event.MemoryBus, *event.ResilientPublisher, error) {
	bus := event.NewMemoryBus()

	if err := os.MkdirAll(filepath.Dir(cfg.EventDeadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	reportDeadLetters(cfg.EventDeadLetterPath)

	publisher, err := event.NewResilientPublisher(bus, cfg.EventMaxRetries, cfg.EventRetryDelay, cfg.EventDeadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", cfg.EventDeadLetterPath)

	return bus, publisher, nil
}

// reportDeadLetters warns about events a previous run could not deliver
func reportDeadLetters(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	entries, skipped, err := event.ReadDeadLetters(f)
	if err != nil {
		slog.Warn(LogMsgDeadLetterUnreadable, "path", path, "error", err)
		return
	}
	if len(entries) > 0 || skipped > 0 {
		slog.Warn(LogMsgPendingDeadLetters, "path", path, "entries", len(entries), "unreadable_lines", skipped)
	}
}
