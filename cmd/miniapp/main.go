package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/giftroll/internal/logger"
	"github.com/osse101/giftroll/internal/miniapp"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Mini App client exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := miniapp.LoadConfig()
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}

	// logs go to stderr so they do not interleave with the game output
	logger.InitLoggerWithWriter(logger.NewConfig(cfg.LogLevel, "text", "giftroll-miniapp", "", "", false), os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := newTerminal(os.Stdout)
	api := miniapp.NewAPIClient(cfg)

	session := miniapp.Bootstrap(ctx, api, cfg)
	state := session.Snapshot()
	out.println("👋 %s (id %d)", state.DisplayName, state.TelegramID)
	out.RenderBalance(state)

	a := &app{
		session: session,
		rounds:  miniapp.NewRoundClient(api, session, out, cfg.PollInterval),
		spin:    miniapp.NewSpinClient(api, session, out, miniapp.SpinAnimation),
		cases:   miniapp.NewCaseClient(api, session, out, miniapp.CaseAnimation),
		wallet:  miniapp.NewWalletClient(api, session, out),
		out:     out,
	}

	a.rounds.Start(ctx)
	defer a.rounds.Stop()

	watchCtx, cancelWatch := context.WithCancel(ctx)
	watchDone := make(chan struct{})
	go func() {
		defer close(watchDone)
		a.cases.WatchFreeCase(watchCtx)
	}()
	defer func() {
		cancelWatch()
		<-watchDone
	}()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	out.println("%s", usage)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok || !a.exec(ctx, line) {
				return nil
			}
		}
	}
}
