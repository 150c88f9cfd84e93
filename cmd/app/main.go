package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/giftroll/internal/admin"
	"github.com/osse101/giftroll/internal/bootstrap"
	"github.com/osse101/giftroll/internal/cases"
	"github.com/osse101/giftroll/internal/config"
	"github.com/osse101/giftroll/internal/cooldown"
	"github.com/osse101/giftroll/internal/database"
	"github.com/osse101/giftroll/internal/handler"
	"github.com/osse101/giftroll/internal/inventory"
	"github.com/osse101/giftroll/internal/leaderboard"
	"github.com/osse101/giftroll/internal/referral"
	"github.com/osse101/giftroll/internal/rolls"
	"github.com/osse101/giftroll/internal/scheduler"
	"github.com/osse101/giftroll/internal/server"
	"github.com/osse101/giftroll/internal/sse"
	"github.com/osse101/giftroll/internal/upgrade"
	"github.com/osse101/giftroll/internal/user"
	"github.com/osse101/giftroll/internal/wallet"
	"github.com/osse101/giftroll/internal/worker"
)

const shutdownTimeout = 15 * time.Second

// @title Giftroll API
// @version 1.0
// @description Backend for the Giftroll Telegram Mini App.
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("GiftRoll exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		bootstrap.InitFallbackLogger()
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Warn("File logging unavailable, using stdout only", "error", err)
	}
	defer logFile.Close()

	for _, w := range cfg.Warnings() {
		slog.Warn("Configuration warning", "detail", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(ctx, database.PoolOptions{
		ConnString:  cfg.GetDBConnString(),
		MaxConns:    cfg.DBMaxConns,
		MaxIdle:     cfg.DBMaxIdle,
		MaxLife:     cfg.DBMaxLife,
		PingRetries: database.DefaultPingRetries,
		RetryDelay:  database.DefaultPingDelay,
	})
	if err != nil {
		return err
	}
	defer dbPool.Close()

	if err := database.Migrate(ctx, dbPool); err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	catalog, err := bootstrap.LoadCaseCatalog(cfg)
	if err != nil {
		return err
	}

	store := bootstrap.InitializeRepositories(dbPool)
	cooldowns := cooldown.NewPostgresService(dbPool, cooldown.Config{
		DevMode:  cfg.DevMode,
		FreeCase: cfg.FreeCaseCooldown,
	})

	rollsService := rolls.NewService(store, publisher, rolls.Config{
		RoundDuration: cfg.RollsRoundDuration,
		BetCutoff:     cfg.RollsBetCutoff,
	})
	leaderboardService := leaderboard.NewService(store, cfg.LeaderboardCacheTTL)
	walletService := wallet.NewService(store, publisher, wallet.Config{
		TONAddress:        cfg.TONWalletAddress,
		PendingDepositTTL: cfg.PendingDepositTTL,
	})

	services := server.Services{
		User:        user.NewService(store),
		Rolls:       rollsService,
		Upgrade:     upgrade.NewService(store),
		Cases:       cases.NewService(store, cooldowns, catalog),
		Inventory:   inventory.NewService(store, publisher),
		Leaderboard: leaderboardService,
		Referral:    referral.NewService(store),
		Wallet:      walletService,
		Admin:       admin.NewService(store, publisher),
	}

	hub := sse.NewHub()

	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:    bus,
		Hub:         hub,
		Leaderboard: leaderboardService,
		Config:      cfg,
	})

	roundWorker := worker.NewRoundWorker(rollsService)
	roundWorker.Start(ctx)

	jobPool := worker.NewPool(bootstrap.JobPoolWorkers, bootstrap.JobPoolQueueSize)
	jobPool.Start()
	sched := scheduler.New(jobPool)
	sched.Schedule(scheduler.Task{
		Interval: bootstrap.DepositExpiryInterval,
		Job:      worker.NewDepositExpiryJob(walletService),
	})
	sched.Schedule(scheduler.Task{
		Interval:   bootstrap.LeaderboardRefreshInterval,
		Job:        worker.NewLeaderboardRefreshJob(leaderboardService),
		RunOnStart: true,
	})

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, dbPool, services, hub)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		RoundWorker:        roundWorker,
		Scheduler:          sched,
		JobPool:            jobPool,
		Hub:                hub,
		ResilientPublisher: publisher,
	})
	return err
}
