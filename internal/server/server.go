package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/giftroll/docs"
	"github.com/osse101/giftroll/internal/admin"
	"github.com/osse101/giftroll/internal/cases"
	"github.com/osse101/giftroll/internal/database"
	"github.com/osse101/giftroll/internal/handler"
	"github.com/osse101/giftroll/internal/inventory"
	"github.com/osse101/giftroll/internal/leaderboard"
	"github.com/osse101/giftroll/internal/logger"
	"github.com/osse101/giftroll/internal/metrics"
	"github.com/osse101/giftroll/internal/referral"
	"github.com/osse101/giftroll/internal/rolls"
	"github.com/osse101/giftroll/internal/sse"
	"github.com/osse101/giftroll/internal/upgrade"
	"github.com/osse101/giftroll/internal/user"
	"github.com/osse101/giftroll/internal/wallet"
)

// Services is everything the router dispatches to
type Services struct {
	User        user.Service
	Rolls       rolls.Service
	Upgrade     upgrade.Service
	Cases       cases.Service
	Inventory   inventory.Service
	Leaderboard leaderboard.Service
	Referral    referral.Service
	Wallet      wallet.Service
	Admin       admin.Service
}

// Options configures the HTTP server
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, svc Services, hub *sse.Hub) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, dbPool, svc, hub),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router. Mini App routes are public, /api/admin needs the API key.
func NewRouter(opts Options, dbPool database.Pool, svc Services, hub *sse.Hub) http.Handler {
	r := chi.NewRouter()

	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(CORSMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get(PathHealthz, handler.HandleHealthz())
	r.Get(PathReadyz, handler.HandleReadyz(dbPool))
	r.Handle(PathMetrics, promhttp.Handler())
	r.Get(PathSwagger+"*", httpSwagger.WrapHandler)

	rollsHandler := handler.NewRollsHandler(svc.Rolls)
	casesHandler := handler.NewCasesHandler(svc.Cases)
	walletHandler := handler.NewWalletHandler(svc.Wallet)
	adminHandler := handler.NewAdminHandler(svc.Admin)

	r.Route("/api", func(r chi.Router) {
		r.Post("/init", handler.HandleInit(svc.User))
		r.Get("/balance/{id}", handler.HandleGetBalance(svc.User))
		r.Get("/history/{id}", handler.HandleGetHistory(svc.User))

		r.Route("/rolls", func(r chi.Router) {
			r.Get("/state", rollsHandler.HandleState)
			r.Post("/bet", rollsHandler.HandleBet)
			if hub != nil {
				r.Get("/stream", sse.Handler(hub))
			}
		})

		r.Post("/roulette/spin", handler.HandleSpin(svc.Upgrade))

		r.Route("/mutants", func(r chi.Router) {
			r.Get("/cases", casesHandler.HandleList)
			r.Post("/check", casesHandler.HandleCheckAccess)
			r.Post("/open", casesHandler.HandleOpen)
		})
		r.Get("/free_case_status/{id}", casesHandler.HandleFreeCaseStatus)

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/{id}", handler.HandleGetInventory(svc.Inventory))
			r.Post("/sell", handler.HandleSellGift(svc.Inventory))
			r.Post("/withdraw_gift", handler.HandleWithdrawGift(svc.Inventory))
		})

		r.Get("/leaderboard", handler.HandleGetLeaderboard(svc.Leaderboard))

		r.Route("/referrals", func(r chi.Router) {
			r.Get("/{id}", handler.HandleGetReferrals(svc.Referral))
			r.Post("/withdraw", handler.HandleWithdrawReferral(svc.Referral))
		})

		r.Route("/deposit", func(r chi.Router) {
			r.Post("/stars", walletHandler.HandleDepositStars)
			r.Post("/ton", walletHandler.HandleDepositTON)
			r.Post("/confirm", walletHandler.HandleConfirmDeposit)
		})
		r.Post("/withdraw", walletHandler.HandleWithdraw)
		r.Get("/withdrawals/{id}", walletHandler.HandleListWithdrawals)

		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))

			r.Get("/stats", adminHandler.HandleStats)
			r.Get("/users", adminHandler.HandleSearchUsers)
			r.Get("/users/{id}", adminHandler.HandleGetUser)
			r.Post("/users/{id}", adminHandler.HandleUpdateUser)
			r.Get("/withdrawals", adminHandler.HandlePendingWithdrawals)
			r.Post("/withdrawals/{rid}/approve", adminHandler.HandleApproveWithdrawal)
			r.Post("/withdrawals/{rid}/reject", adminHandler.HandleRejectWithdrawal)
			r.Get("/games", adminHandler.HandleRecentGames)
		})
	})

	return r
}

// quietPath reports whether requests to path are too chatty to log: probes, scrapes,
// docs and the twice-a-second state poll.
func quietPath(path string) bool {
	switch path {
	case PathHealthz, PathReadyz, PathMetrics, PathRollsState:
		return true
	}
	return strings.HasPrefix(path, PathSwagger)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if quietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// redactHeaders copies h with credential headers masked
func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			v = []string{RedactedValue}
		}
		out[k] = v
	}
	return out
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
