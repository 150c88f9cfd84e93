package miniapp

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/logger"
)

// UserState is the client's view of the signed-in player
type UserState struct {
	TelegramID     int64
	DisplayName    string
	Username       string
	PhotoURL       string
	Balance        decimal.Decimal
	TotalDeposited decimal.Decimal
	RefBalance     decimal.Decimal
	RefPercent     int
	Offline        bool
}

// Session owns the UserState. Every component holds the same *Session.
type Session struct {
	mu    sync.RWMutex
	state UserState
}

// NewSession wraps an initial state
func NewSession(state UserState) *Session {
	return &Session{state: state}
}

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() UserState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ID returns the telegram id of the session user
func (s *Session) ID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.TelegramID
}

// Balance returns the current main balance
func (s *Session) Balance() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Balance
}

// Update mutates the state under the session lock
func (s *Session) Update(fn func(*UserState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// ApplyBalance stores a balance reported by the backend. The optional second
// value replaces the referral balance.
func (s *Session) ApplyBalance(balance decimal.Decimal, refBalance ...decimal.Decimal) {
	s.Update(func(u *UserState) {
		u.Balance = balance
		if len(refBalance) > 0 {
			u.RefBalance = refBalance[0]
		}
	})
}

// Initializer is the part of the backend Bootstrap needs
type Initializer interface {
	Init(ctx context.Context, req domain.InitRequest) (*domain.User, error)
}

// Bootstrap resolves the identity, registers it with the backend and returns
// the session. When the backend is unreachable the offline profile is kept.
func Bootstrap(ctx context.Context, api Initializer, cfg *Config) *Session {
	req := identity(cfg)
	session := NewSession(offlineState(req))

	u, err := api.Init(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInitFailed, "telegram_id", req.TelegramID, "error", err)
		return session
	}

	session.Update(func(s *UserState) {
		*s = stateFromUser(u)
	})
	return session
}

func identity(cfg *Config) domain.InitRequest {
	if cfg == nil || !cfg.HasIdentity() {
		return domain.InitRequest{
			TelegramID: DemoTelegramID,
			FirstName:  DemoFirstName,
			Username:   DemoUsername,
		}
	}
	return domain.InitRequest{
		TelegramID: cfg.TelegramID,
		FirstName:  cfg.FirstName,
		LastName:   cfg.LastName,
		Username:   cfg.Username,
		PhotoURL:   cfg.PhotoURL,
		StartParam: cfg.StartParam,
	}
}

func offlineState(req domain.InitRequest) UserState {
	u := domain.User{TelegramID: req.TelegramID, FirstName: req.FirstName, Username: req.Username}
	return UserState{
		TelegramID:     req.TelegramID,
		DisplayName:    u.DisplayName(),
		Username:       req.Username,
		PhotoURL:       req.PhotoURL,
		Balance:        decimal.RequireFromString(OfflineBalance),
		TotalDeposited: decimal.RequireFromString(OfflineTotalDeposited),
		RefBalance:     decimal.RequireFromString(OfflineRefBalance),
		RefPercent:     OfflineRefPercent,
		Offline:        true,
	}
}

func stateFromUser(u *domain.User) UserState {
	return UserState{
		TelegramID:     u.TelegramID,
		DisplayName:    u.DisplayName(),
		Username:       u.Username,
		PhotoURL:       u.PhotoURL,
		Balance:        u.Balance,
		TotalDeposited: u.TotalDeposited,
		RefBalance:     u.RefBalance,
		RefPercent:     u.RefPercent,
	}
}
