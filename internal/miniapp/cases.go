package miniapp

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/logger"
)

// CaseAPI is the part of the backend the cases screen uses
type CaseAPI interface {
	Cases(ctx context.Context) ([]domain.Case, error)
	CheckAccess(ctx context.Context, telegramID int64) (*domain.CaseAccess, error)
	OpenCase(ctx context.Context, telegramID int64, caseType domain.CaseType) (*domain.CaseResult, error)
	FreeCaseStatus(ctx context.Context, telegramID int64) (*domain.FreeCaseStatus, error)
}

// CaseClient opens cases and tracks the free case timer
type CaseClient struct {
	api       CaseAPI
	session   *Session
	render    Renderer
	animation time.Duration
	tick      time.Duration
	busy      busyFlag

	mu         sync.Mutex
	catalog    map[domain.CaseType]domain.Case
	freeStatus *domain.FreeCaseStatus

	recheck chan struct{}
}

// NewCaseClient creates a case client. A negative animation uses CaseAnimation.
func NewCaseClient(api CaseAPI, session *Session, render Renderer, animation time.Duration) *CaseClient {
	if animation < 0 {
		animation = CaseAnimation
	}
	if render == nil {
		render = NopRenderer{}
	}
	return &CaseClient{
		api:       api,
		session:   session,
		render:    render,
		animation: animation,
		tick:      FreeCaseTick,
		recheck:   make(chan struct{}, 1),
	}
}

// Catalog fetches the case list and caches it for OpenCase
func (c *CaseClient) Catalog(ctx context.Context) ([]domain.Case, error) {
	cases, err := c.api.Cases(ctx)
	if err != nil {
		return nil, err
	}

	byType := make(map[domain.CaseType]domain.Case, len(cases))
	for _, cs := range cases {
		byType[cs.Type] = cs
	}

	c.mu.Lock()
	c.catalog = byType
	c.mu.Unlock()
	return cases, nil
}

func (c *CaseClient) lookup(ctx context.Context, caseType domain.CaseType) (domain.Case, bool, error) {
	c.mu.Lock()
	loaded := c.catalog != nil
	cs, ok := c.catalog[caseType]
	c.mu.Unlock()
	if loaded {
		return cs, ok, nil
	}

	if _, err := c.Catalog(ctx); err != nil {
		return domain.Case{}, false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	cs, ok = c.catalog[caseType]
	return cs, ok, nil
}

// CheckAccess asks whether paid cases are unlocked. When the backend cannot be
// reached the lifetime deposit in the session decides.
func (c *CaseClient) CheckAccess(ctx context.Context) (*domain.CaseAccess, error) {
	access, err := c.api.CheckAccess(ctx, c.session.ID())
	if err == nil {
		return access, nil
	}
	if !IsTransport(err) {
		return nil, err
	}
	deposited := c.session.Snapshot().TotalDeposited
	return &domain.CaseAccess{Access: deposited.GreaterThanOrEqual(domain.MinCaseDeposit)}, nil
}

// OpenCase opens one case. Paid cases need the cost in the local balance and a
// locked free case is refused without a request.
func (c *CaseClient) OpenCase(ctx context.Context, caseType domain.CaseType) (*domain.CaseResult, error) {
	cs, ok, err := c.lookup(ctx, caseType)
	if err != nil {
		return nil, notifyErr(c.render, err)
	}
	if !ok {
		return nil, notifyErr(c.render, invalid(MsgUnknownCase))
	}

	if cs.IsFree() {
		if status := c.FreeStatus(); status != nil && !status.Available {
			return nil, notifyErr(c.render, invalid(MsgFreeCaseLockedPrefix+FormatCountdown(status.RemainingSeconds)))
		}
	} else if c.session.Balance().LessThan(cs.Cost) {
		return nil, notifyErr(c.render, invalid(MsgInsufficientBalance))
	}

	if !c.busy.acquire() {
		return nil, notifyErr(c.render, ErrBusy)
	}
	defer c.busy.release()

	c.render.RenderReady(ActionCase, false)
	defer c.render.RenderReady(ActionCase, true)

	var res *domain.CaseResult
	err = withAnimation(ctx, c.animation, func() error {
		var err error
		res, err = c.api.OpenCase(ctx, c.session.ID(), caseType)
		return err
	})
	if err != nil {
		var rej *RejectionError
		if cs.IsFree() && errors.As(err, &rej) {
			// the server knows a cooldown this client missed
			c.requestRecheck()
		}
		return nil, notifyErr(c.render, err)
	}

	c.session.ApplyBalance(res.NewBalance)
	c.render.RenderBalance(c.session.Snapshot())
	c.render.RenderCaseResult(res)

	if cs.IsFree() {
		c.setFreeStatus(nil)
		c.requestRecheck()
	}
	return res, nil
}

// FreeStatus returns the last known free case status, or nil before the first check
func (c *CaseClient) FreeStatus() *domain.FreeCaseStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.freeStatus == nil {
		return nil
	}
	status := *c.freeStatus
	return &status
}

func (c *CaseClient) setFreeStatus(status *domain.FreeCaseStatus) {
	c.mu.Lock()
	c.freeStatus = status
	c.mu.Unlock()
}

func (c *CaseClient) requestRecheck() {
	select {
	case c.recheck <- struct{}{}:
	default:
	}
}

// WatchFreeCase keeps the free case timer on screen until ctx is cancelled.
// A locked case counts down once per tick and the server is asked again when
// the countdown reaches zero.
func (c *CaseClient) WatchFreeCase(ctx context.Context) {
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		status, err := c.api.FreeCaseStatus(ctx, c.session.ID())
		if err != nil {
			logger.FromContext(ctx).Debug(LogMsgFreeCaseCheck, "error", err)
			if !c.wait(ctx, ticker.C) {
				return
			}
			continue
		}
		c.setFreeStatus(status)

		if status.Available {
			c.render.RenderFreeCase(true, "")
			select {
			case <-ctx.Done():
				return
			case <-c.recheck:
			}
			continue
		}

		remaining := status.RemainingSeconds
		c.render.RenderFreeCase(false, FormatCountdown(remaining))
		if remaining <= 0 && !c.wait(ctx, ticker.C) {
			return
		}
		for remaining > 0 {
			if !c.wait(ctx, ticker.C) {
				return
			}
			remaining--
			c.setFreeStatus(&domain.FreeCaseStatus{Available: false, RemainingSeconds: remaining})
			c.render.RenderFreeCase(false, FormatCountdown(remaining))
		}
	}
}

// wait blocks for one tick
func (c *CaseClient) wait(ctx context.Context, tick <-chan time.Time) bool {
	select {
	case <-ctx.Done():
		return false
	case <-tick:
		return true
	}
}
