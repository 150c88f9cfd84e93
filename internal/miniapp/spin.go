package miniapp

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/osse101/giftroll/internal/domain"
)

// SpinAPI is the part of the backend the gift upgrade uses
type SpinAPI interface {
	Spin(ctx context.Context, telegramID int64, stake, multiplier decimal.Decimal) (*domain.SpinResult, error)
}

// SpinClient plays the gift upgrade wheel
type SpinClient struct {
	api       SpinAPI
	session   *Session
	render    Renderer
	animation time.Duration
	busy      busyFlag
}

// NewSpinClient creates a spin client. A negative animation uses SpinAnimation.
func NewSpinClient(api SpinAPI, session *Session, render Renderer, animation time.Duration) *SpinClient {
	if animation < 0 {
		animation = SpinAnimation
	}
	if render == nil {
		render = NopRenderer{}
	}
	return &SpinClient{api: api, session: session, render: render, animation: animation}
}

// Spin validates locally, then runs the request and the wheel animation side
// by side. The controls come back when the animation ends, whatever the request did.
func (c *SpinClient) Spin(ctx context.Context, stake, multiplier decimal.Decimal) (*domain.SpinResult, error) {
	if stake.Sign() <= 0 {
		return nil, notifyErr(c.render, invalid(MsgInvalidAmount))
	}
	if stake.GreaterThan(c.session.Balance()) {
		return nil, notifyErr(c.render, invalid(MsgInsufficientBalance))
	}
	if multiplier.LessThan(domain.MinUpgradeMultiplier) || multiplier.GreaterThan(domain.MaxUpgradeMultiplier) {
		return nil, notifyErr(c.render, invalid(MsgInvalidMultiplier))
	}

	if !c.busy.acquire() {
		return nil, notifyErr(c.render, ErrBusy)
	}
	defer c.busy.release()

	c.render.RenderReady(ActionSpin, false)
	defer c.render.RenderReady(ActionSpin, true)

	var res *domain.SpinResult
	err := withAnimation(ctx, c.animation, func() error {
		var err error
		res, err = c.api.Spin(ctx, c.session.ID(), stake, multiplier)
		return err
	})
	if err != nil {
		return nil, notifyErr(c.render, err)
	}

	c.session.ApplyBalance(res.NewBalance)
	c.render.RenderBalance(c.session.Snapshot())
	c.render.RenderSpinResult(res)
	return res, nil
}

// Busy reports whether a spin is running
func (c *SpinClient) Busy() bool {
	return c.busy.busy()
}

// withAnimation runs call next to an animation timer and returns once both are
// done. A failed call does not cut the animation short.
func withAnimation(ctx context.Context, animation time.Duration, call func() error) error {
	var g errgroup.Group
	g.Go(call)
	g.Go(func() error {
		timer := time.NewTimer(animation)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
		}
		return nil
	})
	return g.Wait()
}
