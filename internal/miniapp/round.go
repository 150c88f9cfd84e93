package miniapp

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/logger"
)

// settledWindow is how many round sequences the dedup set remembers
const settledWindow = 64

// RoundAPI is the part of the backend the rolls table uses
type RoundAPI interface {
	RollsState(ctx context.Context) (*domain.RoundSnapshot, error)
	PlaceBet(ctx context.Context, telegramID int64, color domain.Color, amount decimal.Decimal) (*domain.RollsBetResponse, error)
	Balance(ctx context.Context, telegramID int64) (*domain.BalanceView, error)
}

// RoundClient polls the rolls table and places the local player's bets
type RoundClient struct {
	api      RoundAPI
	session  *Session
	render   Renderer
	interval time.Duration

	pollMu sync.Mutex

	mu           sync.Mutex
	lastRound    int64
	lastResult   domain.Color
	countdown    float64
	hasCountdown bool
	strip        []domain.Color
	localBet     *domain.RollsBet
	settled      map[int64]struct{}
	settledValue string

	betInFlight busyFlag

	runMu  sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	gen    uint64
}

// NewRoundClient creates a client. A non-positive interval uses DefaultPollInterval.
func NewRoundClient(api RoundAPI, session *Session, render Renderer, interval time.Duration) *RoundClient {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if render == nil {
		render = NopRenderer{}
	}
	return &RoundClient{
		api:      api,
		session:  session,
		render:   render,
		interval: interval,
		settled:  make(map[int64]struct{}),
	}
}

// Start begins polling. Calling it while already running does nothing. When
// ctx is cancelled the loop ends and a later Start polls again.
func (c *RoundClient) Start(ctx context.Context) {
	c.runMu.Lock()
	defer c.runMu.Unlock()

	if c.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	c.gen++
	c.cancel = cancel
	c.done = make(chan struct{})
	go c.loop(ctx, c.gen, c.done)

	logger.FromContext(ctx).Debug(LogMsgPollStarted, "interval", c.interval)
}

// Stop cancels polling and waits for the poll goroutine to exit
func (c *RoundClient) Stop() {
	c.runMu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.runMu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done

	logger.Debug(LogMsgPollStopped)
}

// Running reports whether the poll loop is active
func (c *RoundClient) Running() bool {
	c.runMu.Lock()
	defer c.runMu.Unlock()
	return c.cancel != nil
}

func (c *RoundClient) loop(ctx context.Context, gen uint64, done chan struct{}) {
	defer close(done)
	defer c.exited(gen)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.Poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Poll(ctx)
		}
	}
}

// exited clears the run state when the loop of generation gen ends on its own.
// After a Stop or a newer Start the state belongs to someone else.
func (c *RoundClient) exited(gen uint64) {
	c.runMu.Lock()
	defer c.runMu.Unlock()
	if c.gen != gen || c.cancel == nil {
		return
	}
	c.cancel()
	c.cancel, c.done = nil, nil
}

// Poll fetches one snapshot and renders it. Failures skip the tick.
func (c *RoundClient) Poll(ctx context.Context) {
	c.pollMu.Lock()
	defer c.pollMu.Unlock()

	snap, err := c.api.RollsState(ctx)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgPollSkipped, "error", err)
		return
	}

	c.render.RenderCountdown(snap.Countdown)

	rolled := c.observeCountdown(snap.Countdown)
	if chips, changed := c.recordOutcome(snap, rolled); changed {
		c.render.RenderStrip(chips)
	}

	history := snap.History
	if len(history) > HistoryLimit {
		history = history[:HistoryLimit]
	}
	c.render.RenderHistory(append([]domain.Color(nil), history...), snap.RedCount, snap.BlueCount, snap.GreenCount)

	c.applySettlement(ctx, snap, rolled)

	c.render.RenderBetControls(snap.Countdown >= 1)
}

// observeCountdown reports whether the countdown went up since the last poll,
// which only happens when a round was settled and the next one opened.
func (c *RoundClient) observeCountdown(countdown float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	rolled := c.hasCountdown && countdown > c.countdown
	c.countdown, c.hasCountdown = countdown, true
	return rolled
}

// recordOutcome pushes a new settled outcome onto the strip. The round sequence
// decides novelty when present. Without it a changed outcome or a countdown
// rollover does.
func (c *RoundClient) recordOutcome(snap *domain.RoundSnapshot, rolled bool) ([]domain.Color, bool) {
	if snap.LastResult == "" {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if snap.Round > 0 {
		if snap.Round == c.lastRound {
			return nil, false
		}
	} else if snap.LastResult == c.lastResult && !rolled {
		return nil, false
	}

	c.lastRound = snap.Round
	c.lastResult = snap.LastResult

	c.strip = append([]domain.Color{snap.LastResult}, c.strip...)
	if len(c.strip) > StripSize {
		c.strip = c.strip[:StripSize]
	}
	return append([]domain.Color(nil), c.strip...), true
}

func (c *RoundClient) applySettlement(ctx context.Context, snap *domain.RoundSnapshot, rolled bool) {
	id := c.session.ID()
	payout, ok := snap.LastPayouts[strconv.FormatInt(id, 10)]
	if !ok || !c.markSettled(snap, payout, rolled) {
		return
	}

	logger.FromContext(ctx).Debug(LogMsgSettlementFound, "round", snap.Round, "won", payout.Won)

	c.render.Notify(FormatPayout(payout))
	c.render.RenderActiveBet(nil)

	balance, err := c.api.Balance(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgBalanceRefresh, "error", err)
		return
	}
	c.session.ApplyBalance(balance.Balance, balance.RefBalance)
	c.render.RenderBalance(c.session.Snapshot())
}

// markSettled records the settlement and clears the local bet. It returns
// false when this settlement was already applied. Without a round sequence two
// identical payouts in a row are told apart by the countdown rollover.
func (c *RoundClient) markSettled(snap *domain.RoundSnapshot, payout domain.Payout, rolled bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if snap.Round > 0 {
		if _, seen := c.settled[snap.Round]; seen {
			return false
		}
		c.settled[snap.Round] = struct{}{}
		for r := range c.settled {
			if r <= snap.Round-settledWindow {
				delete(c.settled, r)
			}
		}
	} else {
		key := fmt.Sprintf("%s|%t|%s|%s", snap.LastResult, payout.Won, payout.Amount, payout.Mult)
		if key == c.settledValue && !rolled {
			return false
		}
		c.settledValue = key
	}

	c.localBet = nil
	return true
}

// PlaceBet validates locally and sends the bet. The balance shown afterwards is
// the one the backend returns.
func (c *RoundClient) PlaceBet(ctx context.Context, color domain.Color, amount decimal.Decimal) (*domain.RollsBetResponse, error) {
	if !color.Valid() {
		return nil, notifyErr(c.render, invalid(MsgInvalidColor))
	}
	if amount.Sign() <= 0 {
		return nil, notifyErr(c.render, invalid(MsgInvalidAmount))
	}
	if amount.GreaterThan(c.session.Balance()) {
		return nil, notifyErr(c.render, invalid(MsgInsufficientBalance))
	}

	if !c.reserveBet() {
		return nil, notifyErr(c.render, invalid(MsgBetAlreadyPlaced))
	}
	defer c.betInFlight.release()

	res, err := c.api.PlaceBet(ctx, c.session.ID(), color, amount)
	if err != nil {
		return nil, notifyErr(c.render, err)
	}

	bet := domain.RollsBet{Color: color, Amount: amount}
	c.mu.Lock()
	c.localBet = &bet
	c.mu.Unlock()

	c.session.ApplyBalance(res.NewBalance)
	c.render.RenderBalance(c.session.Snapshot())
	c.render.RenderActiveBet(&bet)
	return res, nil
}

func (c *RoundClient) reserveBet() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.localBet != nil {
		return false
	}
	return c.betInFlight.acquire()
}

// LocalBet returns the pending bet, or nil
func (c *RoundClient) LocalBet() *domain.RollsBet {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.localBet == nil {
		return nil
	}
	bet := *c.localBet
	return &bet
}

// Strip returns the visible chip strip, newest first
func (c *RoundClient) Strip() []domain.Color {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Color(nil), c.strip...)
}
