package rolls

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/event"
	"github.com/osse101/giftroll/internal/testing/memrepo"
)

const (
	alice int64 = 1001
	bob   int64 = 1002
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	svc   *service
	store *memrepo.Store
	bus   *event.MemoryBus
	clock *clock
	chip  int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store: memrepo.New(),
		bus:   event.NewMemoryBus(),
		clock: &clock{now: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)},
	}
	f.store.AddUser(domain.User{TelegramID: alice, FirstName: "Alice", Balance: dec("10")})
	f.store.AddUser(domain.User{TelegramID: bob, FirstName: "Bob", Balance: dec("5")})
	f.svc = newService(f.store, f.bus, Config{RoundDuration: 10 * time.Second, BetCutoff: time.Second},
		f.clock.Now, func(n int) (int, error) { return f.chip, nil })
	return f
}

func (f *fixture) balance(t *testing.T, id int64) decimal.Decimal {
	t.Helper()
	u, ok := f.store.User(id)
	require.True(t, ok)
	return u.Balance
}

func TestPlaceBet_DebitsImmediately(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.PlaceBet(context.Background(), alice, domain.ColorRed, dec("2.5"))
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "7.5", resp.NewBalance.String())
	assert.Equal(t, int64(1), resp.Round)
	assert.Equal(t, domain.RollsBet{Color: domain.ColorRed, Amount: dec("2.5")}, resp.Bet)
	assert.Equal(t, "7.5", f.balance(t, alice).String())
}

func TestPlaceBet_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		user    int64
		color   domain.Color
		amount  string
		prepare func(f *fixture)
		wantErr error
	}{
		{name: "bad color", user: alice, color: "purple", amount: "1", wantErr: domain.ErrInvalidColor},
		{name: "zero amount", user: alice, color: domain.ColorRed, amount: "0", wantErr: domain.ErrInvalidAmount},
		{name: "negative amount", user: alice, color: domain.ColorRed, amount: "-1", wantErr: domain.ErrInvalidAmount},
		{name: "rounds to zero", user: alice, color: domain.ColorRed, amount: "0.00001", wantErr: domain.ErrInvalidAmount},
		{name: "over balance", user: bob, color: domain.ColorBlue, amount: "5.0001", wantErr: domain.ErrInsufficientBalance},
		{name: "unknown user", user: 42, color: domain.ColorBlue, amount: "1", wantErr: domain.ErrUserNotFound},
		{
			name: "second bet", user: alice, color: domain.ColorBlue, amount: "1",
			prepare: func(f *fixture) {
				_, err := f.svc.PlaceBet(context.Background(), alice, domain.ColorRed, dec("1"))
				require.NoError(t, err)
			},
			wantErr: domain.ErrBetAlreadyPlaced,
		},
		{
			name: "inside cutoff", user: alice, color: domain.ColorGreen, amount: "1",
			prepare: func(f *fixture) { f.clock.Advance(9500 * time.Millisecond) },
			wantErr: domain.ErrBettingClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.prepare != nil {
				tt.prepare(f)
			}
			before, _ := f.store.User(tt.user)

			_, err := f.svc.PlaceBet(context.Background(), tt.user, tt.color, dec(tt.amount))
			assert.ErrorIs(t, err, tt.wantErr)

			after, _ := f.store.User(tt.user)
			assert.True(t, before.Balance.Equal(after.Balance), "balance must not move on rejection")
		})
	}
}

func TestPlaceBet_ExactlyAtCutoffIsOpen(t *testing.T) {
	f := newFixture(t)
	f.clock.Advance(9 * time.Second)

	_, err := f.svc.PlaceBet(context.Background(), alice, domain.ColorRed, dec("1"))
	assert.NoError(t, err)
}

func TestSettle_PaysWinners(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.chip = 98 // green

	_, err := f.svc.PlaceBet(ctx, alice, domain.ColorGreen, dec("1.23456"))
	require.NoError(t, err)
	_, err = f.svc.PlaceBet(ctx, bob, domain.ColorRed, dec("2"))
	require.NoError(t, err)

	settled, err := f.svc.Settle(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), settled.Round)
	assert.Equal(t, domain.ColorGreen, settled.Result)

	// 1.2346 staked, 12.346 back
	assert.Equal(t, "21.1114", f.balance(t, alice).StringFixed(4))
	assert.Equal(t, "3", f.balance(t, bob).String())

	win := settled.Payouts[alice]
	assert.True(t, win.Won)
	assert.Equal(t, "12.346", win.Amount.String())
	assert.Equal(t, "10", win.Mult.String())

	loss := settled.Payouts[bob]
	assert.False(t, loss.Won)
	assert.True(t, loss.Amount.IsZero())

	games := f.store.Games()
	require.Len(t, games, 2)
	for _, g := range games {
		assert.Equal(t, domain.GameTypeRolls, g.GameType)
		switch g.UserID {
		case alice:
			assert.Equal(t, "11.1114", g.Result.String())
			assert.Equal(t, "10", g.Multiplier.String())
		case bob:
			assert.Equal(t, "-2", g.Result.String())
			assert.True(t, g.Multiplier.IsZero())
		}
	}

	u, _ := f.store.User(alice)
	assert.Equal(t, 1, u.GamesPlayed)
	assert.Equal(t, 1, f.store.Rounds())
}

func TestSettle_UpdatesSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.PlaceBet(ctx, alice, domain.ColorBlue, dec("1"))
	require.NoError(t, err)

	f.chip = 50
	f.clock.Advance(10 * time.Second)
	_, err = f.svc.Settle(ctx)
	require.NoError(t, err)

	f.chip = 0
	f.clock.Advance(10 * time.Second)
	_, err = f.svc.Settle(ctx)
	require.NoError(t, err)

	f.clock.Advance(2500 * time.Millisecond)
	snap := f.svc.State(ctx)

	assert.Equal(t, int64(2), snap.Round)
	assert.Equal(t, domain.ColorRed, snap.LastResult)
	assert.Equal(t, []domain.Color{domain.ColorRed, domain.ColorBlue}, snap.History)
	assert.Equal(t, 1, snap.RedCount)
	assert.Equal(t, 1, snap.BlueCount)
	assert.Equal(t, 0, snap.GreenCount)
	assert.Equal(t, 7.5, snap.Countdown)
	// the second round had no bets
	assert.Empty(t, snap.LastPayouts)

	// bets reopen after settlement
	_, err = f.svc.PlaceBet(ctx, alice, domain.ColorRed, dec("1"))
	assert.NoError(t, err)
}

func TestSettle_PayoutsKeyedByTelegramID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.PlaceBet(ctx, alice, domain.ColorRed, dec("1"))
	require.NoError(t, err)
	_, err = f.svc.Settle(ctx)
	require.NoError(t, err)

	snap := f.svc.State(ctx)
	require.Contains(t, snap.LastPayouts, "1001")
	assert.True(t, snap.LastPayouts["1001"].Won)
	assert.Equal(t, "2", snap.LastPayouts["1001"].Amount.String())
}

func TestState_HistoryCaps(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < domain.RollsHistoryCap+5; i++ {
		_, err := f.svc.Settle(ctx)
		require.NoError(t, err)
	}

	assert.Len(t, f.svc.history, domain.RollsHistoryCap)
	snap := f.svc.State(ctx)
	assert.Len(t, snap.History, domain.RollsSnapshotHistory)
	assert.Equal(t, domain.RollsSnapshotHistory, snap.RedCount+snap.BlueCount+snap.GreenCount)
	assert.Equal(t, int64(domain.RollsHistoryCap+5), snap.Round)
}

func TestState_CountdownNeverNegative(t *testing.T) {
	f := newFixture(t)
	f.clock.Advance(time.Minute)
	assert.Equal(t, 0.0, f.svc.State(context.Background()).Countdown)
}

func TestSettle_FailureKeepsRoundOpen(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.PlaceBet(ctx, alice, domain.ColorRed, dec("1"))
	require.NoError(t, err)

	f.store.CommitErr = errors.New("connection reset")
	_, err = f.svc.Settle(ctx)
	require.Error(t, err)
	assert.Equal(t, int64(0), f.svc.State(ctx).Round)
	assert.Equal(t, "9", f.balance(t, alice).String())

	f.store.CommitErr = nil
	settled, err := f.svc.Settle(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), settled.Round)
	assert.Contains(t, settled.Payouts, alice)
	assert.Equal(t, "11", f.balance(t, alice).String())
}

func TestSettle_SkipsDeletedBettor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.svc.bets[777] = domain.RollsBet{Color: domain.ColorRed, Amount: dec("1")}
	settled, err := f.svc.Settle(ctx)
	require.NoError(t, err)
	assert.NotContains(t, settled.Payouts, int64(777))
}

func TestSettle_PublishesEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got := make(chan event.Event, 1)
	f.bus.Subscribe(event.RoundSettled, func(ctx context.Context, evt event.Event) error {
		got <- evt
		return nil
	})

	_, err := f.svc.Settle(ctx)
	require.NoError(t, err)

	select {
	case evt := <-got:
		payload, err := event.DecodePayload[event.RoundSettledPayloadV1](evt.Payload)
		require.NoError(t, err)
		assert.Equal(t, int64(1), payload.Round)
		assert.Equal(t, domain.ColorRed, payload.Result)
	case <-time.After(time.Second):
		t.Fatal("no rolls.settled event")
	}
}

func TestRestore_LoadsHistory(t *testing.T) {
	f := newFixture(t)
	f.store.AddRound(7, domain.ColorBlue)
	f.store.AddRound(8, domain.ColorGreen)

	require.NoError(t, f.svc.Restore(context.Background()))

	snap := f.svc.State(context.Background())
	assert.Equal(t, int64(8), snap.Round)
	assert.Equal(t, domain.ColorGreen, snap.LastResult)
	assert.Equal(t, []domain.Color{domain.ColorGreen, domain.ColorBlue}, snap.History)
	assert.Equal(t, 10.0, snap.Countdown)

	settled, err := f.svc.Settle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9), settled.Round)
}

func TestPlaceBet_ConcurrentSingleBetPerUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.svc.PlaceBet(ctx, alice, domain.ColorRed, dec("1")); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.Equal(t, "9", f.balance(t, alice).String())
}
