package miniapp

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
)

var errUnreachable = &TransportError{Op: "GET /api/rolls/state", Err: errors.New("connection refused")}

// fakeBackend implements every client-side API interface. Unset funcs fail the call.
type fakeBackend struct {
	mu    sync.Mutex
	calls map[string]int

	stateFn    func() (*domain.RoundSnapshot, error)
	betFn      func(color domain.Color, amount decimal.Decimal) (*domain.RollsBetResponse, error)
	balanceFn  func() (*domain.BalanceView, error)
	spinFn     func(stake, mult decimal.Decimal) (*domain.SpinResult, error)
	casesFn    func() ([]domain.Case, error)
	accessFn   func() (*domain.CaseAccess, error)
	openFn     func(caseType domain.CaseType) (*domain.CaseResult, error)
	freeFn     func() (*domain.FreeCaseStatus, error)
	starsFn    func(stars int64) (*domain.DepositResult, error)
	tonFn      func(amount decimal.Decimal) (*domain.TONInvoice, error)
	confirmFn  func(memo string) (*domain.DepositResult, error)
	withdrawFn func(amount decimal.Decimal, wallet string) (*domain.WithdrawResult, error)
	refFn      func() (*domain.ReferralSummary, error)
	refWdFn    func() (*domain.ReferralWithdrawResult, error)
	sellFn     func(itemID int64) (*domain.SellResult, error)
	giftFn     func(itemID int64) (*domain.GiftWithdrawal, error)
}

var errNotStubbed = errors.New("not stubbed")

func (f *fakeBackend) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[name]++
}

func (f *fakeBackend) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeBackend) Init(ctx context.Context, req domain.InitRequest) (*domain.User, error) {
	f.record("Init")
	return nil, errNotStubbed
}

func (f *fakeBackend) RollsState(ctx context.Context) (*domain.RoundSnapshot, error) {
	f.record("RollsState")
	if f.stateFn == nil {
		return nil, errNotStubbed
	}
	return f.stateFn()
}

func (f *fakeBackend) PlaceBet(ctx context.Context, telegramID int64, color domain.Color, amount decimal.Decimal) (*domain.RollsBetResponse, error) {
	f.record("PlaceBet")
	if f.betFn == nil {
		return nil, errNotStubbed
	}
	return f.betFn(color, amount)
}

func (f *fakeBackend) Balance(ctx context.Context, telegramID int64) (*domain.BalanceView, error) {
	f.record("Balance")
	if f.balanceFn == nil {
		return nil, errNotStubbed
	}
	return f.balanceFn()
}

func (f *fakeBackend) Spin(ctx context.Context, telegramID int64, stake, multiplier decimal.Decimal) (*domain.SpinResult, error) {
	f.record("Spin")
	if f.spinFn == nil {
		return nil, errNotStubbed
	}
	return f.spinFn(stake, multiplier)
}

func (f *fakeBackend) Cases(ctx context.Context) ([]domain.Case, error) {
	f.record("Cases")
	if f.casesFn == nil {
		return nil, errNotStubbed
	}
	return f.casesFn()
}

func (f *fakeBackend) CheckAccess(ctx context.Context, telegramID int64) (*domain.CaseAccess, error) {
	f.record("CheckAccess")
	if f.accessFn == nil {
		return nil, errNotStubbed
	}
	return f.accessFn()
}

func (f *fakeBackend) OpenCase(ctx context.Context, telegramID int64, caseType domain.CaseType) (*domain.CaseResult, error) {
	f.record("OpenCase")
	if f.openFn == nil {
		return nil, errNotStubbed
	}
	return f.openFn(caseType)
}

func (f *fakeBackend) FreeCaseStatus(ctx context.Context, telegramID int64) (*domain.FreeCaseStatus, error) {
	f.record("FreeCaseStatus")
	if f.freeFn == nil {
		return nil, errNotStubbed
	}
	return f.freeFn()
}

func (f *fakeBackend) DepositStars(ctx context.Context, telegramID, stars int64) (*domain.DepositResult, error) {
	f.record("DepositStars")
	if f.starsFn == nil {
		return nil, errNotStubbed
	}
	return f.starsFn(stars)
}

func (f *fakeBackend) DepositTON(ctx context.Context, telegramID int64, amount decimal.Decimal) (*domain.TONInvoice, error) {
	f.record("DepositTON")
	if f.tonFn == nil {
		return nil, errNotStubbed
	}
	return f.tonFn(amount)
}

func (f *fakeBackend) ConfirmDeposit(ctx context.Context, telegramID int64, memo string) (*domain.DepositResult, error) {
	f.record("ConfirmDeposit")
	if f.confirmFn == nil {
		return nil, errNotStubbed
	}
	return f.confirmFn(memo)
}

func (f *fakeBackend) Withdraw(ctx context.Context, telegramID int64, amount decimal.Decimal, wallet string) (*domain.WithdrawResult, error) {
	f.record("Withdraw")
	if f.withdrawFn == nil {
		return nil, errNotStubbed
	}
	return f.withdrawFn(amount, wallet)
}

func (f *fakeBackend) Withdrawals(ctx context.Context, telegramID int64) ([]domain.WithdrawalView, error) {
	f.record("Withdrawals")
	return []domain.WithdrawalView{}, nil
}

func (f *fakeBackend) Referrals(ctx context.Context, telegramID int64) (*domain.ReferralSummary, error) {
	f.record("Referrals")
	if f.refFn == nil {
		return nil, errNotStubbed
	}
	return f.refFn()
}

func (f *fakeBackend) WithdrawReferral(ctx context.Context, telegramID int64) (*domain.ReferralWithdrawResult, error) {
	f.record("WithdrawReferral")
	if f.refWdFn == nil {
		return nil, errNotStubbed
	}
	return f.refWdFn()
}

func (f *fakeBackend) Inventory(ctx context.Context, telegramID int64) ([]domain.InventoryItem, error) {
	f.record("Inventory")
	return []domain.InventoryItem{}, nil
}

func (f *fakeBackend) SellGift(ctx context.Context, telegramID, itemID int64) (*domain.SellResult, error) {
	f.record("SellGift")
	if f.sellFn == nil {
		return nil, errNotStubbed
	}
	return f.sellFn(itemID)
}

func (f *fakeBackend) WithdrawGift(ctx context.Context, telegramID, itemID int64) (*domain.GiftWithdrawal, error) {
	f.record("WithdrawGift")
	if f.giftFn == nil {
		return nil, errNotStubbed
	}
	return f.giftFn(itemID)
}

func (f *fakeBackend) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	f.record("Leaderboard")
	return []domain.LeaderboardEntry{}, nil
}

func (f *fakeBackend) History(ctx context.Context, telegramID int64) ([]domain.GameHistory, error) {
	f.record("History")
	return []domain.GameHistory{}, nil
}

type historyRender struct {
	history []domain.Color
	red     int
	blue    int
	green   int
}

// recordingRenderer keeps every render call in order
type recordingRenderer struct {
	mu         sync.Mutex
	balances   []UserState
	countdowns []float64
	strips     [][]domain.Color
	histories  []historyRender
	controls   []bool
	activeBets []*domain.RollsBet
	spins      []*domain.SpinResult
	cases      []*domain.CaseResult
	freeCase   []string
	ready      []bool
	notices    []string
	events     []string
}

func (r *recordingRenderer) log(event string) {
	r.events = append(r.events, event)
}

func (r *recordingRenderer) RenderBalance(state UserState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances = append(r.balances, state)
	r.log("balance")
}

func (r *recordingRenderer) RenderCountdown(seconds float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.countdowns = append(r.countdowns, seconds)
	r.log("countdown")
}

func (r *recordingRenderer) RenderStrip(chips []domain.Color) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.strips = append(r.strips, chips)
	r.log("strip")
}

func (r *recordingRenderer) RenderHistory(history []domain.Color, red, blue, green int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.histories = append(r.histories, historyRender{history: history, red: red, blue: blue, green: green})
	r.log("history")
}

func (r *recordingRenderer) RenderBetControls(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.controls = append(r.controls, enabled)
	r.log("controls")
}

func (r *recordingRenderer) RenderActiveBet(bet *domain.RollsBet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activeBets = append(r.activeBets, bet)
	r.log("active_bet")
}

func (r *recordingRenderer) RenderSpinResult(res *domain.SpinResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spins = append(r.spins, res)
	r.log("spin")
}

func (r *recordingRenderer) RenderCaseResult(res *domain.CaseResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cases = append(r.cases, res)
	r.log("case")
}

func (r *recordingRenderer) RenderFreeCase(available bool, countdown string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if available {
		countdown = "available"
	}
	r.freeCase = append(r.freeCase, countdown)
	r.log("free_case")
}

func (r *recordingRenderer) RenderReady(action string, ready bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ready = append(r.ready, ready)
	r.log("ready")
}

func (r *recordingRenderer) Notify(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, msg)
	r.log("notify")
}

func (r *recordingRenderer) Notices() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.notices...)
}

func (r *recordingRenderer) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func (r *recordingRenderer) FreeCase() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.freeCase...)
}

func testSession(balance string) *Session {
	return NewSession(UserState{
		TelegramID:     42,
		DisplayName:    "Alice",
		Balance:        decimal.RequireFromString(balance),
		TotalDeposited: decimal.NewFromInt(10),
		RefBalance:     decimal.RequireFromString("0.5"),
		RefPercent:     10,
	})
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
