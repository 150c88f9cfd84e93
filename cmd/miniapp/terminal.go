package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/giftroll/internal/domain"
	"github.com/osse101/giftroll/internal/miniapp"
)

// terminal renders client state as lines of text. Polled views only print when
// they change so the prompt stays readable.
type terminal struct {
	mu sync.Mutex
	w  io.Writer
	p  *message.Printer

	lastSecond   int
	betsOpen     *bool
	lastCounts   [3]int
	freeCase     string
	freeCaseOpen *bool
}

func newTerminal(w io.Writer) *terminal {
	return &terminal{w: w, p: message.NewPrinter(language.English), lastSecond: -1}
}

func (t *terminal) println(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.p.Fprintf(t.w, format+"\n", args...)
}

func (t *terminal) RenderBalance(state miniapp.UserState) {
	suffix := ""
	if state.Offline {
		suffix = " (offline)"
	}
	t.println("💎 %s TON | referral %s TON%s", miniapp.FormatBalance(state.Balance), miniapp.FormatBalance(state.RefBalance), suffix)
}

func (t *terminal) RenderCountdown(seconds float64) {
	whole := int(math.Ceil(seconds))
	t.mu.Lock()
	changed := whole != t.lastSecond && whole%5 == 0
	t.lastSecond = whole
	t.mu.Unlock()
	if changed {
		t.println("⏱  next roll in %ds", whole)
	}
}

func (t *terminal) RenderStrip(chips []domain.Color) {
	var b strings.Builder
	for _, c := range chips {
		b.WriteString(chipGlyph(c))
	}
	t.println("🎲 %s", b.String())
}

func (t *terminal) RenderHistory(history []domain.Color, red, blue, green int) {
	counts := [3]int{red, blue, green}
	t.mu.Lock()
	changed := counts != t.lastCounts
	t.lastCounts = counts
	t.mu.Unlock()
	if changed {
		t.println("   last %d: 🔴 %d  🔵 %d  🟢 %d", len(history), red, blue, green)
	}
}

func (t *terminal) RenderBetControls(enabled bool) {
	t.mu.Lock()
	changed := t.betsOpen == nil || *t.betsOpen != enabled
	t.betsOpen = &enabled
	t.mu.Unlock()
	if !changed {
		return
	}
	if enabled {
		t.println("   bets open")
	} else {
		t.println("   bets closed")
	}
}

func (t *terminal) RenderActiveBet(bet *domain.RollsBet) {
	if bet == nil {
		return
	}
	t.println("   your bet: %s TON on %s", miniapp.FormatBalance(bet.Amount), bet.Color)
}

func (t *terminal) RenderSpinResult(res *domain.SpinResult) {
	if res.Won {
		t.println("🎁 upgrade x%s won: +%s TON", res.Multiplier, miniapp.FormatBalance(res.Result))
		return
	}
	t.println("🎁 upgrade x%s lost", res.Multiplier)
}

func (t *terminal) RenderCaseResult(res *domain.CaseResult) {
	switch res.Reward.Kind {
	case domain.RewardNFT:
		t.println("📦 %s added to your inventory (sells for %s TON)", res.Reward.Name, miniapp.FormatBalance(res.Reward.Value))
	case domain.RewardNothing:
		t.println("📦 empty this time")
	default:
		t.println("📦 %s", res.Reward.Name)
	}
}

func (t *terminal) RenderFreeCase(available bool, countdown string) {
	t.mu.Lock()
	t.freeCase = countdown
	changed := t.freeCaseOpen == nil || *t.freeCaseOpen != available
	t.freeCaseOpen = &available
	t.mu.Unlock()
	if changed && available {
		t.println("🆓 free case is ready")
	}
}

func (t *terminal) RenderReady(action string, ready bool) {
	if !ready {
		t.println("   %s...", action)
	}
}

func (t *terminal) Notify(msg string) {
	if msg != "" {
		t.println("» %s", msg)
	}
}

// freeCaseCountdown returns the last rendered free case countdown, empty when ready
func (t *terminal) freeCaseCountdown() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.freeCase
}

func chipGlyph(c domain.Color) string {
	switch c {
	case domain.ColorRed:
		return "🔴"
	case domain.ColorBlue:
		return "🔵"
	case domain.ColorGreen:
		return "🟢"
	}
	return "⚪"
}
