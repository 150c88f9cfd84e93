package miniapp

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/giftroll/internal/domain"
)

// Action names passed to RenderReady
const (
	ActionSpin = "spin"
	ActionCase = "case"
)

// Renderer draws client state. Implementations receive copies and must not block.
type Renderer interface {
	RenderBalance(state UserState)
	RenderCountdown(seconds float64)
	RenderStrip(chips []domain.Color)
	RenderHistory(history []domain.Color, red, blue, green int)
	RenderBetControls(enabled bool)
	RenderActiveBet(bet *domain.RollsBet)
	RenderSpinResult(res *domain.SpinResult)
	RenderCaseResult(res *domain.CaseResult)
	RenderFreeCase(available bool, countdown string)
	RenderReady(action string, ready bool)
	Notify(msg string)
}

// NopRenderer ignores every call
type NopRenderer struct{}

func (NopRenderer) RenderBalance(UserState)                     {}
func (NopRenderer) RenderCountdown(float64)                     {}
func (NopRenderer) RenderStrip([]domain.Color)                  {}
func (NopRenderer) RenderHistory([]domain.Color, int, int, int) {}
func (NopRenderer) RenderBetControls(bool)                      {}
func (NopRenderer) RenderActiveBet(*domain.RollsBet)            {}
func (NopRenderer) RenderSpinResult(*domain.SpinResult)         {}
func (NopRenderer) RenderCaseResult(*domain.CaseResult)         {}
func (NopRenderer) RenderFreeCase(bool, string)                 {}
func (NopRenderer) RenderReady(string, bool)                    {}
func (NopRenderer) Notify(string)                               {}

// FormatBalance renders a balance with 4 decimals
func FormatBalance(d decimal.Decimal) string {
	return domain.FormatBalance(d)
}

// FormatDepositInput renders a deposit amount with 2 decimals
func FormatDepositInput(d decimal.Decimal) string {
	return domain.FormatDepositInput(d)
}

// FormatCountdown renders seconds as h:mm:ss
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds/60%60, seconds%60)
}

// FormatPayout is the notification for a settled bet
func FormatPayout(p domain.Payout) string {
	if !p.Won {
		return MsgLost
	}
	return fmt.Sprintf(MsgWonFmt, FormatBalance(p.Amount), p.Mult.String())
}

// notifyErr shows the user message for err and returns err unchanged
func notifyErr(r Renderer, err error) error {
	r.Notify(UserMessage(err))
	return err
}
