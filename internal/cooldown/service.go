package cooldown

import (
	"context"
	"fmt"
	"time"
)

// Service tracks per-player action cooldowns keyed by Telegram id
type Service interface {
	// CheckCooldown reports whether the action is on cooldown and for how long
	CheckCooldown(ctx context.Context, telegramID int64, action string) (bool, time.Duration, error)

	// EnforceCooldown runs fn only when the action is off cooldown, then starts a new cooldown.
	// A failing fn leaves the cooldown untouched.
	EnforceCooldown(ctx context.Context, telegramID int64, action string, fn func() error) error

	ResetCooldown(ctx context.Context, telegramID int64, action string) error

	// GetLastUsed returns when the action was last performed, or nil
	GetLastUsed(ctx context.Context, telegramID int64, action string) (*time.Time, error)
}

// ErrOnCooldown is returned when an action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	total := int(e.Remaining.Seconds())
	h, m, s := total/3600, total%3600/60, total%60

	switch {
	case h > 0:
		return fmt.Sprintf(ErrFmtCooldownWithHours, e.Action, h, m, s)
	case m > 0:
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, m, s)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, s)
}

// Is matches any ErrOnCooldown regardless of action or remaining time
func (e ErrOnCooldown) Is(target error) bool {
	_, ok := target.(ErrOnCooldown)
	return ok
}

// remainingAfter returns how much of window is left since lastUsed, zero when
// the action was never used or the window has passed.
func remainingAfter(now time.Time, lastUsed *time.Time, window time.Duration) time.Duration {
	if lastUsed == nil {
		return 0
	}
	if left := window - now.Sub(*lastUsed); left > 0 {
		return left
	}
	return 0
}
