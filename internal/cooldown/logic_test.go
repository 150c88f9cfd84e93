package cooldown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockKey(t *testing.T) {
	tests := []struct {
		name       string
		telegramID int64
		action     string
	}{
		{"free case", 12345, ActionFreeCase},
		{"zero", 0, ""},
		{"max id", 9223372036854775807, "action-name-very-long"},
		{"negative id", -1001234567890, ActionFreeCase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := lockKey(tt.telegramID, tt.action)
			assert.Equal(t, k, lockKey(tt.telegramID, tt.action))
			assert.GreaterOrEqual(t, k, int64(0))
		})
	}

	assert.NotEqual(t, lockKey(1, ActionFreeCase), lockKey(1, "other"))
	assert.NotEqual(t, lockKey(1, ActionFreeCase), lockKey(2, ActionFreeCase))
}

func TestRemainingAfter(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lastUsed *time.Time
		want     time.Duration
	}{
		{"never used", nil, 0},
		{"opened two hours ago", ptr(now.Add(-2 * time.Hour)), 22 * time.Hour},
		{"opened yesterday", ptr(now.Add(-25 * time.Hour)), 0},
		{"exact boundary", ptr(now.Add(-24 * time.Hour)), 0},
		{"one second left", ptr(now.Add(-24*time.Hour + time.Second)), time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, remainingAfter(now, tt.lastUsed, FreeCaseCooldown))
		})
	}
}

func TestConfig_Duration(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		action string
		want   time.Duration
	}{
		{"free case default", Config{}, ActionFreeCase, FreeCaseCooldown},
		{"free case override", Config{FreeCase: time.Hour}, ActionFreeCase, time.Hour},
		{"negative override ignored", Config{FreeCase: -time.Second}, ActionFreeCase, FreeCaseCooldown},
		{"unknown action", Config{FreeCase: time.Hour}, "unknown", DefaultCooldownDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Duration(tt.action))
		})
	}
}

func ptr(t time.Time) *time.Time {
	return &t
}
