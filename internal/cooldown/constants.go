package cooldown

import "time"

// Actions guarded by a cooldown
const (
	// ActionFreeCase is the daily free case
	ActionFreeCase = "free_case"
)

const (
	// FreeCaseCooldown is how long a user waits between free cases
	FreeCaseCooldown = 24 * time.Hour

	// DefaultCooldownDuration is the fallback when no duration is configured
	DefaultCooldownDuration = 5 * time.Minute
)

// LockKeyMask keeps advisory lock keys non-negative
const LockKeyMask = 0x7FFFFFFFFFFFFFFF

// SQL
const (
	SQLAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"

	SQLSelectLastUsed = `
		SELECT last_used_at
		FROM user_cooldowns
		WHERE user_id = $1 AND action_name = $2
	`

	SQLDeleteCooldown = `DELETE FROM user_cooldowns WHERE user_id = $1 AND action_name = $2`

	SQLUpsertCooldown = `
		INSERT INTO user_cooldowns (user_id, action_name, last_used_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, action_name) DO UPDATE
		SET last_used_at = EXCLUDED.last_used_at
	`
)

// Error messages
const (
	ErrMsgCheckCooldownFailed     = "failed to check cooldown: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgAcquireLockFailed       = "failed to acquire advisory lock: %w"
	ErrMsgGetCooldownTxFailed     = "failed to get cooldown within transaction: %w"
	ErrMsgUpdateCooldownFailed    = "failed to update cooldown: %w"
	ErrMsgCommitTransactionFailed = "failed to commit cooldown transaction: %w"
	ErrMsgResetCooldownFailed     = "failed to reset cooldown: %w"
	ErrMsgGetLastUsedFailed       = "failed to get last used: %w"
)

// Log messages
const (
	LogMsgDevModeBypass         = "DEV_MODE: Bypassing cooldown enforcement"
	LogMsgRaceConditionDetected = "Concurrent request lost the cooldown race"
	LogMsgCooldownEnforced      = "Cooldown enforced"
)

// ErrOnCooldown.Error formats
const (
	ErrFmtCooldownWithHours   = "action '%s' on cooldown: %d:%02d:%02d remaining"
	ErrFmtCooldownWithMinutes = "action '%s' on cooldown: %dm %ds remaining"
	ErrFmtCooldownSecondsOnly = "action '%s' on cooldown: %ds remaining"
)
