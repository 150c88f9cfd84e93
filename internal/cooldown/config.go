package cooldown

import "time"

// Config controls cooldown enforcement
type Config struct {
	// DevMode lets every action through, for local testing of the free case
	DevMode bool

	// FreeCase replaces FreeCaseCooldown when positive
	FreeCase time.Duration
}

// Duration returns how long action stays locked after a successful use
func (c Config) Duration(action string) time.Duration {
	if action == ActionFreeCase {
		if c.FreeCase > 0 {
			return c.FreeCase
		}
		return FreeCaseCooldown
	}
	return DefaultCooldownDuration
}
