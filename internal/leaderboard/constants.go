package leaderboard

import "time"

// DefaultCacheTTL is used when no TTL is configured
const DefaultCacheTTL = 30 * time.Second

// Fallback display name for players without a first name
const anonymousName = "User"

// Error context
const (
	ErrContextFailedToLoad = "failed to load leaderboard"
)

// Log messages
const (
	LogMsgCacheInvalidated = "Leaderboard cache invalidated"
)
