package config

import "time"

// Defaults applied when the environment does not set a value
const (
	DefaultPort           = "8080"
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
	DefaultEnvironment    = EnvironmentDev
	DefaultVersion        = "dev"
	DefaultServiceName    = "giftroll"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultLogDir         = "logs"

	DefaultDBMaxConns = 20
	DefaultDBMaxIdle  = 5 * time.Minute
	DefaultDBMaxLife  = 30 * time.Minute

	DefaultRollsRoundDuration  = 10 * time.Second
	DefaultRollsBetCutoff      = 1 * time.Second
	DefaultFreeCaseCooldown    = 24 * time.Hour
	DefaultLeaderboardCacheTTL = 30 * time.Second
	DefaultPendingDepositTTL   = 24 * time.Hour

	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
)
