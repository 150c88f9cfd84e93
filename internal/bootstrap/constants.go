package bootstrap

import "time"

const (
	DirPermission     = 0755
	LogFilePermission = 0666
)

// Log file rotation
const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFilePrefix          = "session_"
	LogFileNamePattern     = LogFilePrefix + "%s" + LogFileExtension
	LogFileExtension       = ".log"

	// LogFileRetentionCount is how many old session logs survive a restart
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingGiftRoll    = "Starting GiftRoll"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
	LogMsgPendingDeadLetters             = "Dead-letter file holds undelivered events"
	LogMsgDeadLetterUnreadable           = "Dead-letter file unreadable"
)

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgStreamSubscriberRegistered = "Rolls stream subscriber registered"
	LogMsgLeaderboardSubscribed      = "Leaderboard cache invalidation registered"
	LogMsgNotifierRegistered         = "Telegram notifier registered"
	LogMsgNotifierDisabled           = "BOT_TOKEN is empty, Telegram notifications disabled"
)

// Catalog loading
const (
	LogMsgCatalogLoaded     = "Case catalog loaded"
	ErrMsgFailedLoadCatalog = "failed to load case catalog"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgRoundWorkerShutdownFailed  = "Round worker shutdown failed"
)

// Background jobs
const (
	JobPoolWorkers   = 2
	JobPoolQueueSize = 16

	DepositExpiryInterval      = 10 * time.Minute
	LeaderboardRefreshInterval = time.Minute
)
