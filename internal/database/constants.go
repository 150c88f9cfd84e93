package database

import "time"

// Pool sizing
const (
	DefaultMinConnections = 2
	DefaultMaxConnections = 10
	DefaultPingRetries    = 5
	DefaultPingDelay      = 2 * time.Second
)

// Session parameters set on every connection
const (
	ApplicationName      = "giftroll"
	RuntimeParamAppName  = "application_name"
	RuntimeParamTimeZone = "timezone"
)

// Migration settings
const (
	MigrationDialect = "postgres"
	MigrationsDir    = "migrations"
)

const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
)

const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgDatabaseNotReady                = "Database not ready, retrying"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
