package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	APIKey      string // API key for admin routes
	Environment string
	Version     string
	ServiceName string
	LogLevel    string
	LogFormat   string
	LogDir      string
	DevMode     bool

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBMaxConns int `validate:"min=1"`
	DBMaxIdle  time.Duration
	DBMaxLife  time.Duration

	// Telegram
	BotToken    string
	AdminChatID int64
	AdminIDs    []int64

	// Wallet
	TONWalletAddress string

	// Games
	RollsRoundDuration  time.Duration `validate:"gt=0"`
	RollsBetCutoff      time.Duration `validate:"gte=0"`
	CaseCatalogPath     string
	FreeCaseCooldown    time.Duration `validate:"gte=0"`
	LeaderboardCacheTTL time.Duration
	PendingDepositTTL   time.Duration `validate:"gt=0"`

	// Event publishing
	EventMaxRetries     int           `validate:"min=0"`
	EventRetryDelay     time.Duration `validate:"gt=0"`
	EventDeadLetterPath string

	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// .env is optional, real env vars win
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv("VERSION", DefaultVersion),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		DevMode:     getEnvAsBool("DEV_MODE", false),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "giftroll"),
		DBMaxConns: getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxIdle:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxIdle),
		DBMaxLife:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxLife),

		BotToken:         getEnv("BOT_TOKEN", ""),
		TONWalletAddress: getEnv("TON_WALLET_ADDRESS", ""),

		RollsRoundDuration:  getEnvAsDuration("ROLLS_ROUND_DURATION", DefaultRollsRoundDuration),
		RollsBetCutoff:      getEnvAsDuration("ROLLS_BET_CUTOFF", DefaultRollsBetCutoff),
		CaseCatalogPath:     getEnv("CASE_CATALOG_PATH", ""),
		FreeCaseCooldown:    getEnvAsDuration("FREE_CASE_COOLDOWN", DefaultFreeCaseCooldown),
		LeaderboardCacheTTL: getEnvAsDuration("LEADERBOARD_CACHE_TTL", DefaultLeaderboardCacheTTL),
		PendingDepositTTL:   getEnvAsDuration("PENDING_DEPOSIT_TTL", DefaultPendingDepositTTL),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),

		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if raw := getEnv("ADMIN_CHAT_ID", ""); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_CHAT_ID value: %w", err)
		}
		cfg.AdminChatID = id
	}

	for _, raw := range splitList(getEnv("ADMIN_IDS", "")) {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_IDS entry %q: %w", raw, err)
		}
		cfg.AdminIDs = append(cfg.AdminIDs, id)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.RollsBetCutoff >= cfg.RollsRoundDuration {
		return nil, fmt.Errorf("ROLLS_BET_CUTOFF (%s) must be shorter than ROLLS_ROUND_DURATION (%s)",
			cfg.RollsBetCutoff, cfg.RollsRoundDuration)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsAdmin reports whether the telegram id is a configured admin
func (c *Config) IsAdmin(telegramID int64) bool {
	for _, id := range c.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}
