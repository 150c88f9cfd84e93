package miniapp

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the client settings and the host-provided identity
type Config struct {
	APIURL       string
	PollInterval time.Duration
	Timeout      time.Duration
	MaxRetries   int
	RetryDelay   time.Duration
	LogLevel     string

	TelegramID int64
	FirstName  string
	LastName   string
	Username   string
	PhotoURL   string
	StartParam string
}

// LoadConfig reads MINIAPP_* keys from .env and the environment
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIURL:       getEnv("MINIAPP_API_URL", DefaultAPIURL),
		PollInterval: getEnvAsDuration("MINIAPP_POLL_INTERVAL", DefaultPollInterval),
		Timeout:      getEnvAsDuration("MINIAPP_TIMEOUT", DefaultTimeout),
		MaxRetries:   getEnvAsInt("MINIAPP_MAX_RETRIES", DefaultMaxRetries),
		RetryDelay:   getEnvAsDuration("MINIAPP_RETRY_DELAY", DefaultRetryDelay),
		LogLevel:     getEnv("MINIAPP_LOG_LEVEL", DefaultLogLevel),

		FirstName:  getEnv("MINIAPP_FIRST_NAME", ""),
		LastName:   getEnv("MINIAPP_LAST_NAME", ""),
		Username:   getEnv("MINIAPP_USERNAME", ""),
		PhotoURL:   getEnv("MINIAPP_PHOTO_URL", ""),
		StartParam: getEnv("MINIAPP_START_PARAM", ""),
	}

	if raw := getEnv("MINIAPP_TELEGRAM_ID", ""); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MINIAPP_TELEGRAM_ID value: %w", err)
		}
		cfg.TelegramID = id
	}

	if cfg.PollInterval <= 0 {
		return nil, fmt.Errorf("MINIAPP_POLL_INTERVAL must be positive, got %s", cfg.PollInterval)
	}

	return cfg, nil
}

// HasIdentity reports whether the host supplied a telegram user
func (c *Config) HasIdentity() bool {
	return c.TelegramID != 0
}

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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
