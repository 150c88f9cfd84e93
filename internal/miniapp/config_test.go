package miniapp

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var miniappEnvVars = []string{
	"MINIAPP_API_URL", "MINIAPP_POLL_INTERVAL", "MINIAPP_TIMEOUT", "MINIAPP_MAX_RETRIES",
	"MINIAPP_RETRY_DELAY", "MINIAPP_LOG_LEVEL", "MINIAPP_TELEGRAM_ID", "MINIAPP_FIRST_NAME",
	"MINIAPP_LAST_NAME", "MINIAPP_USERNAME", "MINIAPP_PHOTO_URL", "MINIAPP_START_PARAM",
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range miniappEnvVars {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		}
		os.Unsetenv(key)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, DefaultAPIURL, cfg.APIURL)
		assert.Equal(t, 500*time.Millisecond, cfg.PollInterval)
		assert.Equal(t, DefaultMaxRetries, cfg.MaxRetries)
		assert.False(t, cfg.HasIdentity())
	})

	t.Run("host identity", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("MINIAPP_API_URL", "https://giftroll.example")
		t.Setenv("MINIAPP_POLL_INTERVAL", "250ms")
		t.Setenv("MINIAPP_TELEGRAM_ID", "777")
		t.Setenv("MINIAPP_FIRST_NAME", "Bob")
		t.Setenv("MINIAPP_START_PARAM", "ref_42")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "https://giftroll.example", cfg.APIURL)
		assert.Equal(t, 250*time.Millisecond, cfg.PollInterval)
		assert.True(t, cfg.HasIdentity())
		assert.Equal(t, int64(777), cfg.TelegramID)
		assert.Equal(t, "ref_42", cfg.StartParam)
	})

	t.Run("invalid telegram id", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("MINIAPP_TELEGRAM_ID", "not-a-number")

		_, err := LoadConfig()

		assert.ErrorContains(t, err, "MINIAPP_TELEGRAM_ID")
	})

	t.Run("non-positive poll interval", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("MINIAPP_POLL_INTERVAL", "0s")

		_, err := LoadConfig()

		assert.ErrorContains(t, err, "MINIAPP_POLL_INTERVAL")
	})
}
