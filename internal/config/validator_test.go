package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_TagBounds(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"port too large", "PORT", "70000", "Port must satisfy max=65535"},
		{"no connections", "DB_MAX_CONNS", "0", "DBMaxConns must satisfy min=1"},
		{"zero round", "ROLLS_ROUND_DURATION", "0s", "RollsRoundDuration must satisfy gt=0"},
		{"negative cooldown", "FREE_CASE_COOLDOWN", "-1h", "FreeCaseCooldown must satisfy gte=0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv("API_KEY", "test-key")
			t.Setenv(tt.key, tt.val)

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func validConfig() *Config {
	return &Config{
		Environment:      EnvironmentProduction,
		APIKey:           strings.Repeat("k", MinAPIKeyLength),
		DBPassword:       "s3cret",
		BotToken:         "123:abc",
		AdminChatID:      -100,
		TONWalletAddress: "UQ-wallet",
	}
}

func TestConfig_Warnings(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		want   string
	}{
		{"clean", func(c *Config) {}, ""},
		{"example password", func(c *Config) { c.DBPassword = ExampleDBPassword }, "DB_PASSWORD"},
		{"dev mode in prod", func(c *Config) { c.DevMode = true }, "DEV_MODE"},
		{"short key", func(c *Config) { c.APIKey = "abc" }, "API_KEY"},
		{"no bot", func(c *Config) { c.BotToken = "" }, "BOT_TOKEN is not set"},
		{"bot without chat", func(c *Config) { c.AdminChatID = 0 }, "ADMIN_CHAT_ID"},
		{"no wallet", func(c *Config) { c.TONWalletAddress = "" }, "TON_WALLET_ADDRESS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			warnings := cfg.Warnings()
			if tt.want == "" {
				assert.Empty(t, warnings)
				return
			}
			require.Len(t, warnings, 1)
			assert.Contains(t, warnings[0], tt.want)
		})
	}
}

func TestConfig_Warnings_DevEnvironmentSkipsProductionChecks(t *testing.T) {
	cfg := validConfig()
	cfg.Environment = DefaultEnvironment
	cfg.DBPassword = ExampleDBPassword
	cfg.DevMode = true

	assert.Empty(t, cfg.Warnings())
}
