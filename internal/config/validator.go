package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Values copied from the example .env that must not reach production
const (
	ExampleDBPassword = "postgres"
	MinAPIKeyLength   = 32
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks the numeric and duration bounds declared on Config's tags
func (c *Config) validate() error {
	err := structValidator.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s must satisfy %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

// Warnings lists settings that load fine but leave part of the system disabled or exposed
func (c *Config) Warnings() []string {
	var warnings []string

	if c.Environment == EnvironmentProduction {
		if c.DBPassword == ExampleDBPassword {
			warnings = append(warnings, "DB_PASSWORD is the example value")
		}
		if c.DevMode {
			warnings = append(warnings, "DEV_MODE is on in production, free case cooldowns are not enforced")
		}
	}

	if len(c.APIKey) < MinAPIKeyLength {
		warnings = append(warnings, fmt.Sprintf("API_KEY is shorter than %d characters, generate one with: openssl rand -hex 32", MinAPIKeyLength))
	}

	switch {
	case c.BotToken == "":
		warnings = append(warnings, "BOT_TOKEN is not set, withdrawal requests reach admins only through the admin API")
	case c.AdminChatID == 0:
		warnings = append(warnings, "BOT_TOKEN is set without ADMIN_CHAT_ID, notifications have nowhere to go")
	}

	if c.TONWalletAddress == "" {
		warnings = append(warnings, "TON_WALLET_ADDRESS is not set, TON invoices will carry an empty address")
	}

	return warnings
}
