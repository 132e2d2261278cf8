// Package config loads the startup configuration for SalesMesh from a .env
// file and the process environment. Missing required values are fatal before
// any run starts; the orchestration core never sees a partially configured
// system.
package config

import (
	"os"
	"strconv"

	"github.com/hupe1980/salesmesh/core"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvOpenAIAPIKey   = "OPENAI_API_KEY"
	EnvSendGridAPIKey = "SENDGRID_API_KEY"
	EnvFromEmail      = "SALESMESH_FROM_EMAIL"
	EnvToEmail        = "SALESMESH_TO_EMAIL"
	EnvDryRun         = "SALESMESH_DRY_RUN"
)

// Config holds the application configuration.
type Config struct {
	// OpenAIAPIKey authenticates the generation provider. Always required.
	OpenAIAPIKey string
	// SendGridAPIKey authenticates the outbound provider. Required unless DryRun.
	SendGridAPIKey string
	// FromEmail is the verified sender address. Required unless DryRun.
	FromEmail string
	// ToEmail is the recipient address. Required unless DryRun.
	ToEmail string
	// DryRun selects the simulated sender instead of SendGrid. Defaults to true.
	DryRun bool
}

// Load reads configuration from a .env file (if present) and the environment,
// then validates required fields. Validation failures are returned as
// *core.ConfigurationError.
func Load() (*Config, error) {
	// A missing .env file is fine; plain environment variables are enough.
	_ = godotenv.Load()

	cfg := &Config{
		OpenAIAPIKey:   os.Getenv(EnvOpenAIAPIKey),
		SendGridAPIKey: os.Getenv(EnvSendGridAPIKey),
		FromEmail:      os.Getenv(EnvFromEmail),
		ToEmail:        os.Getenv(EnvToEmail),
		DryRun:         boolEnv(EnvDryRun, true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all required fields for the selected mode are present.
func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return core.NewConfigurationError(EnvOpenAIAPIKey, "required for email generation")
	}

	if c.DryRun {
		return nil
	}

	if c.SendGridAPIKey == "" {
		return core.NewConfigurationError(EnvSendGridAPIKey, "required for real email sending")
	}

	if c.FromEmail == "" {
		return core.NewConfigurationError(EnvFromEmail, "required for real email sending (must be verified in SendGrid)")
	}

	if c.ToEmail == "" {
		return core.NewConfigurationError(EnvToEmail, "required for real email sending")
	}

	return nil
}

// boolEnv parses a boolean environment variable with a default.
func boolEnv(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return parsed
}
