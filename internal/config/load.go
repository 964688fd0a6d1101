package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables use the
// HEARTHKEEP_ prefix with underscores for nesting (e.g.
// HEARTHKEEP_SERVER_PORT, HEARTHKEEP_DATABASE_URL) and take precedence over
// file values. Returns a populated, validated Config or an error describing
// what is missing.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.task_key_supported", true)

	// Optional config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; environment variables may cover everything.
	}

	// Environment variables
	v.SetEnvPrefix("HEARTHKEEP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Viper only surfaces env-var values for keys it knows about; bind the
	// keys explicitly so a pure-env deployment works without a config file.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"database.url",
		"database.task_key_supported",
		"catalog.csv_path",
		"ramp.near_term_days",
		"ramp.initial_cap",
		"ramp.stagger_weeks",
		"ramp.per_day_cap",
		"ramp.onboarding_window_days",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
