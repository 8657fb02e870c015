package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from a .env file (if present) and the
// environment, applies defaults, and validates the result. Environment
// variables use the DEVTASK_ prefix (e.g. DEVTASK_AUTH_SECRET_KEY); the
// unprefixed names SECRET_KEY, DATABASE_URL, and
// ACCESS_TOKEN_EXPIRE_MINUTES are accepted as fallbacks.
// Returns a populated Config or an error if loading or validation fails.
func Load() (*Config, error) {
	// A missing .env file is not an error; any other read failure is.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("auth.access_token_expire_minutes", 60)
	v.SetDefault("auth.bcrypt_cost", 0) // 0 means bcrypt.DefaultCost

	v.SetEnvPrefix("DEVTASK")
	v.AutomaticEnv()

	bindings := map[string][]string{
		"server.port":                      {"DEVTASK_SERVER_PORT"},
		"server.log_level":                 {"DEVTASK_SERVER_LOG_LEVEL"},
		"database.url":                     {"DEVTASK_DATABASE_URL", "DATABASE_URL"},
		"auth.secret_key":                  {"DEVTASK_AUTH_SECRET_KEY", "SECRET_KEY"},
		"auth.access_token_expire_minutes": {"DEVTASK_AUTH_ACCESS_TOKEN_EXPIRE_MINUTES", "ACCESS_TOKEN_EXPIRE_MINUTES"},
		"auth.bcrypt_cost":                 {"DEVTASK_AUTH_BCRYPT_COST"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
