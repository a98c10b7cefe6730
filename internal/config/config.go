// Package config loads application configuration from an optional .env
// file, environment variables and an optional config.yaml, in that
// precedence order.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type StorageConfig struct {
	// Path is the SQLite database file path.
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	// JWTSecret signs session tokens. Must be set outside development.
	JWTSecret string `mapstructure:"jwt_secret"`

	// TokenTTLHours is how long issued tokens stay valid.
	TokenTTLHours int `mapstructure:"token_ttl_hours"`
}

type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
}

// Load reads configuration. A missing config file is fine; env vars such as
// SERVER_PORT or AUTH_JWT_SECRET override file values.
func Load() (*Config, error) {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", 8080)
	v.SetDefault("storage.path", "./data/planner.db")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl_hours", 24)
	v.SetDefault("logging.level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Auth.JWTSecret == "" {
		if env := os.Getenv("APP_ENVIRONMENT"); env != "" && env != "development" {
			return nil, fmt.Errorf("auth.jwt_secret must be set outside development")
		}
		cfg.Auth.JWTSecret = "dev-only-insecure-secret"
	}

	return &cfg, nil
}
