package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the API process needs at startup.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
	// ConnectTimeout bounds initial connection establishment; queries are
	// bounded by the request context.
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// Load reads config.yaml from the working directory, with MARINEDATA_*
// environment variables overriding file values (MARINEDATA_DATABASE_URL,
// MARINEDATA_AUTH_JWT_SECRET, ...).
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("MARINEDATA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.connect_timeout", 5*time.Second)
	viper.SetDefault("auth.token_ttl", 24*time.Hour)

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine when env vars carry the config.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("config: database url is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("config: auth jwt secret is required")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return nil, fmt.Errorf("config: auth token ttl must be positive")
	}

	return &cfg, nil
}
