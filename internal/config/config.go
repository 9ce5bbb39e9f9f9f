// Package config loads application configuration from the environment and
// an optional .env file.
package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the server needs at startup.
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	JWT    JWTConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type StoreConfig struct {
	Path string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type LogConfig struct {
	Level string
}

// Load reads the .env file when present, then the environment, applying
// defaults for everything except the JWT secret.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("STORE_PATH", "db.json")
	viper.SetDefault("JWT_TTL_MINUTES", 60*24)
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString("PORT"),
			Host: viper.GetString("HOST"),
		},
		Store: StoreConfig{
			Path: viper.GetString("STORE_PATH"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
			TTL:    time.Duration(viper.GetInt("JWT_TTL_MINUTES")) * time.Minute,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}
