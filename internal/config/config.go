package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration.
// Populated from environment variables.
type Config struct {
	App    AppConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Chain  ChainConfig
	Reveal RevealConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// RedisConfig configures the redis instance standing in for the on-chain
// key/value store.
type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret             string
	SessionExpiryHours int
}

// ChainConfig identifies the external contract the registry writes through.
type ChainConfig struct {
	ContractAddress string
	ChainID         int64
}

// RevealConfig parameterizes the signed reveal challenge.
type RevealConfig struct {
	DurationDays int
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Blueprint Registry API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:             getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			SessionExpiryHours: getEnvInt("JWT_SESSION_EXPIRY", 24),
		},
		Chain: ChainConfig{
			ContractAddress: getEnv("CHAIN_CONTRACT_ADDRESS", "0x0000000000000000000000000000000000000000"),
			ChainID:         getEnvInt64("CHAIN_ID", 11155111), // sepolia
		},
		Reveal: RevealConfig{
			DurationDays: getEnvInt("REVEAL_DURATION_DAYS", 30),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the config is usable.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Chain.ContractAddress == "0x0000000000000000000000000000000000000000" {
			return fmt.Errorf("CHAIN_CONTRACT_ADDRESS must be set in production")
		}
	}

	if c.Reveal.DurationDays <= 0 {
		return fmt.Errorf("REVEAL_DURATION_DAYS must be positive")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
