// Package config reads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the simulator.
type Config struct {
	DataDir                 string // flat JSON ledger directory
	HistoryPath             string // SQLite trade history; empty disables history
	ServerPort              int
	AdminKey                string // bearer token for mutating endpoints; empty disables them
	Seed                    int64  // 0 means derive from the clock
	AdjustDemandsWithMarket bool
	LogLevel                string // debug, info, warn, error
}

// Load creates a Config from environment variables with defaults. A .env
// file in the working directory is applied first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DataDir:                 getEnv("TRADEWINDS_DATA_DIR", "data"),
		HistoryPath:             getEnv("TRADEWINDS_HISTORY_DB", "data/history.db"),
		ServerPort:              getEnvInt("TRADEWINDS_PORT", 8080),
		AdminKey:                getEnv("TRADEWINDS_ADMIN_KEY", ""),
		Seed:                    int64(getEnvInt("TRADEWINDS_SEED", 0)),
		AdjustDemandsWithMarket: getEnvBool("TRADEWINDS_ADJUST_DEMANDS", false),
		LogLevel:                getEnv("TRADEWINDS_LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
