package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Driver        string // "sqlite" or "postgres"
	DSN           string
	SessionSecret string
	TokenTTL      time.Duration
	Env           string
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by caller) > default.
func Load() Config {
	cfg := Config{}
	cfg.Driver = getEnv("CARPOOL_DB_DRIVER", "sqlite")
	cfg.DSN = getEnv("CARPOOL_DB_DSN", "carpool.db")
	cfg.SessionSecret = getEnv("SESSION_SECRET", "devsessionsecret")
	cfg.TokenTTL = time.Duration(getEnvInt("TOKEN_TTL_HOURS", 336)) * time.Hour
	cfg.Env = getEnv("APP_ENV", "development")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid integer for %s: %s", key, v)
			return def
		}
		return n
	}
	return def
}
