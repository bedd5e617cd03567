package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSOrigins        string
	SeedPath           string
	RateLimitPerMinute int
	MaxChartEntries    int
}

var AppConfig *Config

// Load reads .env (if present) and the environment into AppConfig
func Load() error {
	_ = godotenv.Load()

	rateLimit, err := strconv.Atoi(GetEnv("RATE_LIMIT_PER_MINUTE", "200"))
	if err != nil || rateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be a positive integer")
	}

	maxEntries, err := strconv.Atoi(GetEnv("MAX_CHART_ENTRIES", "10000"))
	if err != nil || maxEntries <= 0 {
		return fmt.Errorf("MAX_CHART_ENTRIES must be a positive integer")
	}

	AppConfig = &Config{
		Port:               GetEnv("PORT", "3000"),
		Env:                GetEnv("ENV", "development"),
		LogLevel:           GetEnv("LOG_LEVEL", "info"),
		CORSOrigins:        GetEnv("CORS_ORIGINS", "*"),
		SeedPath:           GetEnv("SEED_PATH", ""),
		RateLimitPerMinute: rateLimit,
		MaxChartEntries:    maxEntries,
	}

	return nil
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
