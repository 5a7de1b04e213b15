package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string

	// Calculation defaults applied when a request omits a field
	DefaultPolicy            string
	DefaultTimeFormat        string
	DefaultFallAsleepMinutes int

	// Maximum number of memoized responses; 0 disables the cache
	CacheSize int

	// OTLP trace export
	OTLPEndpoint string
	OTLPUsername string
	OTLPPassword string
	Environment  string
}

func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DefaultPolicy:            getEnv("DEFAULT_POLICY", "quality"),
		DefaultTimeFormat:        getEnv("DEFAULT_TIME_FORMAT", "24h"),
		DefaultFallAsleepMinutes: getEnvInt("DEFAULT_FALL_ASLEEP_MINUTES", 15),
		CacheSize:                getEnvInt("CACHE_SIZE", 1024),

		OTLPEndpoint: getEnv("OTLP_ENDPOINT", ""),
		OTLPUsername: getEnv("OTLP_USERNAME", ""),
		OTLPPassword: getEnv("OTLP_PASSWORD", ""),
		Environment:  getEnv("ENVIRONMENT", "development"),
	}
}

// Debug reports whether per-calculation logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
