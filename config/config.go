// File: /config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string

	LogLevel  string
	LogFormat string

	// Store
	SeedData               bool
	DefaultProfileImageURL string
	StatsInterval          time.Duration

	// HTTP
	RateLimitPerMinute int
	RateLimitBurst     int
	DefaultPageLimit   int
	MaxPageLimit       int
}

// Load reads the configuration from the environment. Variables missing from
// the environment are taken from envFiles (".env" when none are given); a
// missing file is not an error.
func Load(envFiles ...string) *Config {
	_ = godotenv.Load(envFiles...)

	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		SeedData:               getEnvBool("SEED_DATA", true),
		DefaultProfileImageURL: getEnv("DEFAULT_PROFILE_IMAGE_URL", "https://example.com/avatars/default.png"),
		StatsInterval:          getEnvDuration("STATS_INTERVAL", time.Minute),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),
		DefaultPageLimit:   getEnvInt("DEFAULT_PAGE_LIMIT", 10),
		MaxPageLimit:       getEnvInt("MAX_PAGE_LIMIT", 50),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
