package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// LogConfig controls how the zap logger is built.
type LogConfig struct {
	Mode  string
	Level string
	File  string
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL        string
	Port               string
	StaticDir          string
	PhoneRegion        string
	RateLimitContact   RateLimitConfig
	ExposeErrorDetails bool
	AutoMigrate        bool
	ShutdownTimeout    time.Duration
	Log                LogConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		Port:               getEnv("PORT", "3000"),
		StaticDir:          getEnv("STATIC_DIR", "./public"),
		PhoneRegion:        strings.ToUpper(getEnv("PHONE_REGION", "US")),
		ExposeErrorDetails: parseBool(getEnv("EXPOSE_ERROR_DETAILS", "false"), false),
		AutoMigrate:        parseBool(getEnv("AUTO_MIGRATE", "true"), true),
		ShutdownTimeout:    parseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")),
		Log: LogConfig{
			Mode:  strings.ToLower(getEnv("LOG_MODE", "development")),
			Level: strings.ToLower(getEnv("LOG_LEVEL", "info")),
			File:  os.Getenv("LOG_FILE"),
		},
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_CONTACT", "5/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_CONTACT value: %w", err)
	}
	cfg.RateLimitContact = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

func parseBool(input string, fallback bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(input))
	if err != nil {
		return fallback
	}
	return b
}
