package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	DEFAULT_ENV              = "dev"
	DEFAULT_HTTP_ADDR        = ":8080"
	DEFAULT_LOG_LEVEL        = "info"
	DEFAULT_CHART_WIDTH      = 640
	DEFAULT_CHART_HEIGHT     = 480
	DEFAULT_MAX_BODY_BYTES   = 1 << 20
	DEFAULT_SHUTDOWN_TIMEOUT = 10 * time.Second
	DEFAULT_READ_TIMEOUT     = 15 * time.Second
	DEFAULT_WRITE_TIMEOUT    = 30 * time.Second
)

type Config struct {
	Env             string
	HTTPAddr        string
	LogLevel        string
	ChartWidth      int
	ChartHeight     int
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
}

// Env returns APP_ENV, defaulting to dev.
func Env() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = DEFAULT_ENV
	}
	return env
}

// Load reads the configuration from the environment. Missing or invalid
// values fall back to their defaults.
func Load() Config {
	return Config{
		Env:             Env(),
		HTTPAddr:        stringOr("HTTP_ADDR", DEFAULT_HTTP_ADDR),
		LogLevel:        stringOr("LOG_LEVEL", DEFAULT_LOG_LEVEL),
		ChartWidth:      positiveIntOr("CHART_WIDTH", DEFAULT_CHART_WIDTH),
		ChartHeight:     positiveIntOr("CHART_HEIGHT", DEFAULT_CHART_HEIGHT),
		MaxBodyBytes:    int64(positiveIntOr("MAX_BODY_BYTES", DEFAULT_MAX_BODY_BYTES)),
		ShutdownTimeout: secondsOr("SHUTDOWN_TIMEOUT", DEFAULT_SHUTDOWN_TIMEOUT),
		ReadTimeout:     secondsOr("READ_TIMEOUT", DEFAULT_READ_TIMEOUT),
		WriteTimeout:    secondsOr("WRITE_TIMEOUT", DEFAULT_WRITE_TIMEOUT),
	}
}

func stringOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func positiveIntOr(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		slog.Warn("[Config] Invalid value, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.Int("default", fallback))
		return fallback
	}
	return v
}

func secondsOr(key string, fallback time.Duration) time.Duration {
	seconds := positiveIntOr(key, int(fallback/time.Second))
	return time.Duration(seconds) * time.Second
}
