package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	LogLevel        string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
	MaxInputBytes   int64
}

// Load reads the environment, after a .env file when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	for _, origin := range strings.Split(getEnv("CORS_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = timeout

	maxInput, err := strconv.ParseInt(getEnv("MAX_INPUT_BYTES", "1048576"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_INPUT_BYTES: %w", err)
	}
	if maxInput <= 0 {
		return nil, fmt.Errorf("MAX_INPUT_BYTES must be positive, got %d", maxInput)
	}
	cfg.MaxInputBytes = maxInput

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
