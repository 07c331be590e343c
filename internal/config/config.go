package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const PROD_STRING = "prod"

// DefaultAPIBaseURL points at the public mock fleet API used for development.
const DefaultAPIBaseURL = "https://605c94c36d85de00170da8b4.mockapi.io"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	HTTPAddr        string
	APIBaseURL      string
	APITimeout      time.Duration
	StationCacheTTL time.Duration
	DefaultAnchor   time.Time
	LogLevel        string
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origins (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Base URL of the remote fleet booking API
	cfg.APIBaseURL = getEnv("FLEET_API_BASE_URL", DefaultAPIBaseURL)

	// Remote API request timeout, parsed as time.Duration (e.g. "30s")
	cfg.APITimeout, err = getEnvAsDuration("FLEET_API_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid FLEET_API_TIMEOUT: %w", err)
	}

	// How long the fetched station list stays valid before a refetch
	cfg.StationCacheTTL, err = getEnvAsDuration("STATION_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("invalid STATION_CACHE_TTL: %w", err)
	}

	// Initial week anchor shown before any navigation
	anchorStr := getEnv("DEFAULT_WEEK_ANCHOR", "2025-08-07")
	cfg.DefaultAnchor, err = time.ParseInLocation("2006-01-02", anchorStr, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_WEEK_ANCHOR: %w", err)
	}

	// Log verbosity (zerolog level name)
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsDuration retrieves an environment variable as a time.Duration.
// It returns the default value if the variable is not set.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid duration: %w", key, valStr, err)
	}

	return val, nil
}
