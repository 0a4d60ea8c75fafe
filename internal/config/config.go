package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// StorageConfig holds the object storage settings for uploaded media.
type StorageConfig struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	CDNDomain string
	BasePath  string
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL      string
	JWTSecret        string
	Port             string
	TokenTTL         time.Duration
	RateLimitSubmit  RateLimitConfig
	Storage          StorageConfig
	PhoneRegion      string
	FutsalCategoryID uuid.UUID
}

// DefaultFutsalCategoryID tags submitted services with the futsal category
// unless FUTSAL_CATEGORY_ID overrides it.
const DefaultFutsalCategoryID = "2f12b3d2-35fa-4fda-ba30-6ca0ceab58d7"

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret"),
		Port:        getEnv("PORT", "8080"),
		TokenTTL:    parseDuration(getEnv("JWT_TTL", "24h")),
		PhoneRegion: getEnv("PHONE_REGION", "MM"),
		Storage: StorageConfig{
			Bucket:    os.Getenv("STORAGE_BUCKET"),
			Region:    os.Getenv("STORAGE_REGION"),
			AccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
			SecretKey: os.Getenv("STORAGE_SECRET_KEY"),
			CDNDomain: os.Getenv("STORAGE_CDN_DOMAIN"),
			BasePath:  getEnv("STORAGE_BASE_PATH", "business-assets"),
		},
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_SUBMIT", "5/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SUBMIT value: %w", err)
	}
	cfg.RateLimitSubmit = rl

	categoryID, err := uuid.Parse(getEnv("FUTSAL_CATEGORY_ID", DefaultFutsalCategoryID))
	if err != nil {
		return nil, fmt.Errorf("invalid FUTSAL_CATEGORY_ID value: %w", err)
	}
	cfg.FutsalCategoryID = categoryID

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
	if err != nil {
		return 24 * time.Hour
	}
	return d
}
