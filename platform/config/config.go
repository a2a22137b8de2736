// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"maps_gateway/platform/validator"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSOrigins() []string
}

// AuthConfig provides the static bearer secret for protected routes.
type AuthConfig interface {
	GetAPISecret() string
}

// RateLimitConfig provides settings for the sliding-window rate limiter.
type RateLimitConfig interface {
	GetRateLimitWindow() time.Duration
	GetRateLimitMax() int
}

// UpstreamConfig provides settings for the Google Maps client.
type UpstreamConfig interface {
	GetMapsAPIKey() string
	GetMapsBaseURL() string
	GetMapsTimeout() time.Duration
	GetMapsQPS() float64
	GetMapsBurst() int
}

// GeocodeCacheConfig provides settings for the geocode response cache.
type GeocodeCacheConfig interface {
	GetGeocodeCacheSize() int
	GetGeocodeCacheTTL() time.Duration
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values. The validate tags
// catch malformed overrides (e.g. an unparseable duration) at startup.
type Config struct {
	Env              string
	HTTPAddr         string        `validate:"required"`
	MapsAPIKey       string        `validate:"required"`
	APISecret        string        `validate:"required"`
	CORSOrigins      []string      `validate:"min=1"`
	RateLimitWindow  time.Duration `validate:"gt=0"`
	RateLimitMax     int           `validate:"gt=0"`
	MapsBaseURL      string        `validate:"required,url"`
	MapsTimeout      time.Duration `validate:"gt=0"`
	MapsQPS          float64       `validate:"gt=0"`
	MapsBurst        int           `validate:"gt=0"`
	GeocodeCacheSize int           `validate:"gt=0"`
	GeocodeCacheTTL  time.Duration `validate:"gt=0"`
}

// Load reads configuration from .env (if present) and the environment.
// The provider API key and the gateway bearer secret are mandatory;
// missing either is a startup error so the process fails fast.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		HTTPAddr:         ":" + getEnv("PORT", "3000"),
		MapsAPIKey:       getEnv("GOOGLE_MAPS_API_KEY", ""),
		APISecret:        getEnv("API_SECRET", ""),
		CORSOrigins:      splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080")),
		RateLimitWindow:  mustDuration(getEnv("RATE_LIMIT_WINDOW", "1h")),
		RateLimitMax:     mustInt(getEnv("RATE_LIMIT_MAX", "100")),
		MapsBaseURL:      getEnv("GOOGLE_MAPS_BASE_URL", "https://maps.googleapis.com/maps/api"),
		MapsTimeout:      mustDuration(getEnv("GOOGLE_MAPS_TIMEOUT", "30s")),
		MapsQPS:          mustFloat(getEnv("GOOGLE_MAPS_QPS", "40")),
		MapsBurst:        mustInt(getEnv("GOOGLE_MAPS_BURST", "10")),
		GeocodeCacheSize: mustInt(getEnv("GEOCODE_CACHE_SIZE", "512")),
		GeocodeCacheTTL:  mustDuration(getEnv("GEOCODE_CACHE_TTL", "24h")),
	}

	if cfg.MapsAPIKey == "" {
		return nil, fmt.Errorf("GOOGLE_MAPS_API_KEY is required")
	}
	if cfg.APISecret == "" {
		return nil, fmt.Errorf("API_SECRET is required")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

func mustFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

// =============================================================================
// Interface implementations
// =============================================================================

func (c *Config) GetHTTPAddr() string               { return c.HTTPAddr }
func (c *Config) GetCORSOrigins() []string          { return c.CORSOrigins }
func (c *Config) GetAPISecret() string              { return c.APISecret }
func (c *Config) GetRateLimitWindow() time.Duration { return c.RateLimitWindow }
func (c *Config) GetRateLimitMax() int              { return c.RateLimitMax }
func (c *Config) GetMapsAPIKey() string             { return c.MapsAPIKey }
func (c *Config) GetMapsBaseURL() string            { return c.MapsBaseURL }
func (c *Config) GetMapsTimeout() time.Duration     { return c.MapsTimeout }
func (c *Config) GetMapsQPS() float64               { return c.MapsQPS }
func (c *Config) GetMapsBurst() int                 { return c.MapsBurst }
func (c *Config) GetGeocodeCacheSize() int          { return c.GeocodeCacheSize }
func (c *Config) GetGeocodeCacheTTL() time.Duration { return c.GeocodeCacheTTL }
