package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("GOOGLE_MAPS_API_KEY", "test-maps-key")
	t.Setenv("API_SECRET", "test-secret")
}

func TestLoadFailsWithoutMapsKey(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "")
	t.Setenv("API_SECRET", "test-secret")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when GOOGLE_MAPS_API_KEY is missing")
	}
}

func TestLoadFailsWithoutAPISecret(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "test-maps-key")
	t.Setenv("API_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when API_SECRET is missing")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.HTTPAddr != ":3000" {
		t.Errorf("HTTPAddr = %q, want :3000", cfg.HTTPAddr)
	}
	if cfg.RateLimitWindow != time.Hour {
		t.Errorf("RateLimitWindow = %v, want 1h", cfg.RateLimitWindow)
	}
	if cfg.RateLimitMax != 100 {
		t.Errorf("RateLimitMax = %d, want 100", cfg.RateLimitMax)
	}
	if cfg.MapsBaseURL != "https://maps.googleapis.com/maps/api" {
		t.Errorf("unexpected MapsBaseURL %q", cfg.MapsBaseURL)
	}
}

func TestLoadRejectsMalformedOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("RATE_LIMIT_WINDOW", "banana")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparseable RATE_LIMIT_WINDOW")
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8081")
	t.Setenv("RATE_LIMIT_WINDOW", "10m")
	t.Setenv("RATE_LIMIT_MAX", "5")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.HTTPAddr != ":8081" {
		t.Errorf("HTTPAddr = %q, want :8081", cfg.HTTPAddr)
	}
	if cfg.RateLimitWindow != 10*time.Minute {
		t.Errorf("RateLimitWindow = %v, want 10m", cfg.RateLimitWindow)
	}
	if cfg.RateLimitMax != 5 {
		t.Errorf("RateLimitMax = %d, want 5", cfg.RateLimitMax)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://a.example" || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("unexpected CORSOrigins %v", cfg.CORSOrigins)
	}
}
