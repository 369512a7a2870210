package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cleanupEnv := func() {
		os.Unsetenv("SHOPSTATION_SERVER_PORT")
		os.Unsetenv("SHOPSTATION_SERVER_ENVIRONMENT")
		os.Unsetenv("SHOPSTATION_MATCHING_ACCEPTANCE_FLOOR")
		os.Unsetenv("SHOPSTATION_MATCHING_CANDIDATE_FLOOR")
		os.Unsetenv("SHOPSTATION_MATCHING_ENABLE_DEBUG_LOGGING")
		os.Unsetenv("SHOPSTATION_CACHE_TTL")
		os.Unsetenv("SHOPSTATION_RATELIMIT_PER_IP")
		os.Unsetenv("SHOPSTATION_RATELIMIT_BURST")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Matching.AcceptanceFloor != 0.6 {
			t.Errorf("Matching.AcceptanceFloor = %v, want 0.6", cfg.Matching.AcceptanceFloor)
		}
		if cfg.Matching.CandidateFloor != 0.5 {
			t.Errorf("Matching.CandidateFloor = %v, want 0.5", cfg.Matching.CandidateFloor)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 10.0 {
			t.Errorf("RateLimit.PerIP = %v, want 10", cfg.RateLimit.PerIP)
		}
		if cfg.RateLimit.Burst != 20 {
			t.Errorf("RateLimit.Burst = %d, want 20", cfg.RateLimit.Burst)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("SHOPSTATION_SERVER_PORT", "9090")
		os.Setenv("SHOPSTATION_SERVER_ENVIRONMENT", "production")
		os.Setenv("SHOPSTATION_MATCHING_ACCEPTANCE_FLOOR", "0.7")
		os.Setenv("SHOPSTATION_CACHE_TTL", "30m")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Matching.AcceptanceFloor != 0.7 {
			t.Errorf("Matching.AcceptanceFloor = %v, want 0.7", cfg.Matching.AcceptanceFloor)
		}
		if cfg.Cache.TTL != 30*time.Minute {
			t.Errorf("Cache.TTL = %v, want 30m", cfg.Cache.TTL)
		}
	})

	t.Run("rejects acceptance floor outside (0,1)", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("SHOPSTATION_MATCHING_ACCEPTANCE_FLOOR", "1.5")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})

	t.Run("rejects candidate floor above acceptance floor", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("SHOPSTATION_MATCHING_ACCEPTANCE_FLOOR", "0.55")
		os.Setenv("SHOPSTATION_MATCHING_CANDIDATE_FLOOR", "0.8")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})

	t.Run("rejects non-positive rate limit", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("SHOPSTATION_RATELIMIT_PER_IP", "0")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want validation error")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Matching:  MatchingConfig{AcceptanceFloor: 0.6, CandidateFloor: 0.5},
			RateLimit: RateLimitConfig{PerIP: 10},
		}
	}

	t.Run("accepts valid config", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("equal floors are allowed", func(t *testing.T) {
		cfg := valid()
		cfg.Matching.CandidateFloor = 0.6
		if err := validate(cfg); err != nil {
			t.Errorf("validate() error = %v, want nil (equal floors close the tuning gap)", err)
		}
	})

	t.Run("zero candidate floor rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Matching.CandidateFloor = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error")
		}
	})
}
