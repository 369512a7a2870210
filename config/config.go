package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Matching  MatchingConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// MatchingConfig holds matcher threshold configuration
type MatchingConfig struct {
	// AcceptanceFloor: matches must score strictly above this to be accepted
	// into a reconciled list.
	AcceptanceFloor float64 `mapstructure:"acceptance_floor"`
	// CandidateFloor: fuzzy candidates must score strictly above this to be
	// considered at all. Kept below the acceptance floor on purpose, so the
	// gap can be tuned without code changes.
	CandidateFloor     float64 `mapstructure:"candidate_floor"`
	EnableDebugLogging bool    `mapstructure:"enable_debug_logging"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP float64 `mapstructure:"per_ip"` // requests per second
	Burst int     `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shopstation/")

	v.SetEnvPrefix("SHOPSTATION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional - env vars and defaults are enough
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("matching.acceptance_floor", 0.6)
	v.SetDefault("matching.candidate_floor", 0.5)
	v.SetDefault("matching.enable_debug_logging", false)

	v.SetDefault("cache.ttl", "1h")

	v.SetDefault("ratelimit.per_ip", 10.0)
	v.SetDefault("ratelimit.burst", 20)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Matching.AcceptanceFloor <= 0 || config.Matching.AcceptanceFloor >= 1 {
		return fmt.Errorf("matching acceptance floor must be in (0, 1), got: %v", config.Matching.AcceptanceFloor)
	}

	if config.Matching.CandidateFloor <= 0 || config.Matching.CandidateFloor >= 1 {
		return fmt.Errorf("matching candidate floor must be in (0, 1), got: %v", config.Matching.CandidateFloor)
	}

	if config.Matching.CandidateFloor > config.Matching.AcceptanceFloor {
		return fmt.Errorf("candidate floor (%v) must not exceed acceptance floor (%v)",
			config.Matching.CandidateFloor, config.Matching.AcceptanceFloor)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit per_ip must be positive, got: %v", config.RateLimit.PerIP)
	}

	return nil
}
