// Package profile holds the process configuration for the smartdate server
// and CLI.
package profile

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/hrygo/smartdate/locale"
)

// Profile is the configuration to start the server or CLI.
type Profile struct {
	// Mode can be "prod" or "dev"
	Mode string
	// Addr is the binding address for the HTTP server
	Addr string
	// Port is the binding port for the HTTP server
	Port int
	// Version is the current version
	Version string

	// DefaultFormat is the target format assumed when a request omits one
	DefaultFormat string
	// DefaultLocale selects the locale record when a request omits one
	DefaultLocale string

	// CacheCapacity bounds the result cache entry count
	CacheCapacity int
	// CacheTTL bounds the result cache entry age
	CacheTTL time.Duration

	// MaxConcurrentResolves bounds in-flight resolves in the HTTP service
	MaxConcurrentResolves int64
	// RateLimitPerSecond throttles the HTTP API; 0 disables the limiter
	RateLimitPerSecond float64
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// getEnvOrDefault returns the environment variable value or the default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FromEnv loads configuration from SMARTDATE_* environment variables.
func (p *Profile) FromEnv() {
	p.Mode = getEnvOrDefault("SMARTDATE_MODE", p.Mode)
	p.Addr = getEnvOrDefault("SMARTDATE_ADDR", p.Addr)
	if v := os.Getenv("SMARTDATE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			p.Port = port
		}
	}
	p.DefaultFormat = getEnvOrDefault("SMARTDATE_FORMAT", p.DefaultFormat)
	p.DefaultLocale = getEnvOrDefault("SMARTDATE_LOCALE", p.DefaultLocale)
	if v := os.Getenv("SMARTDATE_CACHE_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.CacheCapacity = n
		}
	}
	if v := os.Getenv("SMARTDATE_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			p.CacheTTL = d
		}
	}
	if v := os.Getenv("SMARTDATE_RATE_LIMIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			p.RateLimitPerSecond = f
		}
	}
}

// Default returns a profile with the documented defaults applied.
func Default() *Profile {
	return &Profile{
		Mode:                  "dev",
		Addr:                  "",
		Port:                  8230,
		DefaultFormat:         "yyyy-MM-dd",
		DefaultLocale:         string(locale.EnUS),
		CacheCapacity:         500,
		CacheTTL:              5 * time.Minute,
		MaxConcurrentResolves: 32,
		RateLimitPerSecond:    50,
	}
}

// Validate normalizes the profile and rejects unusable values.
func (p *Profile) Validate() error {
	if p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "dev"
	}
	if p.Port < 0 || p.Port > 65535 {
		return errors.Errorf("invalid port %d", p.Port)
	}
	if p.DefaultFormat == "" {
		p.DefaultFormat = "yyyy-MM-dd"
	}
	if p.DefaultLocale == "" {
		p.DefaultLocale = string(locale.EnUS)
	}
	if p.CacheCapacity <= 0 {
		p.CacheCapacity = 500
	}
	if p.CacheTTL <= 0 {
		p.CacheTTL = 5 * time.Minute
	}
	if p.MaxConcurrentResolves <= 0 {
		p.MaxConcurrentResolves = 32
	}
	if p.RateLimitPerSecond < 0 {
		return errors.Errorf("invalid rate limit %f", p.RateLimitPerSecond)
	}
	return nil
}
