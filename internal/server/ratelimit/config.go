package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// RouteLimit represents rate limiting configuration for a specific route.
type RouteLimit struct {
	Path   string        // Route path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Routes          []RouteLimit
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Routes:          DefaultRouteLimits(),
	}
}

// DefaultRouteLimits returns the default route-specific configurations.
func DefaultRouteLimits() []RouteLimit {
	return []RouteLimit{
		// Tier 1: model calls (strictest limits)
		{Path: "/analyze", Method: "POST", Limit: 20, Window: time.Hour, Burst: 3},
		{Path: "/analyze/upload", Method: "POST", Limit: 20, Window: time.Hour, Burst: 3},
		{Path: "/insights", Method: "GET", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/chat", Method: "POST", Limit: 120, Window: time.Hour, Burst: 10},

		// Tier 2: headless browser export
		{Path: "/export/", Method: "GET", Limit: 30, Window: time.Hour, Burst: 5},

		// Tier 3: session writes (moderate limits)
		{Path: "/login", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/navigate", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/jobs/", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/resources/", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},

		// Tier 4: reads - handled by default limit
		// Tier 5: health check (unlimited) - handled by special case in matcher
	}
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
