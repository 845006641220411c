// Package config provides session token configuration functionality.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// SessionConfig holds configuration for session token generation and validation.
type SessionConfig struct {
	Secret   string
	TTLHours int
}

// NewSessionConfig creates a new session configuration from environment variables.
// It reads SESSION_JWT_SECRET (required) and SESSION_TTL_HOURS (default: 24).
func NewSessionConfig() (*SessionConfig, error) {
	secret := os.Getenv("SESSION_JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_JWT_SECRET is required but not set")
	}

	ttlStr := os.Getenv("SESSION_TTL_HOURS")
	if ttlStr == "" {
		ttlStr = "24" // default
	}

	ttlHours, err := strconv.Atoi(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_HOURS: %v", err)
	}

	config := &SessionConfig{
		Secret:   secret,
		TTLHours: ttlHours,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *SessionConfig) normalize() error {
	if c.Secret == "" {
		return fmt.Errorf("SESSION_JWT_SECRET cannot be empty")
	}
	if c.TTLHours < 1 {
		return fmt.Errorf("SESSION_TTL_HOURS must be at least 1 hour, got: %d", c.TTLHours)
	}
	return nil
}
