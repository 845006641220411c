package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionConfig_DefaultTTL(t *testing.T) {
	t.Setenv("SESSION_JWT_SECRET", "test-secret-key")
	t.Setenv("SESSION_TTL_HOURS", "")

	cfg, err := NewSessionConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "test-secret-key", cfg.Secret)
	assert.Equal(t, 24, cfg.TTLHours, "should use default TTL of 24 hours")
}

func TestNewSessionConfig_CustomTTL(t *testing.T) {
	tests := []struct {
		name     string
		ttl      string
		expected int
		wantErr  bool
	}{
		{name: "custom 12 hours", ttl: "12", expected: 12},
		{name: "custom 48 hours", ttl: "48", expected: 48},
		{name: "minimum 1 hour", ttl: "1", expected: 1},
		{name: "zero hours rejected", ttl: "0", wantErr: true},
		{name: "negative rejected", ttl: "-3", wantErr: true},
		{name: "non-numeric rejected", ttl: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SESSION_JWT_SECRET", "test-secret-key")
			t.Setenv("SESSION_TTL_HOURS", tt.ttl)

			cfg, err := NewSessionConfig()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.TTLHours)
		})
	}
}

func TestNewSessionConfig_MissingSecret(t *testing.T) {
	t.Setenv("SESSION_JWT_SECRET", "")

	cfg, err := NewSessionConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SESSION_JWT_SECRET")
}
