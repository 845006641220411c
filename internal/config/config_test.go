package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"api_key": "test-key",
		"model": "gemini-2.5-flash",
		"port": 9090,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("PORT", "7000")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 7000, cfg.Port)
}

func TestFromEnv_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg, err := FromEnv()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid PORT")
}

func TestMergeWithEnv_FileWins(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("PORT", "7000")

	cfg := &Config{APIKey: "file-key"}
	merged, err := cfg.MergeWithEnv()
	require.NoError(t, err)

	assert.Equal(t, "file-key", merged.APIKey)
	assert.Equal(t, 7000, merged.Port)
}

func TestMergeWithEnv_DefaultPort(t *testing.T) {
	t.Setenv("PORT", "")

	cfg := &Config{APIKey: "key"}
	merged, err := cfg.MergeWithEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, merged.Port)
}

func TestValidate_MissingAPIKey(t *testing.T) {
	cfg := &Config{Port: 8080}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestValidate_BadPort(t *testing.T) {
	cfg := &Config{APIKey: "key", Port: 70000}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{APIKey: "key", Port: 8080}

	assert.NoError(t, cfg.Validate())
}
