// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultPort is used when neither the config file nor PORT specify one.
const DefaultPort = 8080

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or come from the
// environment.
type Config struct {
	APIKey  string `json:"api_key,omitempty"` // Gemini API key
	Model   string `json:"model,omitempty"`   // Gemini model override
	Port    int    `json:"port,omitempty"`    // HTTP listen port
	Verbose bool   `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables alone.
func FromEnv() (*Config, error) {
	cfg := &Config{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  os.Getenv("GEMINI_MODEL"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	return cfg, nil
}

// MergeWithEnv fills empty fields from the environment. File values win;
// the environment is the fallback.
func (c *Config) MergeWithEnv() (*Config, error) {
	env, err := FromEnv()
	if err != nil {
		return nil, err
	}

	result := *c
	if result.APIKey == "" {
		result.APIKey = env.APIKey
	}
	if result.Model == "" {
		result.Model = env.Model
	}
	if result.Port == 0 {
		result.Port = env.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}

	return &result, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("config error: Gemini API key is required (set GEMINI_API_KEY)")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got: %d", c.Port)
	}
	return nil
}
