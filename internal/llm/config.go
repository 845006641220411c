// Package llm provides the Gemini client abstraction used by the model gateway.
package llm

// DefaultModel is the model used for analysis, insights, and chat.
const DefaultModel = "gemini-2.5-flash"

// Sampling temperatures are fixed constants, not user-configurable.
// Analysis tolerates a little variance; insights favor factual stability.
const (
	AnalysisTemperature float32 = 0.5
	InsightsTemperature float32 = 0.3
)

// Config holds the model configuration for the application
type Config struct {
	Model string
}

// DefaultConfig returns the default Gemini configuration
func DefaultConfig() *Config {
	return &Config{Model: DefaultModel}
}

// ModelName returns the configured model, falling back to the default.
func (c *Config) ModelName() string {
	if c == nil || c.Model == "" {
		return DefaultModel
	}
	return c.Model
}
