// Package config provides configuration management for the companion.
// Configuration is read from ~/.nbtutor/config.yaml with sensible defaults;
// the generation API key may instead come from the environment.
package config

// Config holds all companion configuration.
type Config struct {
	// Model is the generation model identifier.
	Model string `yaml:"model"`

	// BaseURL overrides the generation endpoint. Empty targets the OpenAI
	// API; any OpenAI-compatible server can be pointed at here.
	BaseURL string `yaml:"baseURL"`

	// APIKey is the generation credential. Usually left empty in the file
	// and supplied via the OPENAI_API_KEY environment variable instead.
	APIKey string `yaml:"apiKey"`

	// LogLevel controls logging verbosity.
	LogLevel string `yaml:"logLevel"`

	// Notebook is the document analyzed when none is given on the command
	// line.
	Notebook string `yaml:"notebook"`

	// DefaultCell is the cell index analyzed when none is given on the
	// command line.
	DefaultCell int `yaml:"defaultCell"`
}

// DefaultConfig returns a Config with default values. The notebook and cell
// defaults match the course material the companion originally shipped with.
func DefaultConfig() *Config {
	return &Config{
		Model:       "gpt-4o",
		LogLevel:    "info",
		Notebook:    "1_lab1.ipynb",
		DefaultCell: 10,
	}
}
