// Package config holds the benchmark harness configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all harness configuration.
type Config struct {
	// Model API configuration
	Groq GroqConfig `yaml:"groq"`

	// Benchmark run settings
	Run RunConfig `yaml:"run"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// GroqConfig configures the model API client.
type GroqConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// RunConfig configures how benchmark runs execute.
type RunConfig struct {
	// Directory run artifacts are written under
	OutDir string `yaml:"out_dir"`

	// Optional directory of <test>.txt query files overriding the
	// embedded batches
	TestsDir string `yaml:"tests_dir"`

	// SQLite database recording run results
	DatabasePath string `yaml:"database_path"`

	// Number of cases generated/executed at once
	Concurrency int `yaml:"concurrency"`

	// Per-program execution timeout
	ExecTimeout string `yaml:"exec_timeout"`

	// Recover a JSON object embedded in a chatty completion instead of
	// failing the case
	SalvageJSON bool `yaml:"salvage_json"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Groq: GroqConfig{
			BaseURL: "https://api.groq.com/openai/v1",
			Timeout: "5m",
		},

		Run: RunConfig{
			OutDir:       "out",
			DatabasePath: "out/scratchtest.db",
			Concurrency:  1,
			ExecTimeout:  "30s",
		},

		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; the environment is applied on top either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		c.Groq.APIKey = key
	}
}

// GroqTimeout returns the API timeout as a duration.
func (c *Config) GroqTimeout() time.Duration {
	d, err := time.ParseDuration(c.Groq.Timeout)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}

// ExecTimeout returns the per-program execution timeout as a duration.
func (c *Config) ExecTimeout() time.Duration {
	d, err := time.ParseDuration(c.Run.ExecTimeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Groq.APIKey == "" {
		return fmt.Errorf("API key not configured (set GROQ_API_KEY or groq.api_key)")
	}
	if c.Run.Concurrency < 1 {
		return fmt.Errorf("run.concurrency must be at least 1, got %d", c.Run.Concurrency)
	}
	if c.Run.OutDir == "" {
		return fmt.Errorf("run.out_dir must not be empty")
	}
	return nil
}
