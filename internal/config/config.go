// Package config holds orderscope configuration: search tuning, mock data
// settings, UI defaults, and logging.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all orderscope configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	Search  SearchConfig  `yaml:"search"`
	Data    DataConfig    `yaml:"data"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig tunes the matcher and the debouncer.
type SearchConfig struct {
	// DebounceDelay is the pause after the last keystroke before the query
	// takes effect, e.g. "300ms".
	DebounceDelay string `yaml:"debounce_delay"`

	// Sensitivity is the fuzzy dissimilarity threshold on [0,1].
	Sensitivity float64 `yaml:"sensitivity"`

	// MinQueryLength is the shortest query matched fuzzily.
	MinQueryLength int `yaml:"min_query_length"`

	// PaymentPresets are the minimum-payment thresholds offered by the UI.
	PaymentPresets []float64 `yaml:"payment_presets"`
}

// Delay parses DebounceDelay, falling back to the default on bad input.
func (s SearchConfig) Delay() time.Duration {
	d, err := time.ParseDuration(s.DebounceDelay)
	if err != nil || d <= 0 {
		return 300 * time.Millisecond
	}
	return d
}

// DataConfig controls mock data generation.
type DataConfig struct {
	OrderCount int   `yaml:"order_count"`
	Seed       int64 `yaml:"seed"`
}

// UIConfig holds presentation defaults.
type UIConfig struct {
	GroupByStatus bool `yaml:"group_by_status"`
	DarkMode      bool `yaml:"dark_mode"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "orderscope",
		Version: "1.0.0",

		Search: SearchConfig{
			DebounceDelay:  "300ms",
			Sensitivity:    0.3,
			MinQueryLength: 2,
			PaymentPresets: []float64{0, 75, 100, 150},
		},

		Data: DataConfig{
			OrderCount: 120,
			Seed:       42,
		},

		UI: UIConfig{
			GroupByStatus: false,
			DarkMode:      false,
		},

		Logging: LoggingConfig{
			Level: "info",
			File:  "orderscope.log",
		},
	}
}

// Load loads configuration from a YAML file, applying defaults for anything
// unset and environment overrides on top.
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

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets the environment win over the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ORDERSCOPE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ORDERSCOPE_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("ORDERSCOPE_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Data.Seed = seed
		}
	}
	if v := os.Getenv("ORDERSCOPE_DEBOUNCE_DELAY"); v != "" {
		if _, err := time.ParseDuration(v); err == nil {
			c.Search.DebounceDelay = v
		}
	}
	if v := os.Getenv("ORDERSCOPE_DARK_MODE"); v == "1" {
		c.UI.DarkMode = true
	}
}
