package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the complete besttrade configuration
type Config struct {
	Data    DataConfig    `json:"data" yaml:"data"`
	Report  ReportConfig  `json:"report" yaml:"report"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// DataConfig describes where price series are loaded from
type DataConfig struct {
	Path   string `json:"path" yaml:"path"`
	Format string `json:"format" yaml:"format"` // "auto", "graph" or "csv"
	Hours  int    `json:"hours" yaml:"hours"`   // samples per symbol in graph files
}

// ReportConfig controls console output
type ReportConfig struct {
	Delay string `json:"delay" yaml:"delay"` // pause between series lines, e.g. "1s"
}

// ParseDelay converts the delay string to time.Duration
func (rc ReportConfig) ParseDelay() (time.Duration, error) {
	if rc.Delay == "" {
		return 0, nil
	}
	return time.ParseDuration(rc.Delay)
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level       string `json:"level" yaml:"level"`
	Development bool   `json:"development" yaml:"development"`
}

// LoadFromFile loads configuration from a file (JSON or YAML), applies
// environment overrides and validates the result.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Load returns the configuration at path, or the defaults when path is
// empty. A .env file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	if path != "" {
		return LoadFromFile(path)
	}

	cfg := Default()
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadDotEnv loads path into the environment when it exists. Variables that
// are already set keep their values.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from BESTTRADE_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("BESTTRADE_DATA"); v != "" {
		c.Data.Path = v
	}
	if v := os.Getenv("BESTTRADE_JOURNAL_TYPE"); v != "" {
		c.Journal.Type = v
	}
	if v := os.Getenv("BESTTRADE_JOURNAL_PATH"); v != "" {
		c.Journal.Path = v
	}
	if v := os.Getenv("BESTTRADE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Data.Format {
	case "auto", "graph", "csv":
	default:
		return fmt.Errorf("data.format must be 'auto', 'graph' or 'csv'")
	}
	if c.Data.Hours <= 0 {
		return fmt.Errorf("data.hours must be positive")
	}
	d, err := c.Report.ParseDelay()
	if err != nil {
		return fmt.Errorf("report.delay: %w", err)
	}
	if d < 0 {
		return fmt.Errorf("report.delay must not be negative")
	}
	switch c.Journal.Type {
	case "none":
	case "csv", "sqlite":
		if c.Journal.Path == "" {
			return fmt.Errorf("journal.path required for %s type", c.Journal.Type)
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Path:   "./graph.txt",
			Format: "auto",
			Hours:  16,
		},
		Report: ReportConfig{
			Delay: "0s",
		},
		Journal: JournalConfig{
			Type: "sqlite",
			Path: "./besttrade.sqlite",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
