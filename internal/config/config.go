// Package config loads and persists the tradesense configuration file.
//
// Configuration lives at ~/.tradesense/config.yaml. Values resolve in
// order: built-in defaults, then the config file, then TRADESENSE_*
// environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigDir overrides the configuration directory, mainly for tests.
const EnvConfigDir = "TRADESENSE_CONFIG_DIR"

// Environment variable overrides.
const (
	EnvLogLevel   = "TRADESENSE_LOG_LEVEL"
	EnvLogFormat  = "TRADESENSE_LOG_FORMAT"
	EnvJournalDir = "TRADESENSE_JOURNAL_DIR"
)

// configFilePerm keeps the config file private to the user.
const configFilePerm = 0o600

// Config is the root of the YAML configuration.
type Config struct {
	Journal JournalConfig `yaml:"journal"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// JournalConfig locates the trade journal on disk.
type JournalConfig struct {
	// Dir is the directory holding one JSON journal file per account.
	Dir string `yaml:"dir"`

	// DefaultAccount receives trades that name no account.
	DefaultAccount string `yaml:"default_account"`
}

// LoggingConfig mirrors logging.Config in YAML form.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// OutputConfig selects the non-interactive rendering defaults.
type OutputConfig struct {
	// Format is "table" or "json".
	Format string `yaml:"format"`
}

// Dir returns the configuration directory, honoring EnvConfigDir.
func Dir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tradesense"
	}
	return filepath.Join(home, ".tradesense")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Journal: JournalConfig{
			Dir:            filepath.Join(Dir(), "journal"),
			DefaultAccount: "default",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Output: OutputConfig{
			Format: "table",
		},
	}
}

// Load resolves the effective configuration: defaults, overlaid by the
// config file when present, then environment overrides. A missing config
// file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	path := Path()
	if _, err := os.Stat(path); err == nil {
		if err := ShallowMergeYAML(cfg, path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvJournalDir); v != "" {
		c.Journal.Dir = v
	}
}

// Save writes the configuration to the config file, creating the
// directory as needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(Dir(), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(Path(), data, configFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
