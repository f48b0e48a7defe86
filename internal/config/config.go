package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Shift strategies understood by the position store
const (
	ShiftBulk     = "bulk"
	ShiftStepwise = "stepwise"
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Ordering OrderingConfig `yaml:"ordering"`
	Logging  LoggingConfig  `yaml:"logging"`
	Theme    ColorScheme    `yaml:"theme"`
}

// DatabaseConfig locates and tunes the SQLite store
type DatabaseConfig struct {
	Path          string `yaml:"path"`
	BusyTimeoutMs int    `yaml:"busy_timeout_ms"`
}

// OrderingConfig selects how position ranges are renumbered
type OrderingConfig struct {
	ShiftStrategy string `yaml:"shift_strategy"`
}

// LoggingConfig controls the slog handler
type LoggingConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// No config directory; defaults and environment only
		return finish(&Config{})
	}
	return LoadFile(configPath)
}

// LoadFile loads config from an explicit path, falling back to defaults
// when the file does not exist
func LoadFile(configPath string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
	}

	return finish(&cfg)
}

// finish fills missing values with defaults, applies CARDSTACK_* overrides
// on top and validates the result. Environment values win over defaults,
// including an explicit zero.
func finish(cfg *Config) (*Config, error) {
	cfg.applyDefaults()
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Validate rejects values the store cannot work with
func (c *Config) Validate() error {
	switch c.Ordering.ShiftStrategy {
	case ShiftBulk, ShiftStepwise:
	default:
		return fmt.Errorf("unknown shift_strategy %q (must be: %s, %s)",
			c.Ordering.ShiftStrategy, ShiftBulk, ShiftStepwise)
	}
	if c.Database.BusyTimeoutMs < 0 {
		return fmt.Errorf("busy_timeout_ms cannot be negative, got %d", c.Database.BusyTimeoutMs)
	}
	return nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "cardstack", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "cardstack", "config.yaml"), nil
}

// dataDir is where the database and logs live by default
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cardstack"
	}
	return filepath.Join(home, ".cardstack")
}

// applyEnv lets CARDSTACK_* variables override file values
func applyEnv(c *Config) error {
	if v := os.Getenv("CARDSTACK_DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("CARDSTACK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CARDSTACK_SHIFT_STRATEGY"); v != "" {
		c.Ordering.ShiftStrategy = strings.ToLower(v)
	}
	if v := os.Getenv("CARDSTACK_BUSY_TIMEOUT_MS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CARDSTACK_BUSY_TIMEOUT_MS %q: %w", v, err)
		}
		c.Database.BusyTimeoutMs = parsed
	}
	return nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(dataDir(), "cards.db")
	}
	if c.Database.BusyTimeoutMs == 0 {
		c.Database.BusyTimeoutMs = 5000
	}
	if c.Ordering.ShiftStrategy == "" {
		c.Ordering.ShiftStrategy = ShiftBulk
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Dir == "" {
		c.Logging.Dir = filepath.Join(dataDir(), "logs")
	}
	c.Theme.ApplyDefaults()
}
