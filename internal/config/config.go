package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Tool         string        `yaml:"tool"`
	Output       string        `yaml:"output"`
	PollInterval time.Duration `yaml:"poll_interval"`
	Notify       bool          `yaml:"notify"`
	Journal      bool          `yaml:"journal"`
	LogLevel     string        `yaml:"log_level"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Tool:         "xsetwacom",
		Output:       "next",
		PollInterval: time.Second,
		Notify:       true,
		Journal:      true,
		LogLevel:     "info",
	}
}

// ConfigDir returns the config directory path.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tabletswitch")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tabletswitch")
}

// ConfigPath returns the config file path.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Load reads the default config file, returning defaults if it doesn't exist.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config file at path, returning defaults if it doesn't exist.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to the default path.
func Save(cfg *Config) error {
	return SaveTo(cfg, ConfigPath())
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Tool) == "" {
		return fmt.Errorf("tool must not be empty")
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("output must not be empty")
	}
	if c.PollInterval < 100*time.Millisecond {
		return fmt.Errorf("poll_interval %s is below 100ms", c.PollInterval)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Keys lists the settable config keys.
var Keys = []string{"tool", "output", "poll_interval", "notify", "journal", "log_level"}

// Set assigns a single key from its string form and validates the result.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "tool":
		next.Tool = value
	case "output":
		next.Output = value
	case "poll_interval":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("poll_interval: %w", err)
		}
		next.PollInterval = d
	case "notify", "journal":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if key == "notify" {
			next.Notify = b
		} else {
			next.Journal = b
		}
	case "log_level":
		next.LogLevel = value
	default:
		return fmt.Errorf("unknown key %q (valid: %s)", key, strings.Join(Keys, ", "))
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}
