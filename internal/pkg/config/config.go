package config

import (
	"fmt"
	"os"
	"strings"

	"golang-netshare/internal/adapter/infrastructure/shell"
	"golang-netshare/internal/pkg/logging"
	"golang-netshare/internal/pkg/profile"

	"gopkg.in/yaml.v3"
)

// ReportConfig controls how outcomes are printed
type ReportConfig struct {
	Color bool `yaml:"color"`
}

// Config represents the main configuration structure
type Config struct {
	Logging logging.LogConfig `yaml:"logging"`
	Profile string            `yaml:"profile"` // windows10, windows11 or auto
	Shell   shell.Config      `yaml:"shell"`
	Report  ReportConfig      `yaml:"report"`
}

// Default returns the configuration used when no config file is given
func Default() *Config {
	return &Config{
		Logging: logging.LogConfig{
			Level:  "warn",
			Format: "simple",
		},
		Profile: profile.SelectorAuto,
		Shell:   shell.DefaultConfig(),
		Report:  ReportConfig{Color: true},
	}
}

// Load loads configuration from a YAML file. Keys missing from the file keep their defaults.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	selector := strings.ToLower(strings.TrimSpace(c.Profile))
	if selector != "" && selector != profile.SelectorAuto {
		if _, err := profile.Parse(selector); err != nil {
			return fmt.Errorf("profile: %w", err)
		}
	}

	if strings.TrimSpace(c.Shell.Path) == "" {
		return fmt.Errorf("shell: path is required")
	}
	if c.Shell.Timeout < 0 {
		return fmt.Errorf("shell: timeout must not be negative")
	}

	return nil
}

// ProfileSelector returns the configured profile selector, defaulting to auto detection
func (c *Config) ProfileSelector() string {
	if strings.TrimSpace(c.Profile) == "" {
		return profile.SelectorAuto
	}
	return c.Profile
}
