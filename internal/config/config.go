package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"phonefield/internal/directory"
	apperrors "phonefield/internal/errors"
)

// Config represents the application configuration structure.
// It defines the default country, the candidate-list filter, and demo
// presentation settings.
type Config struct {
	DefaultCountry string `yaml:"default_country"` // ISO2 code the field starts on
	Countries      struct {
		Allowed   []string `yaml:"allowed"`   // keep only these (globs over ISO2 allowed)
		Excluded  []string `yaml:"excluded"`  // drop these (globs over ISO2 allowed)
		Preferred []string `yaml:"preferred"` // exact codes pulled to the front, in order
	} `yaml:"countries"`
	Settings struct {
		Debug   bool   `yaml:"debug"`    // Enable debug logging
		LogFile string `yaml:"log_file"` // Where TUI runs send their logs
	} `yaml:"settings"`
	Theme struct {
		Primary string `yaml:"primary"` // Primary color for titles and the selection
		Valid   string `yaml:"valid"`   // Color of the validity hint when the number is complete
		Invalid string `yaml:"invalid"` // Color of the validity hint otherwise
		Muted   string `yaml:"muted"`   // Help text and de-emphasized entries
	} `yaml:"theme"`
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

// Filter builds the directory filter from the configured country lists.
func (c *Config) Filter() directory.Filter {
	return directory.Filter{
		Allowed:   c.Countries.Allowed,
		Excluded:  c.Countries.Excluded,
		Preferred: c.Countries.Preferred,
	}
}

// DefaultPath returns the default config file location
// (~/.config/phonefield/config.yaml).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "phonefield", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if tempCfg.DefaultCountry != "" {
		cfg.DefaultCountry = tempCfg.DefaultCountry
	}
	if len(tempCfg.Countries.Allowed) > 0 {
		cfg.Countries.Allowed = tempCfg.Countries.Allowed
	}
	if len(tempCfg.Countries.Excluded) > 0 {
		cfg.Countries.Excluded = tempCfg.Countries.Excluded
	}
	if len(tempCfg.Countries.Preferred) > 0 {
		cfg.Countries.Preferred = tempCfg.Countries.Preferred
	}
	cfg.Settings.Debug = tempCfg.Settings.Debug
	if tempCfg.Settings.LogFile != "" {
		cfg.Settings.LogFile = tempCfg.Settings.LogFile
	}
	if tempCfg.Theme.Primary != "" {
		cfg.Theme.Primary = tempCfg.Theme.Primary
	}
	if tempCfg.Theme.Valid != "" {
		cfg.Theme.Valid = tempCfg.Theme.Valid
	}
	if tempCfg.Theme.Invalid != "" {
		cfg.Theme.Invalid = tempCfg.Theme.Invalid
	}
	if tempCfg.Theme.Muted != "" {
		cfg.Theme.Muted = tempCfg.Theme.Muted
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot work at all.
// Unknown codes in the filter lists are not errors (they may be globs, and
// a miss only narrows the list); a default country the directory has never
// heard of is.
func (c *Config) Validate() error {
	if c.DefaultCountry == "" {
		return apperrors.NewConfigError("must be set", "default_country", apperrors.InvalidConfig, nil)
	}
	if _, ok := directory.Get(c.DefaultCountry); !ok {
		return apperrors.NewConfigError(fmt.Sprintf("unknown country %q", c.DefaultCountry), "default_country", apperrors.InvalidConfig, nil)
	}
	return nil
}

// Save writes the configuration to the given path, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}
	cfg.DefaultCountry = "US"
	cfg.Settings.Debug = false
	cfg.Settings.LogFile = ""
	cfg.Theme.Primary = "#7B61FF"
	cfg.Theme.Valid = "#73F59F"
	cfg.Theme.Invalid = "#F56F6F"
	cfg.Theme.Muted = "#666666"
	return cfg
}
