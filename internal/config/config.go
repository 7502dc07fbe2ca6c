package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file name.
const FileName = "track2success.yaml"

// Config represents the top-level track2success.yaml configuration.
type Config struct {
	Ledger  LedgerConfig  `yaml:"ledger"`
	Reports ReportsConfig `yaml:"reports"`
}

// LedgerConfig locates the session ledger file.
type LedgerConfig struct {
	File string `yaml:"file"`
}

// ReportsConfig controls where and how reports are written.
type ReportsConfig struct {
	Dir      string `yaml:"dir"`
	Currency string `yaml:"currency"`
}

// Load reads a track2success.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			File: "ledger.csv",
		},
		Reports: ReportsConfig{
			Dir:      "reports",
			Currency: "USD",
		},
	}
}
