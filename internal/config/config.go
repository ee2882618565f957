package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level bankist.yaml configuration.
type Config struct {
	Bank       BankConfig       `yaml:"bank"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	Seed       SeedConfig       `yaml:"seed,omitempty"`
}

// BankConfig identifies the demo bank for display purposes.
type BankConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// ThresholdsConfig controls the ledger policy knobs.
type ThresholdsConfig struct {
	// MinInterestCredit is the smallest per-deposit interest that is credited.
	MinInterestCredit float64 `yaml:"min_interest_credit"`
	// LoanMovementRatio is the fraction of a loan some movement must reach.
	LoanMovementRatio float64 `yaml:"loan_movement_ratio"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// LogConfig controls structured logging output.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// SeedConfig points at an optional accounts CSV; empty means built-in demo data.
type SeedConfig struct {
	Path string `yaml:"path,omitempty"`
}

// Load reads a bankist.yaml file from disk.
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

// Default returns a Config matching the original demo's constants.
func Default() *Config {
	return &Config{
		Bank: BankConfig{
			Name:     "Bankist",
			Currency: "EUR",
		},
		Thresholds: ThresholdsConfig{
			MinInterestCredit: 1.0,
			LoanMovementRatio: 0.1,
		},
		Server: ServerConfig{
			Listen: ":8080",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// ApplyEnv overlays environment variables onto cfg. Variables win over the
// file so deployments can retarget without editing it.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("BANKIST_LISTEN"); v != "" {
		c.Server.Listen = v
	}
	if v := os.Getenv("BANKIST_SEED"); v != "" {
		c.Seed.Path = v
	}
	if v := os.Getenv("BANKIST_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("BANKIST_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
}

// LoadOrDefault reads path when it exists and falls back to defaults
// otherwise, applying env overrides in both cases.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		cfg.ApplyEnv()
		return cfg, nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}
