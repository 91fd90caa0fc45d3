// Package config loads and validates the application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the complete application configuration.
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	Ledger  LedgerConfig  `json:"ledger" yaml:"ledger"`
	Server  ServerConfig  `json:"server" yaml:"server"`
	Advisor AdvisorConfig `json:"advisor" yaml:"advisor"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// AccountConfig holds account presentation parameters. StartingBalance
// anchors the equity curve.
type AccountConfig struct {
	Currency        string  `json:"currency" yaml:"currency"`
	StartingBalance float64 `json:"starting_balance" yaml:"starting_balance"`
}

// LedgerConfig selects and locates the persistence backend.
type LedgerConfig struct {
	Backend string `json:"backend" yaml:"backend"` // "json" or "sqlite"
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// ServerConfig holds HTTP server parameters.
type ServerConfig struct {
	Host string `json:"host" yaml:"host"`
	Port int    `json:"port" yaml:"port"`
}

// AdvisorConfig holds Flux parameters. The API key is normally supplied
// via the GEMINI_API_KEY environment variable; a value here overrides
// it.
type AdvisorConfig struct {
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	Model  string `json:"model,omitempty" yaml:"model,omitempty"`
}

// ResolveAPIKey returns the configured key, falling back to the
// environment.
func (a AdvisorConfig) ResolveAPIKey() string {
	if a.APIKey != "" {
		return a.APIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}

// LoggingConfig holds logger parameters.
type LoggingConfig struct {
	Level string `json:"level" yaml:"level"`
}

// LoadFromFile loads configuration from a file, YAML first with a JSON
// fallback.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes the configuration, format chosen by extension.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
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

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.StartingBalance <= 0 {
		return fmt.Errorf("account.starting_balance must be positive")
	}
	switch c.Ledger.Backend {
	case "json":
		if c.Ledger.Path == "" {
			return fmt.Errorf("ledger.path required for json backend")
		}
	case "sqlite":
		if c.Ledger.DBPath == "" {
			return fmt.Errorf("ledger.db_path required for sqlite backend")
		}
	default:
		return fmt.Errorf("ledger.backend must be 'json' or 'sqlite'")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535")
	}
	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Currency:        "USD",
			StartingBalance: 10000,
		},
		Ledger: LedgerConfig{
			Backend: "json",
			Path:    "./axon_trades.json",
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8087,
		},
		Advisor: AdvisorConfig{
			Model: "gemini-3-flash-preview",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
