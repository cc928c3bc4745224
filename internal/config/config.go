package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/labops/internal/core/schedule"
)

// Config represents the flat labops configuration.
type Config struct {
	Version        string `json:"version"`
	Operator       string `json:"operator,omitempty"`         // default reporter for returns and shift reports
	DefaultShift   string `json:"default_shift,omitempty"`    // "day" or "night"
	SplitRulesPath string `json:"split_rules_path,omitempty"` // YAML override for the compound-test table
	DatabasePath   string `json:"database_path,omitempty"`    // overrides ~/.labops/labops.db
}

// LoadConfig reads .labops/config.json from the specified directory.
// Resolution order: cwd only (no home fallback).
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".labops", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory.
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, ".labops")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create .labops dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(cfgDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Shift resolves the configured default shift, falling back to day.
func (c *Config) Shift() string {
	if c != nil && c.DefaultShift == schedule.ShiftNight {
		return schedule.ShiftNight
	}
	return schedule.ShiftDay
}
