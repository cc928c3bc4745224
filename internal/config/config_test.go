package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "labops-config")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg := &Config{
		Version:      "1.0",
		Operator:     "Kim",
		DefaultShift: "night",
	}
	if err := SaveConfig(tmpDir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(tmpDir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Operator != "Kim" {
		t.Errorf("Operator = %q, want Kim", loaded.Operator)
	}
	if loaded.DefaultShift != "night" {
		t.Errorf("DefaultShift = %q, want night", loaded.DefaultShift)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "labops-config")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	if _, err := LoadConfig(tmpDir); err == nil {
		t.Error("expected error for missing config")
	}
}

func TestLoadConfigIgnoresUnknownFields(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "labops-config")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfgDir := filepath.Join(tmpDir, ".labops")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatalf("failed to create .labops dir: %v", err)
	}
	raw := `{"version":"1.0","operator":"Priya","legacy_field":true}`
	if err := os.WriteFile(filepath.Join(cfgDir, "config.json"), []byte(raw), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(tmpDir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Operator != "Priya" {
		t.Errorf("Operator = %q, want Priya", cfg.Operator)
	}
}

func TestShiftFallback(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *Config
		expected string
	}{
		{"nil config", nil, "day"},
		{"empty shift", &Config{}, "day"},
		{"night shift", &Config{DefaultShift: "night"}, "night"},
		{"bogus shift", &Config{DefaultShift: "noon"}, "day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Shift(); got != tt.expected {
				t.Errorf("Shift() = %q, want %q", got, tt.expected)
			}
		})
	}
}
