// Package config holds the explicit pipeline configuration that replaces
// implicit per-session dashboard state. It shapes presentation only; the
// normalization rules never read it.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level spendview.yaml configuration.
type Config struct {
	Brand   BrandConfig   `yaml:"brand"`
	Display DisplayConfig `yaml:"display"`
	Filters FiltersConfig `yaml:"filters,omitempty"`
	Export  ExportConfig  `yaml:"export"`
}

// BrandConfig identifies who the reports are produced for.
type BrandConfig struct {
	Name string `yaml:"name"`
}

// DisplayConfig controls presentation-side rendering.
type DisplayConfig struct {
	Timezone string `yaml:"timezone"` // IANA name, e.g. "Australia/Sydney"
}

// FiltersConfig holds saved presentation filters.
type FiltersConfig struct {
	SalesTeamKeywords []string `yaml:"sales_team_keywords,omitempty"`
}

// ExportConfig controls where generated CSVs land.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// Load reads a spendview.yaml file from disk.
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

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Brand:   BrandConfig{Name: "spendview"},
		Display: DisplayConfig{Timezone: "UTC"},
		Export:  ExportConfig{Dir: "exports"},
	}
}

// Location resolves the configured display timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Display.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Display.Timezone)
	if err != nil {
		return nil, fmt.Errorf("resolving timezone %q: %w", c.Display.Timezone, err)
	}
	return loc, nil
}
