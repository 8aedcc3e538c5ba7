package cmd

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DayConfig holds per-day overrides in the config file.
type DayConfig struct {
	Input string `yaml:"input"` // input path, overrides <input_dir>/dayNN.txt
	Skip  bool   `yaml:"skip"`  // leave the day out when no --day is given
}

// Config represents the run config file.
// All top-level keys must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	InputDir string            `yaml:"input_dir"`
	Workers  int               `yaml:"workers"`
	Timeout  time.Duration     `yaml:"timeout"`
	Timings  bool              `yaml:"timings"`
	Days     map[int]DayConfig `yaml:"days"`
}

// LoadConfig parses a YAML config file. Unknown keys are rejected so that
// typos surface as errors instead of silently falling back to defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %v", c.Timeout)
	}
	for day := range c.Days {
		if day < 1 || day > 25 {
			return fmt.Errorf("days: day %d out of range [1, 25]", day)
		}
	}
	return nil
}
