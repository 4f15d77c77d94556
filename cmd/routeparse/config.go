package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config controls the routeparse run. Flags override file values.
type Config struct {
	Workers       int    `yaml:"workers" validate:"min=0,max=256"`
	LogLevel      string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	TreesOut      string `yaml:"trees_out"`
	CongestionOut string `yaml:"congestion_out"`
	ShowStats     bool   `yaml:"show_stats"`
	ShowConflicts bool   `yaml:"show_conflicts"`
	ShowMetrics   bool   `yaml:"show_metrics"`
}

func defaultConfig() *Config {
	return &Config{
		Workers:  1,
		LogLevel: "info",
	}
}

// loadConfig reads an optional YAML config file and validates the
// result.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
