// Package config loads the intake service configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hazyhaar/intake/classify"
)

// Config holds the intake service configuration.
type Config struct {
	Server  ServerConfig          `yaml:"server"`
	Limits  LimitsConfig          `yaml:"limits"`
	Logging LoggingConfig         `yaml:"logging"`
	Intents []classify.IntentRule `yaml:"intents"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"` // HTTP listen address, e.g. ":8080"
}

type LimitsConfig struct {
	MaxBodyBytes  int64   `yaml:"max_body_bytes"`
	RatePerSecond float64 `yaml:"rate_per_second"`
	RateBurst     int     `yaml:"rate_burst"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
}

// Load reads configuration from a YAML file.
// If the file doesn't exist, it returns a default config and no error.
// A non-empty intents list replaces the built-in ruleset wholesale.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	applyDefaults(&cfg)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Limits: LimitsConfig{
			MaxBodyBytes:  1 << 20, // 1 MiB
			RatePerSecond: 10,
			RateBurst:     20,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Limits.MaxBodyBytes == 0 {
		cfg.Limits.MaxBodyBytes = 1 << 20
	}
	if cfg.Limits.RatePerSecond == 0 {
		cfg.Limits.RatePerSecond = 10
	}
	if cfg.Limits.RateBurst == 0 {
		cfg.Limits.RateBurst = 20
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

func (c *Config) validate() error {
	for i, rule := range c.Intents {
		if rule.Label == "" {
			return fmt.Errorf("intents[%d]: empty label", i)
		}
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("intents[%d] (%s): no keywords", i, rule.Label)
		}
	}
	return nil
}
