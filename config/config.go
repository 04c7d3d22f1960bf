// SPDX-License-Identifier: MIT

// Package config reads process configuration from BAZI_* environment
// variables.
//
//	BAZI_LOG_LEVEL         zap level name                 (info)
//	BAZI_CACHE_SIZE        result cache capacity, 0 = off (256)
//	BAZI_DEFAULT_SCENARIO  romance|business|friendship|family (romance)
//	BAZI_OUTPUT            json|yaml                      (json)
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"

	"github.com/taufulou/bazi-app-sub000/compat"
)

// ErrInvalidConfig indicates a value that parsed but is out of range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Output is a result encoding.
type Output string

const (
	OutputJSON Output = "json"
	OutputYAML Output = "yaml"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Output) UnmarshalText(text []byte) error {
	v, err := ParseOutput(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// ParseOutput accepts "json" or "yaml", case-insensitively.
func ParseOutput(s string) (Output, error) {
	switch Output(strings.ToLower(strings.TrimSpace(s))) {
	case OutputJSON:
		return OutputJSON, nil
	case OutputYAML:
		return OutputYAML, nil
	default:
		return "", fmt.Errorf("%w: output %q", ErrInvalidConfig, s)
	}
}

// Config is the process configuration.
type Config struct {
	LogLevel        zapcore.Level   `env:"BAZI_LOG_LEVEL" envDefault:"info"`
	CacheSize       int             `env:"BAZI_CACHE_SIZE" envDefault:"256"`
	DefaultScenario compat.Scenario `env:"BAZI_DEFAULT_SCENARIO" envDefault:"romance"`
	Output          Output          `env:"BAZI_OUTPUT" envDefault:"json"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.CacheSize < 0 {
		return Config{}, fmt.Errorf("%w: BAZI_CACHE_SIZE %d", ErrInvalidConfig, cfg.CacheSize)
	}
	return cfg, nil
}
