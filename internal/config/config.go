// Package config loads the TOML configuration file. Score deltas are policy,
// not engine logic; they live here so an installation can retune them without
// touching code.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmagro/tracao/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file name under the tracao home directory.
const FileName = "config.toml"

type Config struct {
	DBPath             string         `toml:"db_path"`
	TractionWindowDays int            `toml:"traction_window_days"`
	LogUseCases        bool           `toml:"log_use_cases"`
	DeepWork           DeepWorkConfig `toml:"deep_work"`
	Score              ScoreConfig    `toml:"score"`
}

type DeepWorkConfig struct {
	MinimumBlockMinutes int `toml:"minimum_block_minutes"`
}

// ScoreConfig maps task outcomes to signed score deltas.
type ScoreConfig struct {
	OnTime       int `toml:"on_time"`
	Late         int `toml:"late"`
	Postponed    int `toml:"postponed"`
	NotConfirmed int `toml:"not_confirmed"`
}

// DeltaFor returns the configured delta for an outcome.
func (s ScoreConfig) DeltaFor(o domain.Outcome) int {
	switch o {
	case domain.OutcomeOnTime:
		return s.OnTime
	case domain.OutcomeLate:
		return s.Late
	case domain.OutcomePostponed:
		return s.Postponed
	case domain.OutcomeNotConfirmed:
		return s.NotConfirmed
	default:
		return 0
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TractionWindowDays: 14,
		DeepWork: DeepWorkConfig{
			MinimumBlockMinutes: 45,
		},
		Score: ScoreConfig{
			OnTime:       10,
			Late:         3,
			Postponed:    -5,
			NotConfirmed: -10,
		},
	}
}

// Load reads the config at path, merged over defaults. A missing file is not
// an error; defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath resolves the config location: TRACAO_CONFIG wins, otherwise
// ~/.tracao/config.toml.
func DefaultPath() (string, error) {
	if p := os.Getenv("TRACAO_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".tracao", FileName), nil
}
