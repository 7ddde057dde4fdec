package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Overrides are scenario values taken from the environment
type Overrides struct {
	Seed           *int64 `env:"EPISIM_SEED"`
	MaxDays        *int   `env:"EPISIM_MAX_DAYS"`
	PopulationSize *int   `env:"EPISIM_POPULATION_SIZE"`
	LogLevel       string `env:"EPISIM_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads overrides from environment variables.
func ParseEnv() (Overrides, error) {
	var o Overrides
	if err := env.Parse(&o); err != nil {
		return o, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}

// Apply copies the set overrides onto cfg
func (o Overrides) Apply(cfg *Config) {
	if o.Seed != nil {
		cfg.Seed = o.Seed
	}
	if o.MaxDays != nil {
		cfg.MaxDays = *o.MaxDays
	}
	if o.PopulationSize != nil {
		cfg.PopulationSize = *o.PopulationSize
	}
}
