package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sherine-k/episim/pkg/policy"
	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// LoadConfig loads and parses the configuration file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, err
	}

	overrides, err := ParseEnv()
	if err != nil {
		return nil, err
	}
	overrides.Apply(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Parse decodes a scenario document without validating it
func Parse(data []byte) (*Config, error) {
	var config Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// Validate checks the scenario, including the epidemic parameters
func (c *Config) Validate() error {
	return validateConfig(c)
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if _, err := config.ToSimulation(nil, nil); err != nil {
		return err
	}

	if config.MaxDays < 0 {
		return fmt.Errorf("maxDays must not be negative")
	}

	if m := config.Policies.Mask; m != nil {
		if err := validateTrigger("mask", m); err != nil {
			return err
		}
	}

	if d := config.Policies.Distancing; d != nil {
		if err := validateTrigger("distancing", d); err != nil {
			return err
		}
	}

	if v := config.Policies.Vaccination; v != nil {
		if v.StartDay < 0 {
			return fmt.Errorf("vaccination policy: startDay must not be negative")
		}

		if v.DailyDoses <= 0 {
			return fmt.Errorf("vaccination policy: dailyDoses must be greater than 0")
		}

		if v.DoseInterval < 0 {
			return fmt.Errorf("vaccination policy: doseInterval must not be negative")
		}
	}

	return nil
}

func validateTrigger(name string, p *TriggerPolicy) error {
	if p.Threshold < 0 || p.Threshold > 1 {
		return fmt.Errorf("%s policy: threshold must be between 0 and 1", name)
	}

	if p.Compliance < 0 || p.Compliance > 1 {
		return fmt.Errorf("%s policy: compliance must be between 0 and 1", name)
	}

	return nil
}

func (c *Config) startDate() (time.Time, error) {
	if c.StartDate == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, c.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("startDate must be formatted as %s: %w", dateLayout, err)
	}
	return t, nil
}

func filterFor(schedule string) (policy.DayFilter, error) {
	if schedule == "" {
		return nil, nil
	}
	return policy.CronDays(schedule)
}
