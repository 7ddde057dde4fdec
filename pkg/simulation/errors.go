package simulation

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig matches every construction-time validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

var (
	ErrInvalidPopulationSize       = errors.New("population size must be positive")
	ErrInvalidInitialInfected      = errors.New("initial infected out of range")
	ErrInvalidInitialInfectedType  = errors.New("initial infected must be a count or a fraction")
	ErrInvalidInfectionRate        = errors.New("infection rate must be between 0 and 1")
	ErrInvalidIncubationPeriod     = errors.New("incubation period must be positive")
	ErrInvalidInfectiousPeriod     = errors.New("infectious period must be positive")
	ErrInvalidBaseContacts         = errors.New("base contacts must be non-negative")
	ErrInvalidSocialDistancingRate = errors.New("social distancing rate must be between 0 and 1")
	ErrInvalidMortalityRate        = errors.New("mortality rate must be between 0 and 1")
)

// ErrDayLimitReached is returned by Run when MaxDays elapses with infections still active.
var ErrDayLimitReached = errors.New("day limit reached with active infections")

// ConfigError describes the field that failed validation
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s=%v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets every ConfigError match ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func invalid(field string, value any, err error) error {
	return &ConfigError{Field: field, Value: value, Err: err}
}
