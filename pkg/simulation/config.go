package simulation

import (
	"log/slog"
	"time"

	"github.com/sherine-k/episim/pkg/person"
)

// PersonPolicy is invoked once per person per day and may change that
// person's mitigation attributes.
type PersonPolicy func(sim *Simulation, p *person.Person)

// PopulationPolicy is invoked once per day.
type PopulationPolicy func(sim *Simulation)

// StatisticsCollector receives the population after every simulated day
type StatisticsCollector interface {
	RecordDay(day int, population person.View)
}

// DefaultStartDate is the calendar date of day 0 when none is configured
var DefaultStartDate = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// Config holds the parameters of a simulation run
type Config struct {
	PopulationSize       int
	InitialInfected      InitialInfected
	InfectionRate        float64
	IncubationPeriod     int
	InfectiousPeriod     int
	BaseContacts         int
	SocialDistancingRate float64
	MortalityRate        float64

	// Multiplicative factors applied to the infection rate
	MaskEffectiveness           float64
	PartialVaccineEffectiveness float64
	FullVaccineEffectiveness    float64

	MaskPolicy        PersonPolicy
	DistancingPolicy  PersonPolicy
	VaccinationPolicy PopulationPolicy
	Statistics        StatisticsCollector

	// Seed makes the run reproducible; nil seeds from the clock
	Seed *int64

	// MaxDays stops Run after that many days; 0 means no limit
	MaxDays   int
	StartDate time.Time
	Logger    *slog.Logger
}

// DefaultConfig returns a config with the default mortality and effectiveness factors
func DefaultConfig() Config {
	return Config{
		InitialInfected:             InfectedCount(0),
		MortalityRate:               0.01,
		MaskEffectiveness:           0.5,
		PartialVaccineEffectiveness: 0.7,
		FullVaccineEffectiveness:    0.3,
	}
}

type initialKind int

const (
	initialUnset initialKind = iota
	initialCount
	initialFraction
)

// InitialInfected is either an absolute count or a fraction of the population
type InitialInfected struct {
	kind     initialKind
	count    int
	fraction float64
}

// InfectedCount seeds exactly n infections
func InfectedCount(n int) InitialInfected {
	return InitialInfected{kind: initialCount, count: n}
}

// InfectedFraction seeds floor(population*f) infections
func InfectedFraction(f float64) InitialInfected {
	return InitialInfected{kind: initialFraction, fraction: f}
}

// IsFraction reports whether the value was given as a fraction
func (i InitialInfected) IsFraction() bool {
	return i.kind == initialFraction
}

func (i InitialInfected) value() any {
	switch i.kind {
	case initialCount:
		return i.count
	case initialFraction:
		return i.fraction
	}
	return nil
}

// Resolve converts the value to a count for the given population size
func (i InitialInfected) Resolve(populationSize int) (int, error) {
	switch i.kind {
	case initialCount:
		if i.count < 0 || i.count > populationSize {
			return 0, invalid("initialInfected", i.count, ErrInvalidInitialInfected)
		}
		return i.count, nil
	case initialFraction:
		if !(i.fraction >= 0 && i.fraction <= 1) {
			return 0, invalid("initialInfected", i.fraction, ErrInvalidInitialInfected)
		}
		return int(float64(populationSize) * i.fraction), nil
	}
	return 0, invalid("initialInfected", nil, ErrInvalidInitialInfectedType)
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}

// Validate checks the parameters in a fixed order and returns the first
// failure along with the resolved number of initial infections.
func (c *Config) Validate() (int, error) {
	if c.PopulationSize <= 0 {
		return 0, invalid("populationSize", c.PopulationSize, ErrInvalidPopulationSize)
	}
	initial, err := c.InitialInfected.Resolve(c.PopulationSize)
	if err != nil {
		return 0, err
	}
	if !inUnitRange(c.InfectionRate) {
		return 0, invalid("infectionRate", c.InfectionRate, ErrInvalidInfectionRate)
	}
	if c.IncubationPeriod <= 0 {
		return 0, invalid("incubationPeriod", c.IncubationPeriod, ErrInvalidIncubationPeriod)
	}
	if c.InfectiousPeriod <= 0 {
		return 0, invalid("infectiousPeriod", c.InfectiousPeriod, ErrInvalidInfectiousPeriod)
	}
	if c.BaseContacts < 0 {
		return 0, invalid("baseContacts", c.BaseContacts, ErrInvalidBaseContacts)
	}
	if !inUnitRange(c.SocialDistancingRate) {
		return 0, invalid("socialDistancingRate", c.SocialDistancingRate, ErrInvalidSocialDistancingRate)
	}
	if !inUnitRange(c.MortalityRate) {
		return 0, invalid("mortalityRate", c.MortalityRate, ErrInvalidMortalityRate)
	}
	return initial, nil
}
