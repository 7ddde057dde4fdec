// Package simulation runs a day-stepped epidemic over a fixed population.
package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/sherine-k/episim/pkg/person"
)

// Simulation owns the population, the day counter and the random generator
// shared by every stochastic decision of a run.
type Simulation struct {
	cfg        Config
	population person.Population
	rng        *rand.Rand
	seed       int64
	day        int
	done       bool
	log        *slog.Logger

	// scratch buffers reused across days
	susceptible []*person.Person
	infectious  []*person.Person
	indices     []int
}

// New validates cfg and creates a simulation with a random subset of the
// population already infected.
func New(cfg Config) (*Simulation, error) {
	initial, err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	if cfg.StartDate.IsZero() {
		cfg.StartDate = DefaultStartDate
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Simulation{
		cfg:        cfg,
		population: person.NewPopulation(cfg.PopulationSize),
		rng:        rand.New(rand.NewSource(seed)),
		seed:       seed,
		log:        logger,
	}

	for _, idx := range s.sample(cfg.PopulationSize, initial) {
		s.population[idx].Infect()
	}

	s.log.Info("simulation initialized",
		"population", cfg.PopulationSize,
		"initial_infected", initial,
		"seed", seed)

	return s, nil
}

// Run steps through days until nobody is infected or infectious. With
// MaxDays set it gives up after that many days and returns ErrDayLimitReached.
func (s *Simulation) Run() error {
	for s.Step() {
		if s.cfg.MaxDays > 0 && s.day >= s.cfg.MaxDays {
			s.log.Warn("day limit reached", "days", s.day)
			return fmt.Errorf("%w after %d days", ErrDayLimitReached, s.day)
		}
	}
	return nil
}

// Step simulates the current day, records it and reports whether infections
// remain. When it returns true the day counter has moved on and the caller
// may advance its clock by one day before stepping again.
func (s *Simulation) Step() bool {
	if s.done {
		return false
	}

	s.SimulateDay()
	if s.cfg.Statistics != nil {
		s.cfg.Statistics.RecordDay(s.day, s.population.ReadOnly())
	}

	if !s.population.HasActiveInfections() {
		s.done = true
		s.log.Info("simulation finished", "days", s.day+1)
		return false
	}

	s.day++
	return true
}

// SimulateDay runs the health update, policy and interaction phases in order
func (s *Simulation) SimulateDay() {
	s.updateHealthStatuses()
	s.applyPolicies()
	infections := s.simulateInteractions()

	if s.log.Enabled(context.Background(), slog.LevelDebug) {
		c := s.Census()
		s.log.Debug("day simulated",
			"day", s.day,
			"new_infections", infections,
			"active", c.Active(),
			"recovered", c.Recovered,
			"dead", c.Dead)
	}
}

func (s *Simulation) updateHealthStatuses() {
	for _, p := range s.population {
		p.UpdateHealthStatus(s.cfg.IncubationPeriod, s.cfg.InfectiousPeriod, s.cfg.MortalityRate, s.rng)
	}
}

func (s *Simulation) applyPolicies() {
	if s.cfg.MaskPolicy != nil || s.cfg.DistancingPolicy != nil {
		for _, p := range s.population {
			if s.cfg.MaskPolicy != nil {
				s.cfg.MaskPolicy(s, p)
			}
			if s.cfg.DistancingPolicy != nil {
				s.cfg.DistancingPolicy(s, p)
			}
		}
	}
	if s.cfg.VaccinationPolicy != nil {
		s.cfg.VaccinationPolicy(s)
	}
}

// Day returns the index of the current day
func (s *Simulation) Day() int {
	return s.day
}

// Done reports whether the run has ended
func (s *Simulation) Done() bool {
	return s.done
}

// DaysSimulated returns the number of completed days
func (s *Simulation) DaysSimulated() int {
	if s.done {
		return s.day + 1
	}
	return s.day
}

// Date returns the calendar date of the given day index
func (s *Simulation) Date(day int) time.Time {
	return s.cfg.StartDate.AddDate(0, 0, day)
}

// Population returns the people of the simulation. Policies may change
// mitigation attributes but must not reorder or resize it.
func (s *Simulation) Population() person.Population {
	return s.population
}

// Rand returns the shared random generator. Policies drawing from it keep the
// run reproducible for a fixed seed.
func (s *Simulation) Rand() *rand.Rand {
	return s.rng
}

// Seed returns the seed the generator was created with
func (s *Simulation) Seed() int64 {
	return s.seed
}

// Config returns a copy of the run configuration
func (s *Simulation) Config() Config {
	return s.cfg
}

// Logger returns the logger of the run
func (s *Simulation) Logger() *slog.Logger {
	return s.log
}

// Census counts the population as it is now
func (s *Simulation) Census() Census {
	return TakeCensus(s.day, s.population.ReadOnly())
}
