package policy

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sherine-k/episim/pkg/person"
	"github.com/sherine-k/episim/pkg/simulation"
)

// DayFilter reports whether a policy is active on a simulation day
type DayFilter func(sim *simulation.Simulation, day int) bool

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// CronDays activates a policy on calendar days where the cron schedule fires
// at least once. Days are mapped to dates through the simulation start date.
func CronDays(expr string) (DayFilter, error) {
	schedule, err := parser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schedule %q: %w", expr, err)
	}

	return func(sim *simulation.Simulation, day int) bool {
		start := sim.Date(day)
		next := schedule.Next(start.Add(-time.Second))
		return next.Before(start.AddDate(0, 0, 1))
	}, nil
}

// FromDay activates a policy from the given day onwards
func FromDay(first int) DayFilter {
	return func(_ *simulation.Simulation, day int) bool {
		return day >= first
	}
}

// OnDays runs p only on days accepted by filter. On other days reset, when
// set, switches off whatever p controls.
func OnDays(filter DayFilter, p simulation.PersonPolicy, reset func(*person.Person)) simulation.PersonPolicy {
	var (
		lastDay = -1
		active  bool
	)
	return func(sim *simulation.Simulation, target *person.Person) {
		if day := sim.Day(); day != lastDay {
			lastDay = day
			active = filter(sim, day)
		}
		switch {
		case active:
			p(sim, target)
		case reset != nil:
			reset(target)
		}
	}
}

// OnDaysPopulation runs p only on days accepted by filter
func OnDaysPopulation(filter DayFilter, p simulation.PopulationPolicy) simulation.PopulationPolicy {
	return func(sim *simulation.Simulation) {
		if filter(sim, sim.Day()) {
			p(sim)
		}
	}
}
