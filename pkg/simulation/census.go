package simulation

import (
	"github.com/sherine-k/episim/pkg/person"
)

// Census counts the population by health status and mitigation state on a given day
type Census struct {
	Day                 int
	Susceptible         int
	Infected            int
	Infectious          int
	Recovered           int
	Dead                int
	Masked              int
	Distancing          int
	PartiallyVaccinated int
	FullyVaccinated     int
}

// Total returns the population size
func (c Census) Total() int {
	return c.Susceptible + c.Infected + c.Infectious + c.Recovered + c.Dead
}

// Active returns the number of people carrying the disease
func (c Census) Active() int {
	return c.Infected + c.Infectious
}

// TakeCensus counts the people in view
func TakeCensus(day int, view person.View) Census {
	c := Census{Day: day}
	for i := 0; i < view.Len(); i++ {
		p := view.At(i)
		switch p.Status {
		case person.StatusSusceptible:
			c.Susceptible++
		case person.StatusInfected:
			c.Infected++
		case person.StatusInfectious:
			c.Infectious++
		case person.StatusRecovered:
			c.Recovered++
		case person.StatusDead:
			c.Dead++
		}
		if p.Masked {
			c.Masked++
		}
		if p.SocialDistancing {
			c.Distancing++
		}
		switch {
		case p.VaccinationDoses >= 2:
			c.FullyVaccinated++
		case p.VaccinationDoses == 1:
			c.PartiallyVaccinated++
		}
	}
	return c
}
