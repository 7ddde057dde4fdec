// Package stats collects per-day aggregates of a simulation run.
package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/sherine-k/episim/pkg/person"
	"github.com/sherine-k/episim/pkg/simulation"
)

// Collector records a census for every simulated day
type Collector struct {
	days []simulation.Census
	log  *slog.Logger
}

// NewCollector creates an empty collector. A nil logger discards output.
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Collector{log: logger}
}

// RecordDay stores the census of the population for day
func (c *Collector) RecordDay(day int, population person.View) {
	census := simulation.TakeCensus(day, population)
	c.days = append(c.days, census)

	c.log.Debug("day recorded",
		"day", day,
		"susceptible", census.Susceptible,
		"infected", census.Infected,
		"infectious", census.Infectious,
		"recovered", census.Recovered,
		"dead", census.Dead)
}

// Days returns every recorded census in day order
func (c *Collector) Days() []simulation.Census {
	return c.days
}

// Summary describes a finished run
type Summary struct {
	Days         int
	Population   int
	PeakActive   int
	PeakDay      int
	EverInfected int
	Recovered    int
	Dead         int
	AttackRate   float64
}

// Summary aggregates the recorded days
func (c *Collector) Summary() Summary {
	var s Summary
	if len(c.days) == 0 {
		return s
	}

	for _, d := range c.days {
		if d.Active() > s.PeakActive {
			s.PeakActive = d.Active()
			s.PeakDay = d.Day
		}
	}

	last := c.days[len(c.days)-1]
	s.Days = len(c.days)
	s.Population = last.Total()
	s.EverInfected = s.Population - last.Susceptible
	s.Recovered = last.Recovered
	s.Dead = last.Dead
	if s.Population > 0 {
		s.AttackRate = float64(s.EverInfected) / float64(s.Population)
	}
	return s
}

var csvHeader = []string{
	"day", "susceptible", "infected", "infectious", "recovered", "dead",
	"masked", "distancing", "partially_vaccinated", "fully_vaccinated",
}

// WriteCSV writes one row per recorded day
func (c *Collector) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, d := range c.days {
		row := []int{
			d.Day, d.Susceptible, d.Infected, d.Infectious, d.Recovered, d.Dead,
			d.Masked, d.Distancing, d.PartiallyVaccinated, d.FullyVaccinated,
		}
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = strconv.Itoa(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write day %d: %w", d.Day, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
