package config

import (
	"fmt"
	"log/slog"

	"github.com/sherine-k/episim/pkg/person"
	"github.com/sherine-k/episim/pkg/policy"
	"github.com/sherine-k/episim/pkg/simulation"
)

// ToSimulation maps the scenario onto a simulation config with policies
// wired in. The epidemic parameters are validated here as well.
func (c *Config) ToSimulation(collector simulation.StatisticsCollector, logger *slog.Logger) (simulation.Config, error) {
	cfg := simulation.DefaultConfig()
	cfg.PopulationSize = c.PopulationSize
	cfg.InitialInfected = c.InitialInfected.Value
	cfg.InfectionRate = c.InfectionRate
	cfg.IncubationPeriod = c.IncubationPeriod
	cfg.InfectiousPeriod = c.InfectiousPeriod
	cfg.BaseContacts = c.BaseContacts
	cfg.SocialDistancingRate = c.SocialDistancingRate
	if c.MortalityRate != nil {
		cfg.MortalityRate = *c.MortalityRate
	}
	if c.MaskEffectiveness != nil {
		cfg.MaskEffectiveness = *c.MaskEffectiveness
	}
	if c.PartialVaccineEffectiveness != nil {
		cfg.PartialVaccineEffectiveness = *c.PartialVaccineEffectiveness
	}
	if c.FullVaccineEffectiveness != nil {
		cfg.FullVaccineEffectiveness = *c.FullVaccineEffectiveness
	}
	cfg.Seed = c.Seed
	cfg.MaxDays = c.MaxDays
	cfg.Statistics = collector
	cfg.Logger = logger

	if _, err := cfg.Validate(); err != nil {
		return cfg, err
	}

	start, err := c.startDate()
	if err != nil {
		return cfg, err
	}
	cfg.StartDate = start

	if m := c.Policies.Mask; m != nil {
		p, err := scheduled(m.Schedule, policy.MaskWhenPrevalence(m.Threshold, m.Compliance), policy.ClearMask)
		if err != nil {
			return cfg, fmt.Errorf("mask policy: %w", err)
		}
		cfg.MaskPolicy = p
	}

	if d := c.Policies.Distancing; d != nil {
		p, err := scheduled(d.Schedule, policy.DistanceWhenPrevalence(d.Threshold, d.Compliance), policy.ClearDistancing)
		if err != nil {
			return cfg, fmt.Errorf("distancing policy: %w", err)
		}
		cfg.DistancingPolicy = p
	}

	if v := c.Policies.Vaccination; v != nil {
		campaign := &policy.VaccinationCampaign{
			StartDay:     v.StartDay,
			DailyDoses:   v.DailyDoses,
			DoseInterval: v.DoseInterval,
		}
		filter, err := filterFor(v.Schedule)
		if err != nil {
			return cfg, fmt.Errorf("vaccination policy: %w", err)
		}
		cfg.VaccinationPolicy = campaign.Policy()
		if filter != nil {
			cfg.VaccinationPolicy = policy.OnDaysPopulation(filter, cfg.VaccinationPolicy)
		}
	}

	return cfg, nil
}

func scheduled(schedule string, p simulation.PersonPolicy, reset func(*person.Person)) (simulation.PersonPolicy, error) {
	filter, err := filterFor(schedule)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return p, nil
	}
	return policy.OnDays(filter, p, reset), nil
}
