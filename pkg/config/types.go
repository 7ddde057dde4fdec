package config

import (
	"github.com/sherine-k/episim/pkg/simulation"
	"gopkg.in/yaml.v3"
)

// Config represents a scenario file
type Config struct {
	PopulationSize       int             `yaml:"populationSize"`
	InitialInfected      InitialInfected `yaml:"initialInfected"`
	InfectionRate        float64         `yaml:"infectionRate"`
	IncubationPeriod     int             `yaml:"incubationPeriod"`
	InfectiousPeriod     int             `yaml:"infectiousPeriod"`
	BaseContacts         int             `yaml:"baseContacts"`
	SocialDistancingRate float64         `yaml:"socialDistancingRate"`

	// Optional factors, defaults apply when omitted
	MortalityRate               *float64 `yaml:"mortalityRate,omitempty"`
	MaskEffectiveness           *float64 `yaml:"maskEffectiveness,omitempty"`
	PartialVaccineEffectiveness *float64 `yaml:"partialVaccineEffectiveness,omitempty"`
	FullVaccineEffectiveness    *float64 `yaml:"fullVaccineEffectiveness,omitempty"`

	Seed    *int64 `yaml:"seed,omitempty"`
	MaxDays int    `yaml:"maxDays,omitempty"`
	// StartDate is the calendar date of day 0, formatted as 2006-01-02
	StartDate string `yaml:"startDate,omitempty"`

	Policies Policies `yaml:"policies,omitempty"`
}

// Policies configures the built-in mitigation policies
type Policies struct {
	Mask        *TriggerPolicy     `yaml:"mask,omitempty"`
	Distancing  *TriggerPolicy     `yaml:"distancing,omitempty"`
	Vaccination *VaccinationPolicy `yaml:"vaccination,omitempty"`
}

// TriggerPolicy switches a behaviour on while active infections reach Threshold
type TriggerPolicy struct {
	Threshold  float64 `yaml:"threshold"`
	Compliance float64 `yaml:"compliance"`
	// Cron expression restricting the days the policy runs
	Schedule string `yaml:"schedule,omitempty"`
}

// VaccinationPolicy configures a two-dose vaccination campaign
type VaccinationPolicy struct {
	StartDay     int    `yaml:"startDay"`
	DailyDoses   int    `yaml:"dailyDoses"`
	DoseInterval int    `yaml:"doseInterval"`
	Schedule     string `yaml:"schedule,omitempty"`
}

// InitialInfected decodes an integer as a count and a float as a fraction.
// Any other value is left unset and rejected during validation.
type InitialInfected struct {
	Value simulation.InitialInfected
}

func (i *InitialInfected) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		i.Value = simulation.InitialInfected{}
		return nil
	}

	switch node.ShortTag() {
	case "!!int":
		var n int
		if err := node.Decode(&n); err != nil {
			return err
		}
		i.Value = simulation.InfectedCount(n)
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		i.Value = simulation.InfectedFraction(f)
	default:
		i.Value = simulation.InitialInfected{}
	}
	return nil
}
