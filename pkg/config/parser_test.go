package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sherine-k/episim/pkg/simulation"
	"github.com/sherine-k/episim/pkg/stats"
)

const scenario = `
populationSize: 100
initialInfected: 5
infectionRate: 0.3
incubationPeriod: 3
infectiousPeriod: 5
baseContacts: 10
socialDistancingRate: 0.5
mortalityRate: 0.0
seed: 42
startDate: "2024-01-01"
policies:
  mask:
    threshold: 0.05
    compliance: 0.8
  distancing:
    threshold: 0.1
    compliance: 0.5
    schedule: "0 9 * * 1-5"
  vaccination:
    startDay: 5
    dailyDoses: 10
    doseInterval: 14
    schedule: "@daily"
`

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeScenario(t, scenario))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.PopulationSize != 100 || cfg.BaseContacts != 10 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.InitialInfected.Value.IsFraction() {
		t.Fatalf("expected integer initialInfected to be a count")
	}
	if cfg.Seed == nil || *cfg.Seed != 42 {
		t.Fatalf("expected seed 42")
	}
	if cfg.Policies.Distancing == nil || cfg.Policies.Distancing.Schedule != "0 9 * * 1-5" {
		t.Fatalf("expected distancing policy with schedule")
	}
}

func TestToSimulationRunsScenario(t *testing.T) {
	cfg, err := LoadConfig(writeScenario(t, scenario))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	collector := stats.NewCollector(nil)
	simCfg, err := cfg.ToSimulation(collector, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if simCfg.MaskPolicy == nil || simCfg.DistancingPolicy == nil || simCfg.VaccinationPolicy == nil {
		t.Fatalf("expected all policies wired")
	}
	if simCfg.MaskEffectiveness != 0.5 || simCfg.FullVaccineEffectiveness != 0.3 {
		t.Fatalf("expected default effectiveness factors")
	}
	if !simCfg.StartDate.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected start date %v", simCfg.StartDate)
	}

	sim, err := simulation.New(simCfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sim.Run(); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	if len(collector.Days()) != sim.DaysSimulated() {
		t.Fatalf("expected every day recorded")
	}
	if collector.Summary().Dead != 0 {
		t.Fatalf("expected no deaths with zero mortality")
	}
}

func TestInitialInfectedFraction(t *testing.T) {
	cfg, err := Parse([]byte("populationSize: 50\ninitialInfected: 0.1\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.InitialInfected.Value.IsFraction() {
		t.Fatalf("expected float initialInfected to be a fraction")
	}
	n, err := cfg.InitialInfected.Value.Resolve(cfg.PopulationSize)
	if err != nil || n != 5 {
		t.Fatalf("expected 5 initial infections, got %d (%v)", n, err)
	}
}

func TestValidateConfig(t *testing.T) {
	base := "infectionRate: 0.3\nincubationPeriod: 3\ninfectiousPeriod: 5\nbaseContacts: 2\nsocialDistancingRate: 0.5\n"

	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"population", "populationSize: 0\ninitialInfected: 1\n" + base, simulation.ErrInvalidPopulationSize},
		{"initial type", "populationSize: 10\ninitialInfected: many\n" + base, simulation.ErrInvalidInitialInfectedType},
		{"initial missing", "populationSize: 10\n" + base, simulation.ErrInvalidInitialInfectedType},
		{"initial range", "populationSize: 10\ninitialInfected: 11\n" + base, simulation.ErrInvalidInitialInfected},
		{"mortality", "populationSize: 10\ninitialInfected: 1\nmortalityRate: 1.5\n" + base, simulation.ErrInvalidMortalityRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.doc))
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidatePolicies(t *testing.T) {
	base := "populationSize: 10\ninitialInfected: 1\ninfectionRate: 0.3\nincubationPeriod: 3\ninfectiousPeriod: 5\nbaseContacts: 2\nsocialDistancingRate: 0.5\n"

	docs := map[string]string{
		"threshold":  "policies:\n  mask:\n    threshold: 2\n    compliance: 1\n",
		"compliance": "policies:\n  distancing:\n    threshold: 0.1\n    compliance: -1\n",
		"doses":      "policies:\n  vaccination:\n    dailyDoses: 0\n",
		"schedule":   "policies:\n  mask:\n    threshold: 0.1\n    compliance: 1\n    schedule: every tuesday\n",
		"start date": "startDate: tomorrow\n",
		"max days":   "maxDays: -1\n",
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			cfg, err := Parse([]byte(base + doc))
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	if _, err := Parse([]byte("populationSize: 10\npopulation: 12\n")); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("EPISIM_SEED", "7")
	t.Setenv("EPISIM_POPULATION_SIZE", "60")

	cfg, err := LoadConfig(writeScenario(t, scenario))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Seed == nil || *cfg.Seed != 7 {
		t.Fatalf("expected seed override")
	}
	if cfg.PopulationSize != 60 {
		t.Fatalf("expected population override, got %d", cfg.PopulationSize)
	}
	if cfg.MaxDays != 0 {
		t.Fatalf("expected max days untouched, got %d", cfg.MaxDays)
	}

	o, err := ParseEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.LogLevel != "info" {
		t.Fatalf("expected default log level, got %q", o.LogLevel)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
