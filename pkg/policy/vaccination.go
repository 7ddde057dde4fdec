package policy

import (
	"github.com/sherine-k/episim/pkg/person"
	"github.com/sherine-k/episim/pkg/simulation"
)

// VaccinationCampaign hands out a fixed number of doses per day. Second doses
// take priority over first doses.
type VaccinationCampaign struct {
	StartDay     int
	DailyDoses   int
	DoseInterval int

	// day of the first dose, by person id
	firstDose map[int]int
}

func eligible(p *person.Person) bool {
	return p.IsAlive() && !p.IsInfected() && !p.IsInfectious()
}

// Policy returns the campaign as a daily population policy
func (v *VaccinationCampaign) Policy() simulation.PopulationPolicy {
	return v.apply
}

func (v *VaccinationCampaign) apply(sim *simulation.Simulation) {
	day := sim.Day()
	if day < v.StartDay || v.DailyDoses <= 0 {
		return
	}

	if v.firstDose == nil {
		v.firstDose = make(map[int]int)
	}

	doses := v.DailyDoses
	pop := sim.Population()

	for _, p := range pop {
		if doses == 0 {
			break
		}
		if p.VaccinationDoses != 1 || !eligible(p) {
			continue
		}
		if day-v.firstDose[p.ID()] >= v.DoseInterval {
			p.VaccinationDoses = 2
			doses--
		}
	}

	given := v.DailyDoses - doses
	for _, p := range pop {
		if doses == 0 {
			break
		}
		if p.VaccinationDoses != 0 || !eligible(p) {
			continue
		}
		p.VaccinationDoses = 1
		v.firstDose[p.ID()] = day
		doses--
	}

	sim.Logger().Debug("vaccination doses given",
		"day", day,
		"second_doses", given,
		"first_doses", v.DailyDoses-doses-given)
}
