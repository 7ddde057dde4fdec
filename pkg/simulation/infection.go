package simulation

import (
	"math"

	"github.com/sherine-k/episim/pkg/person"
)

// Effectiveness holds the multiplicative reduction factors of each mitigation
type Effectiveness struct {
	Mask           float64
	PartialVaccine float64
	FullVaccine    float64
}

// TransmissionProbability returns the chance that one contact between an
// infectious and a susceptible person transmits the disease. Masks on either
// side compound; vaccination only protects the susceptible side.
func TransmissionProbability(baseRate float64, infectious, susceptible *person.Person, eff Effectiveness) float64 {
	rate := applyMask(baseRate, infectious, eff.Mask)
	rate = applyMask(rate, susceptible, eff.Mask)
	rate = applyVaccine(rate, susceptible, eff)
	return math.Min(rate, 1.0)
}

func applyMask(rate float64, p *person.Person, effectiveness float64) float64 {
	if p.Masked {
		return rate * effectiveness
	}
	return rate
}

func applyVaccine(rate float64, p *person.Person, eff Effectiveness) float64 {
	switch {
	case p.VaccinationDoses >= 2:
		return rate * eff.FullVaccine
	case p.VaccinationDoses == 1:
		return rate * eff.PartialVaccine
	}
	return rate
}
