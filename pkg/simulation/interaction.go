package simulation

import (
	"github.com/sherine-k/episim/pkg/person"
)

// simulateInteractions runs one day of contacts. The susceptible pool is fixed
// when the day starts while infections apply immediately, so a person can be
// drawn again after being infected earlier the same day; Infect is a no-op then.
func (s *Simulation) simulateInteractions() int {
	s.susceptible = s.susceptible[:0]
	s.infectious = s.infectious[:0]
	for _, p := range s.population {
		if p.IsSusceptible() {
			s.susceptible = append(s.susceptible, p)
		} else if p.IsInfectious() {
			s.infectious = append(s.infectious, p)
		}
	}

	eff := s.effectiveness()
	infections := 0
	for _, source := range s.infectious {
		n := s.contactsFor(source, len(s.susceptible))
		if n == 0 {
			continue
		}

		for _, idx := range s.sample(len(s.susceptible), n) {
			target := s.susceptible[idx]
			chance := TransmissionProbability(s.cfg.InfectionRate, source, target, eff)
			if s.rng.Float64() < chance && target.Infect() {
				infections++
			}
		}
	}
	return infections
}

// contactsFor returns how many distinct susceptible people p meets today.
// Distancing never reduces a positive contact count below one, but a base of
// zero means no contacts at all rather than the one-contact minimum the
// floor would otherwise impose.
func (s *Simulation) contactsFor(p *person.Person, available int) int {
	n := s.cfg.BaseContacts
	if n == 0 {
		return 0
	}
	if p.SocialDistancing {
		n = int(float64(n) * s.cfg.SocialDistancingRate)
		n = max(n, 1)
	}
	return min(n, available)
}

// sample draws k distinct indices from [0, n) with a partial Fisher-Yates
// shuffle. The result aliases an internal buffer and is only valid until the
// next call.
func (s *Simulation) sample(n, k int) []int {
	s.indices = s.indices[:0]
	for i := 0; i < n; i++ {
		s.indices = append(s.indices, i)
	}
	for i := 0; i < k; i++ {
		j := i + s.rng.Intn(n-i)
		s.indices[i], s.indices[j] = s.indices[j], s.indices[i]
	}
	return s.indices[:k]
}

func (s *Simulation) effectiveness() Effectiveness {
	return Effectiveness{
		Mask:           s.cfg.MaskEffectiveness,
		PartialVaccine: s.cfg.PartialVaccineEffectiveness,
		FullVaccine:    s.cfg.FullVaccineEffectiveness,
	}
}
