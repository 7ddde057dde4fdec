// Package policy provides ready-made mask, distancing and vaccination policies.
package policy

import (
	"github.com/sherine-k/episim/pkg/person"
	"github.com/sherine-k/episim/pkg/simulation"
)

// prevalence caches the active infection share once per day
type prevalence struct {
	day   int
	share float64
}

func (pv *prevalence) get(sim *simulation.Simulation) float64 {
	if sim.Day() != pv.day {
		c := sim.Census()
		pv.day = sim.Day()
		pv.share = float64(c.Active()) / float64(c.Total())
	}
	return pv.share
}

// compliance remembers, per person, whether they follow a policy. The draw
// happens the first time the person is evaluated.
type compliance struct {
	rate    float64
	decided map[int]bool
}

func (c *compliance) follows(sim *simulation.Simulation, p *person.Person) bool {
	if ok, seen := c.decided[p.ID()]; seen {
		return ok
	}
	ok := sim.Rand().Float64() < c.rate
	c.decided[p.ID()] = ok
	return ok
}

// ClearMask takes a person's mask off
func ClearMask(p *person.Person) {
	p.Masked = false
}

// ClearDistancing ends a person's social distancing
func ClearDistancing(p *person.Person) {
	p.SocialDistancing = false
}

func triggered(threshold, rate float64, set func(p *person.Person, on bool)) simulation.PersonPolicy {
	pv := &prevalence{day: -1}
	comp := &compliance{rate: rate, decided: make(map[int]bool)}

	return func(sim *simulation.Simulation, p *person.Person) {
		if p.IsDead() {
			return
		}
		if pv.get(sim) >= threshold && comp.follows(sim, p) {
			set(p, true)
			return
		}
		set(p, false)
	}
}

// MaskWhenPrevalence makes compliant people wear masks while the share of
// active infections is at least threshold.
func MaskWhenPrevalence(threshold, rate float64) simulation.PersonPolicy {
	return triggered(threshold, rate, func(p *person.Person, on bool) {
		p.Masked = on
	})
}

// DistanceWhenPrevalence makes compliant people keep their distance while the
// share of active infections is at least threshold.
func DistanceWhenPrevalence(threshold, rate float64) simulation.PersonPolicy {
	return triggered(threshold, rate, func(p *person.Person, on bool) {
		p.SocialDistancing = on
	})
}
