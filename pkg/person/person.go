// Package person models a single member of the simulated population and the
// forward-only progression of their health status.
package person

// Status is the health status of a person
type Status int

const (
	StatusSusceptible Status = iota
	StatusInfected
	StatusInfectious
	StatusRecovered
	StatusDead
)

func (s Status) String() string {
	switch s {
	case StatusSusceptible:
		return "susceptible"
	case StatusInfected:
		return "infected"
	case StatusInfectious:
		return "infectious"
	case StatusRecovered:
		return "recovered"
	case StatusDead:
		return "dead"
	}
	return "unknown"
}

// Source is the random source used for stochastic health decisions
type Source interface {
	Float64() float64
}

// Person represents one individual of the population
type Person struct {
	id     int
	status Status
	days   int // days spent in the current status

	Masked           bool
	SocialDistancing bool
	VaccinationDoses int
}

// New creates a susceptible person with the given id
func New(id int) *Person {
	return &Person{id: id}
}

// ID returns the immutable id assigned at creation
func (p *Person) ID() int {
	return p.id
}

// Status returns the current health status
func (p *Person) Status() Status {
	return p.status
}

// DaysInStatus returns how many health updates the person has spent in the current status
func (p *Person) DaysInStatus() int {
	return p.days
}

func (p *Person) IsSusceptible() bool { return p.status == StatusSusceptible }
func (p *Person) IsInfected() bool    { return p.status == StatusInfected }
func (p *Person) IsInfectious() bool  { return p.status == StatusInfectious }
func (p *Person) IsRecovered() bool   { return p.status == StatusRecovered }
func (p *Person) IsDead() bool        { return p.status == StatusDead }

// IsAlive reports whether the person has not died
func (p *Person) IsAlive() bool { return p.status != StatusDead }

// Infect moves a susceptible person into incubation. It is a no-op for anyone
// else and reports whether the transition happened.
func (p *Person) Infect() bool {
	if p.status != StatusSusceptible {
		return false
	}
	p.status = StatusInfected
	p.days = 0
	return true
}

// UpdateHealthStatus advances disease progression by one day. Incubation ends
// after incubationPeriod updates; the infectious stage ends after
// infectiousPeriod updates with death decided by a single mortality draw.
func (p *Person) UpdateHealthStatus(incubationPeriod, infectiousPeriod int, mortalityRate float64, rng Source) {
	switch p.status {
	case StatusInfected:
		p.days++
		if p.days >= incubationPeriod {
			p.status = StatusInfectious
			p.days = 0
		}
	case StatusInfectious:
		p.days++
		if p.days >= infectiousPeriod {
			if rng.Float64() < mortalityRate {
				p.status = StatusDead
			} else {
				p.status = StatusRecovered
			}
			p.days = 0
		}
	}
}

// Snapshot is a read-only copy of a person's observable state
type Snapshot struct {
	ID               int
	Status           Status
	Masked           bool
	SocialDistancing bool
	VaccinationDoses int
}

// Snapshot returns a copy of the person's current state
func (p *Person) Snapshot() Snapshot {
	return Snapshot{
		ID:               p.id,
		Status:           p.status,
		Masked:           p.Masked,
		SocialDistancing: p.SocialDistancing,
		VaccinationDoses: p.VaccinationDoses,
	}
}
