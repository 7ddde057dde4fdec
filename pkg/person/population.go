package person

// Population is the ordered set of people in a simulation, indexed by id
type Population []*Person

// NewPopulation creates size susceptible people with ids 0..size-1
func NewPopulation(size int) Population {
	pop := make(Population, size)
	for i := range pop {
		pop[i] = New(i)
	}
	return pop
}

// View is a read-only sequence of person snapshots
type View interface {
	Len() int
	At(i int) Snapshot
}

type readOnly struct {
	pop Population
}

func (r readOnly) Len() int          { return len(r.pop) }
func (r readOnly) At(i int) Snapshot { return r.pop[i].Snapshot() }

// ReadOnly wraps the population so collaborators cannot mutate it
func (pop Population) ReadOnly() View {
	return readOnly{pop: pop}
}

// Count returns how many people currently have the given status
func (pop Population) Count(status Status) int {
	n := 0
	for _, p := range pop {
		if p.status == status {
			n++
		}
	}
	return n
}

// HasActiveInfections reports whether anyone is infected or infectious
func (pop Population) HasActiveInfections() bool {
	for _, p := range pop {
		if p.IsInfected() || p.IsInfectious() {
			return true
		}
	}
	return false
}
