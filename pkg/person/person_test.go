package person

import "testing"

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func TestInfectOnlyFromSusceptible(t *testing.T) {
	p := New(7)
	if p.ID() != 7 {
		t.Fatalf("expected id 7, got %d", p.ID())
	}
	if !p.Infect() {
		t.Fatalf("expected susceptible person to become infected")
	}
	if !p.IsInfected() {
		t.Fatalf("expected status infected, got %s", p.Status())
	}
	if p.Infect() {
		t.Fatalf("expected second infect to be a no-op")
	}
	if p.Status() != StatusInfected {
		t.Fatalf("expected status to stay infected, got %s", p.Status())
	}
}

func TestProgressionToRecovery(t *testing.T) {
	p := New(0)
	p.Infect()

	for day := 0; day < 2; day++ {
		p.UpdateHealthStatus(3, 2, 0, fixedSource(0.5))
		if !p.IsInfected() {
			t.Fatalf("day %d: expected still incubating, got %s", day, p.Status())
		}
	}
	p.UpdateHealthStatus(3, 2, 0, fixedSource(0.5))
	if !p.IsInfectious() {
		t.Fatalf("expected infectious after incubation, got %s", p.Status())
	}
	p.UpdateHealthStatus(3, 2, 0, fixedSource(0.5))
	if !p.IsInfectious() {
		t.Fatalf("expected still infectious, got %s", p.Status())
	}
	p.UpdateHealthStatus(3, 2, 0, fixedSource(0.5))
	if !p.IsRecovered() {
		t.Fatalf("expected recovered, got %s", p.Status())
	}

	if p.Infect() {
		t.Fatalf("recovered person must not be reinfected")
	}
	p.UpdateHealthStatus(3, 2, 1, fixedSource(0))
	if !p.IsRecovered() {
		t.Fatalf("recovered is terminal, got %s", p.Status())
	}
}

func TestProgressionToDeath(t *testing.T) {
	p := New(0)
	p.Infect()
	p.UpdateHealthStatus(1, 1, 0.5, fixedSource(0.1))
	p.UpdateHealthStatus(1, 1, 0.5, fixedSource(0.1))
	if !p.IsDead() || p.IsAlive() {
		t.Fatalf("expected dead, got %s", p.Status())
	}
	if p.IsSusceptible() || p.IsInfectious() {
		t.Fatalf("dead person must be neither susceptible nor infectious")
	}
}

func TestSusceptibleIgnoresHealthUpdate(t *testing.T) {
	p := New(0)
	p.UpdateHealthStatus(1, 1, 1, fixedSource(0))
	if !p.IsSusceptible() || p.DaysInStatus() != 0 {
		t.Fatalf("expected untouched susceptible person, got %s after %d days", p.Status(), p.DaysInStatus())
	}
}

func TestPopulationReadOnlyView(t *testing.T) {
	pop := NewPopulation(4)
	pop[2].Infect()
	pop[3].Masked = true

	view := pop.ReadOnly()
	if view.Len() != 4 {
		t.Fatalf("expected 4 people, got %d", view.Len())
	}
	snap := view.At(2)
	if snap.ID != 2 || snap.Status != StatusInfected {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if !view.At(3).Masked {
		t.Fatalf("expected masked snapshot")
	}
	if pop.Count(StatusSusceptible) != 3 {
		t.Fatalf("expected 3 susceptible, got %d", pop.Count(StatusSusceptible))
	}
	if !pop.HasActiveInfections() {
		t.Fatalf("expected active infections")
	}
}
