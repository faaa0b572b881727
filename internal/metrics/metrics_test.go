package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/heatlife/internal/life"
)

func TestPopulation(t *testing.T) {
	p := NewPopulation()
	if p.Value() != 0 {
		t.Error("expected zero before any observation")
	}

	g := life.Filled(3, life.Cell{})
	g.SetAlive(0, 0, true)
	p.Observe(1, g)
	g.SetAlive(1, 1, true)
	p.Observe(2, g)

	if p.Value() != 2 {
		t.Errorf("expected population 2, got %f", p.Value())
	}
	if h := p.History(); len(h) != 2 || h[0] != 1 {
		t.Errorf("unexpected history %v", h)
	}

	held := p.History()
	p.Reset()
	if len(p.History()) != 0 {
		t.Error("expected empty history after reset")
	}

	p.Observe(1, life.Filled(3, life.Cell{Alive: true}))
	if held[0] != 1 || held[1] != 2 {
		t.Errorf("history taken before reset was overwritten: %v", held)
	}
}

func TestDeathRatio(t *testing.T) {
	d := NewDeathRatio()
	g := life.Filled(2, life.Cell{Deaths: 3})
	g.Set(0, 0, life.Cell{Deaths: 1})

	d.Observe(5, g)
	want := (1.0 + 3 + 3 + 3) / 4 / 5
	if math.Abs(d.Value()-want) > 1e-12 {
		t.Errorf("expected %f, got %f", want, d.Value())
	}

	d.Observe(5, life.Filled(0, life.Cell{}))
	if d.Value() != 0 {
		t.Error("empty grid should report zero")
	}
}

func TestDeathRatioTracksStep(t *testing.T) {
	d := NewDeathRatio()
	g := life.Filled(4, life.Cell{})
	for gen := 2; gen <= 6; gen++ {
		g = life.Step(g)
		d.Observe(gen, g)
	}
	// An empty board dies every generation: 5 deaths over 6 generations.
	if math.Abs(d.Value()-5.0/6.0) > 1e-12 {
		t.Errorf("expected 5/6, got %f", d.Value())
	}
}

func TestStability(t *testing.T) {
	s := NewStability(1)
	if s.Value() != 1.0 {
		t.Error("expected full stability with no samples")
	}

	g := life.Filled(4, life.Cell{})
	s.Observe(1, g)
	g.SetAlive(0, 0, true)
	s.Observe(2, g)
	g.SetAlive(1, 0, true)
	g.SetAlive(2, 0, true)
	s.Observe(3, g)

	if s.Value() != 0.5 {
		t.Errorf("expected 0.5, got %f", s.Value())
	}

	s.Reset()
	if s.Value() != 1.0 {
		t.Error("expected reset to clear samples")
	}
}
