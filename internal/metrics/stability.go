package metrics

import "github.com/san-kum/heatlife/internal/life"

// Stability is the fraction of generations whose population moved by no more
// than threshold cells.
type Stability struct {
	name       string
	threshold  int
	violations int
	samples    int
	last       int
	seen       bool
}

func NewStability(threshold int) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(generation int, g life.Grid) {
	alive := g.Alive()
	if s.seen {
		s.samples++
		if abs(alive-s.last) > s.threshold {
			s.violations++
		}
	}
	s.last, s.seen = alive, true
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
	s.last, s.seen = 0, false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
