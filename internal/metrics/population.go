package metrics

import (
	"slices"

	"github.com/san-kum/heatlife/internal/life"
)

// Population tracks the live cell count per observed generation.
type Population struct {
	history []float64
}

func NewPopulation() *Population {
	return &Population{history: make([]float64, 0, 128)}
}

func (p *Population) Name() string { return "population" }

func (p *Population) Observe(generation int, g life.Grid) {
	p.history = append(p.history, float64(g.Alive()))
}

// Value is the population of the most recent generation.
func (p *Population) Value() float64 {
	if len(p.history) == 0 {
		return 0
	}
	return p.history[len(p.history)-1]
}

func (p *Population) Reset() { p.history = p.history[:0] }

// History returns a copy of the observed populations, oldest first.
func (p *Population) History() []float64 { return slices.Clone(p.history) }
